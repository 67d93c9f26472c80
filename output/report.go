package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Sagarika1109/Network-Security-Scanner/scanner"
)

// SaveReport writes the open-port results to path. The format is decided by
// the file extension: ".csv" produces a CSV document with a
// port,service,banner header; anything else produces a pretty-printed JSON
// array of the same three fields. An empty result set still writes a valid
// empty document.
func SaveReport(results []scanner.ProbeResult, path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		data, err = encodeCSV(results)
	} else {
		data, err = encodeJSON(results)
	}
	if err != nil {
		return err
	}

	return WriteAtomic(path, data)
}

func encodeCSV(results []scanner.ProbeResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"port", "service", "banner"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range results {
		row := []string{strconv.Itoa(r.Port), r.Service, r.Banner}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeJSON(results []scanner.ProbeResult) ([]byte, error) {
	if results == nil {
		results = []scanner.ProbeResult{}
	}

	// Banners may contain non-ASCII text; keep it readable instead of
	// escaping it.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return nil, fmt.Errorf("encode json report: %w", err)
	}
	return buf.Bytes(), nil
}
