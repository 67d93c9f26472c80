package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Sagarika1109/Network-Security-Scanner/scanner"
)

func sampleResults() []scanner.ProbeResult {
	return []scanner.ProbeResult{
		{Port: 22, Service: "SSH", Banner: "SSH-2.0-OpenSSH_9.6"},
		{Port: 80, Service: "HTTP", Banner: "Server: nginx, über fast"},
	}
}

func TestSaveReport_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	if err := SaveReport(sampleResults(), path); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines: %q", len(lines), lines)
	}
	if lines[0] != "port,service,banner" {
		t.Fatalf("bad header: %q", lines[0])
	}
	if lines[1] != "22,SSH,SSH-2.0-OpenSSH_9.6" {
		t.Fatalf("bad first row: %q", lines[1])
	}
	// the comma in the banner forces csv quoting
	if lines[2] != `80,HTTP,"Server: nginx, über fast"` {
		t.Fatalf("bad second row: %q", lines[2])
	}
}

func TestSaveReport_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := SaveReport(sampleResults(), path); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	var decoded []scanner.ProbeResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Port != 22 || decoded[1].Banner != "Server: nginx, über fast" {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
	// non-ASCII must survive unescaped
	if !strings.Contains(string(data), "über") {
		t.Fatalf("non-ASCII text was escaped: %s", data)
	}
}

func TestSaveReport_EmptyResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := SaveReport(nil, path); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", data)
	}
}
