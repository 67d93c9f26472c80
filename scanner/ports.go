package scanner

import (
	"sort"
	"strconv"
	"strings"
)

// ParsePorts turns a port specification like "22,80,8000-8100" into a sorted,
// deduplicated list of ports. When spec is empty, the inclusive range
// [start, end] is used instead, clamped to the valid port space. Any
// non-empty spec takes the parse path, so a spec holding only blank tokens
// yields an empty list rather than the range fallback.
//
// Malformed tokens never abort parsing: an unparsable value or range endpoint
// simply drops that token, and a reversed range ("8100-8000") is treated as
// its ascending equivalent. Values outside 1-65535 are filtered out.
func ParsePorts(spec string, start, end int) []int {
	if spec != "" {
		return parsePortSpec(spec)
	}

	if start < 1 {
		start = 1
	}
	if end > 65535 {
		end = 65535
	}
	if start > end {
		return []int{}
	}

	ports := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		ports = append(ports, p)
	}
	return ports
}

func parsePortSpec(spec string) []int {
	seen := make(map[int]struct{})

	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if strings.Contains(token, "-") {
			bounds := strings.SplitN(token, "-", 2)
			lo, errLo := strconv.Atoi(strings.TrimSpace(bounds[0]))
			hi, errHi := strconv.Atoi(strings.TrimSpace(bounds[1]))
			if errLo != nil || errHi != nil {
				continue
			}
			if lo > hi {
				lo, hi = hi, lo
			}
			for p := lo; p <= hi; p++ {
				seen[p] = struct{}{}
			}
			continue
		}

		p, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		seen[p] = struct{}{}
	}

	ports := make([]int, 0, len(seen))
	for p := range seen {
		if p >= 1 && p <= 65535 {
			ports = append(ports, p)
		}
	}
	sort.Ints(ports)
	return ports
}
