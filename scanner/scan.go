package scanner

import (
	"fmt"
	"sort"
	"time"

	"github.com/Sagarika1109/Network-Security-Scanner/netutil"
)

// Options configures a full scan run.
type Options struct {
	Ports   []int
	Workers int
	Timeout time.Duration
	Banner  bool

	// Progress, when set, receives best-effort (scanned, total) updates.
	Progress ProgressFunc

	// Resolve maps the target to an IP address. Defaults to
	// netutil.ResolveTargetToIPv4 when nil; tests inject their own.
	Resolve func(target string) (string, error)
}

// Report is the final outcome of a scan.
type Report struct {
	Target          string        `json:"target"`
	IP              string        `json:"ip"`
	StartTime       time.Time     `json:"start_time"`
	EndTime         time.Time     `json:"end_time"`
	DurationSeconds float64       `json:"duration_seconds"`
	OpenPorts       []ProbeResult `json:"open_ports"`
}

// ResolutionError indicates the scan target could not be resolved to an IP
// address. It is the only error a scan run can return: everything after
// resolution degrades gracefully instead of failing.
type ResolutionError struct {
	Target string
	Err    error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("unable to resolve target %q: %v", e.Target, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Run resolves the target, dispatches the probe workers over the configured
// port set, and assembles the report. The returned error is always a
// *ResolutionError when non-nil.
func Run(target string, opts Options) (*Report, error) {
	resolve := opts.Resolve
	if resolve == nil {
		resolve = netutil.ResolveTargetToIPv4
	}

	ip, err := resolve(target)
	if err != nil {
		return nil, &ResolutionError{Target: target, Err: err}
	}

	start := time.Now()
	results := ExecuteScan(ip, opts.Ports, opts.Workers, opts.Timeout, opts.Banner, opts.Progress)
	end := time.Now()

	return BuildReport(target, ip, results, start, end), nil
}

// BuildReport sorts the accumulated results by port and wraps them with the
// scan's timing metadata. The sort is stable so accidental duplicates keep
// their arrival order.
func BuildReport(target, ip string, results []ProbeResult, start, end time.Time) *Report {
	sorted := make([]ProbeResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Port < sorted[j].Port
	})

	duration := end.Sub(start).Seconds()
	if duration < 0 {
		duration = 0
	}

	return &Report{
		Target:          target,
		IP:              ip,
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: duration,
		OpenPorts:       sorted,
	}
}
