package scanner

import (
	"sync"
	"time"
)

// ProgressFunc receives best-effort progress notifications as
// (scanned, total) pairs. It is invoked from the collector goroutine, never
// concurrently with itself.
type ProgressFunc func(scanned, total int)

// probeOutcome is the per-port message workers hand to the collector. Every
// scheduled port produces exactly one outcome whether or not it was open, so
// the collector can count completions.
type probeOutcome struct {
	result ProbeResult
	open   bool
}

// ExecuteScan probes every port in ports against ip using a fixed pool of
// worker goroutines. workers bounds the number of in-flight probes; it does
// not need to match len(ports). The call returns once all probes have
// completed. Individual probe failures simply omit that port from the
// returned results; the scan itself never fails.
//
// Results are collected over a channel by a single aggregator rather than a
// shared locked buffer, so no two goroutines ever touch the accumulation
// slice. Ordering of the returned slice is unspecified.
func ExecuteScan(ip string, ports []int, workers int, timeout time.Duration, banner bool, progress ProgressFunc) []ProbeResult {
	total := len(ports)
	if total == 0 {
		return []ProbeResult{}
	}
	if workers < 1 {
		workers = 1
	}
	if workers > total {
		workers = total
	}

	jobs := make(chan int, total)
	outcomes := make(chan probeOutcome, total)

	var wg sync.WaitGroup
	wg.Add(total)
	for w := 0; w < workers; w++ {
		go func() {
			for port := range jobs {
				result, open := ScanPort(ip, port, timeout, banner)
				outcomes <- probeOutcome{result: result, open: open}
				wg.Done()
			}
		}()
	}

	for _, port := range ports {
		jobs <- port
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	// Progress fires every ~10% of the port set.
	step := total / 10
	if step < 1 {
		step = 1
	}

	open := make([]ProbeResult, 0, total)
	scanned := 0
	for outcome := range outcomes {
		scanned++
		if progress != nil && scanned%step == 0 {
			progress(scanned, total)
		}
		if outcome.open {
			open = append(open, outcome.result)
		}
	}
	return open
}
