package scanner

import (
	"reflect"
	"sort"
	"testing"
	"time"
)

// scanFixture opens `open` listeners and reserves `closed` dead ports,
// returning the combined shuffled-ish port list and the sorted open ports.
func scanFixture(t *testing.T, open, closed int) ([]int, []int) {
	t.Helper()

	var all, openPorts []int
	for i := 0; i < open; i++ {
		l, port := openListener(t)
		t.Cleanup(func() { _ = l.Close() })
		all = append(all, port)
		openPorts = append(openPorts, port)
	}
	for i := 0; i < closed; i++ {
		all = append(all, closedPort(t))
	}
	sort.Ints(openPorts)
	return all, openPorts
}

func resultPorts(results []ProbeResult) []int {
	ports := make([]int, 0, len(results))
	for _, r := range results {
		ports = append(ports, r.Port)
	}
	sort.Ints(ports)
	return ports
}

func TestExecuteScan_FindsExactlyOpenPorts(t *testing.T) {
	all, openPorts := scanFixture(t, 3, 4)

	results := ExecuteScan("127.0.0.1", all, 10, time.Second, false, nil)
	if got := resultPorts(results); !reflect.DeepEqual(got, openPorts) {
		t.Fatalf("got open ports %v, want %v", got, openPorts)
	}
}

func TestExecuteScan_WorkerCountDoesNotChangeResults(t *testing.T) {
	all, _ := scanFixture(t, 4, 6)

	serial := ExecuteScan("127.0.0.1", all, 1, time.Second, false, nil)
	parallel := ExecuteScan("127.0.0.1", all, 50, time.Second, false, nil)

	if !reflect.DeepEqual(resultPorts(serial), resultPorts(parallel)) {
		t.Fatalf("W=1 found %v but W=50 found %v", resultPorts(serial), resultPorts(parallel))
	}
}

func TestExecuteScan_ClosedPortsDoNotFail(t *testing.T) {
	ports := []int{closedPort(t), closedPort(t)}

	results := ExecuteScan("127.0.0.1", ports, 2, 200*time.Millisecond, false, nil)
	if len(results) != 0 {
		t.Fatalf("expected no results for closed ports, got %v", results)
	}
}

func TestExecuteScan_EmptyPortSet(t *testing.T) {
	results := ExecuteScan("127.0.0.1", nil, 10, time.Second, false, nil)
	if len(results) != 0 {
		t.Fatalf("expected empty results, got %v", results)
	}
}

func TestExecuteScan_ProgressNotifications(t *testing.T) {
	var ports []int
	for i := 0; i < 10; i++ {
		ports = append(ports, closedPort(t))
	}

	type tick struct{ scanned, total int }
	var ticks []tick
	progress := func(scanned, total int) {
		ticks = append(ticks, tick{scanned, total})
	}

	ExecuteScan("127.0.0.1", ports, 5, 200*time.Millisecond, false, progress)

	// total/10 == 1, so every completion reports.
	if len(ticks) != 10 {
		t.Fatalf("expected 10 progress ticks, got %d", len(ticks))
	}
	last := ticks[len(ticks)-1]
	if last.scanned != 10 || last.total != 10 {
		t.Fatalf("last tick = %+v, want {10 10}", last)
	}
	for i, tk := range ticks {
		if tk.scanned != i+1 {
			t.Fatalf("ticks out of order: %+v", ticks)
		}
	}
}
