package scanner

import (
	"net"
	"testing"
	"time"
)

// openListener starts a TCP listener on the loopback and returns its port.
func openListener(t *testing.T) (net.Listener, int) {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	return l, l.Addr().(*net.TCPAddr).Port
}

// closedPort returns a loopback port that no longer has a listener.
func closedPort(t *testing.T) int {
	t.Helper()
	l, port := openListener(t)
	_ = l.Close()
	time.Sleep(20 * time.Millisecond)
	return port
}

func TestScanPort_Open(t *testing.T) {
	l, port := openListener(t)
	defer l.Close()

	res, ok := ScanPort("127.0.0.1", port, time.Second, false)
	if !ok {
		t.Fatalf("expected port %d to be open", port)
	}
	if res.Port != port {
		t.Fatalf("got port %d, want %d", res.Port, port)
	}
	if res.Service != "Unknown" {
		t.Fatalf("got service %q, want Unknown for ephemeral port", res.Service)
	}
	if res.Banner != "" {
		t.Fatalf("banner not requested but got %q", res.Banner)
	}
}

func TestScanPort_Closed(t *testing.T) {
	port := closedPort(t)

	_, ok := ScanPort("127.0.0.1", port, 500*time.Millisecond, false)
	if ok {
		t.Fatalf("expected port %d to be closed", port)
	}
}

func TestScanPort_BannerRead(t *testing.T) {
	l, port := openListener(t)
	defer l.Close()

	go func() {
		conn, err := l.Accept()
		if err != nil {
			return
		}
		_, _ = conn.Write([]byte("SSH-2.0-TestServer\r\n"))
		_ = conn.Close()
	}()

	res, ok := ScanPort("127.0.0.1", port, time.Second, true)
	if !ok {
		t.Fatalf("expected open port")
	}
	if res.Banner != "SSH-2.0-TestServer" {
		t.Fatalf("got banner %q, want SSH-2.0-TestServer", res.Banner)
	}
}

func TestScanPort_BannerFailureStillOpen(t *testing.T) {
	l, port := openListener(t)
	defer l.Close()

	// Accept and slam the connection shut without sending anything, so the
	// banner read fails while the connect itself succeeded.
	go func() {
		conn, err := l.Accept()
		if err != nil {
			return
		}
		_ = conn.Close()
	}()

	res, ok := ScanPort("127.0.0.1", port, 500*time.Millisecond, true)
	if !ok {
		t.Fatalf("banner failure must not turn an open port into a closed one")
	}
	if res.Banner != "" {
		t.Fatalf("expected empty banner, got %q", res.Banner)
	}
}

func TestServiceName(t *testing.T) {
	cases := map[int]string{
		22:    "SSH",
		80:    "HTTP",
		443:   "HTTPS",
		3306:  "MySQL",
		12345: "Unknown",
	}
	for port, want := range cases {
		if got := ServiceName(port); got != want {
			t.Fatalf("ServiceName(%d) = %q, want %q", port, got, want)
		}
	}
}
