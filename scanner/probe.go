package scanner

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// ProbeResult describes a single open port.
type ProbeResult struct {
	Port    int    `json:"port"`
	Service string `json:"service"`
	Banner  string `json:"banner"`
}

// ScanPort attempts a TCP connect to ip:port bounded by timeout. The second
// return value is false when the port did not accept a connection; connect
// failures are never surfaced as errors because a refused or filtered port is
// an expected outcome, not a fault.
//
// When banner is true a short banner grab is attempted on the open
// connection. Banner failures are absorbed: the port is still reported open
// with an empty banner.
func ScanPort(ip string, port int, timeout time.Duration, banner bool) (ProbeResult, bool) {
	address := net.JoinHostPort(ip, strconv.Itoa(port))

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return ProbeResult{}, false
	}
	defer conn.Close()

	result := ProbeResult{
		Port:    port,
		Service: ServiceName(port),
	}
	if banner {
		result.Banner = grabBanner(conn, port, timeout)
	}
	return result, true
}

// grabBanner sends a minimal probe payload and reads whatever the service
// answers with, up to 1024 bytes. HTTP-ish ports get a HEAD request so
// servers that wait for a request still produce output; everything else gets
// a bare line terminator. Returns "" on any failure.
func grabBanner(conn net.Conn, port int, timeout time.Duration) string {
	deadline := time.Now().Add(timeout)
	if err := conn.SetDeadline(deadline); err != nil {
		return ""
	}

	var payload []byte
	switch port {
	case 80, 8080, 8000:
		payload = []byte("HEAD / HTTP/1.0\r\nHost: localhost\r\n\r\n")
	default:
		payload = []byte("\r\n")
	}
	// A failed write is not fatal: some services talk first, so the read
	// below may still succeed.
	_, _ = conn.Write(payload)

	buf := make([]byte, 1024)
	n, err := conn.Read(buf)
	if err != nil || n == 0 {
		return ""
	}

	text := strings.ToValidUTF8(string(buf[:n]), "")
	return strings.TrimSpace(text)
}
