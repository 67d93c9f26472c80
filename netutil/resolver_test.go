package netutil

import "testing"

func TestResolveTargetToIPv4_LiteralIPv4(t *testing.T) {
	ip, err := ResolveTargetToIPv4("1.2.3.4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ip != "1.2.3.4" {
		t.Fatalf("got %s want 1.2.3.4", ip)
	}
}

func TestResolveTargetToIPv4_LiteralIPv6Rejected(t *testing.T) {
	if _, err := ResolveTargetToIPv4("::1"); err == nil {
		t.Fatalf("expected error for IPv6 literal")
	}
}
