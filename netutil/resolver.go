package netutil

import (
	"errors"
	"net"
)

// ResolveTargetToIPv4 resolves the given target (hostname or IP string)
// and returns the first IPv4 address as a string. IPv6-only targets are
// rejected; TCP connect scanning here assumes an IPv4 endpoint.
func ResolveTargetToIPv4(target string) (string, error) {
	if ip := net.ParseIP(target); ip != nil {
		if ip4 := ip.To4(); ip4 != nil {
			return ip4.String(), nil
		}
		return "", errors.New("IPv6 addresses are not supported")
	}

	ips, err := net.LookupIP(target)
	if err != nil {
		return "", err
	}
	var sawV6 bool
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			return v4.String(), nil
		}
		sawV6 = true
	}
	if sawV6 {
		return "", errors.New("hostname resolves only to IPv6 addresses; IPv6 is not supported")
	}
	return "", errors.New("no A records found for host")
}
