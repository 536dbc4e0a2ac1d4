// Package netutil parses "host<sep>port" strings into IPv4 endpoints.
package netutil

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"strings"
)

var (
	// ErrInvalidEndpoint is returned for malformed input: a missing
	// separator or an unparseable port.
	ErrInvalidEndpoint = errors.New("invalid endpoint")

	// ErrResolve is returned when name resolution fails. It is transient;
	// the caller decides whether to retry.
	ErrResolve = errors.New("endpoint resolution failed")
)

// ParseEndpoint turns a "host<sep>port" pair into an IPv4 endpoint.
//
// An empty pair yields the wildcard endpoint (any address, port 0). An
// empty host with a port yields the wildcard address on that port.
// Hostnames are resolved to their first IPv4 address.
func ParseEndpoint(pair string, sep byte) (netip.AddrPort, error) {
	if pair == "" {
		return netip.AddrPortFrom(netip.IPv4Unspecified(), 0), nil
	}

	i := strings.IndexByte(pair, sep)
	if i < 0 {
		return netip.AddrPort{}, fmt.Errorf("%w: %q has no %q separator", ErrInvalidEndpoint, pair, sep)
	}
	host, portStr := pair[:i], pair[i+1:]

	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("%w: bad port %q", ErrInvalidEndpoint, portStr)
	}

	if host == "" {
		return netip.AddrPortFrom(netip.IPv4Unspecified(), uint16(port)), nil
	}
	if addr, err := netip.ParseAddr(host); err == nil {
		if !addr.Is4() {
			return netip.AddrPort{}, fmt.Errorf("%w: %q is not IPv4", ErrInvalidEndpoint, host)
		}
		return netip.AddrPortFrom(addr, uint16(port)), nil
	}

	ips, err := net.LookupIP(host)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("%w: %v", ErrResolve, err)
	}
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			addr, _ := netip.AddrFromSlice(v4)
			return netip.AddrPortFrom(addr, uint16(port)), nil
		}
	}
	return netip.AddrPort{}, fmt.Errorf("%w: %q has no IPv4 address", ErrResolve, host)
}
