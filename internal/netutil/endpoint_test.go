package netutil_test

import (
	"errors"
	"testing"

	"shroud/internal/netutil"
)

func TestParseWildcardLiteral(t *testing.T) {
	ep, err := netutil.ParseEndpoint("0.0.0.0:9000", ':')
	if err != nil {
		t.Fatalf("ParseEndpoint: %v", err)
	}
	if !ep.Addr().IsUnspecified() || ep.Port() != 9000 {
		t.Fatalf("got %v, want wildcard address port 9000", ep)
	}
}

func TestParseLiteral(t *testing.T) {
	ep, err := netutil.ParseEndpoint("127.0.0.1:80", ':')
	if err != nil {
		t.Fatalf("ParseEndpoint: %v", err)
	}
	if ep.String() != "127.0.0.1:80" {
		t.Fatalf("got %v, want 127.0.0.1:80", ep)
	}
}

func TestMissingSeparator(t *testing.T) {
	_, err := netutil.ParseEndpoint("badinput", ':')
	if !errors.Is(err, netutil.ErrInvalidEndpoint) {
		t.Fatalf("got %v, want ErrInvalidEndpoint", err)
	}
}

func TestBadPort(t *testing.T) {
	_, err := netutil.ParseEndpoint("127.0.0.1:http", ':')
	if !errors.Is(err, netutil.ErrInvalidEndpoint) {
		t.Fatalf("got %v, want ErrInvalidEndpoint", err)
	}
}

func TestEmptyPairIsWildcard(t *testing.T) {
	ep, err := netutil.ParseEndpoint("", ':')
	if err != nil {
		t.Fatalf("ParseEndpoint: %v", err)
	}
	if !ep.Addr().IsUnspecified() || ep.Port() != 0 {
		t.Fatalf("got %v, want any-address any-port", ep)
	}
}

func TestEmptyHostIsWildcard(t *testing.T) {
	ep, err := netutil.ParseEndpoint(":9000", ':')
	if err != nil {
		t.Fatalf("ParseEndpoint: %v", err)
	}
	if !ep.Addr().IsUnspecified() || ep.Port() != 9000 {
		t.Fatalf("got %v, want wildcard port 9000", ep)
	}
}

func TestCustomSeparator(t *testing.T) {
	ep, err := netutil.ParseEndpoint("127.0.0.1=443", '=')
	if err != nil {
		t.Fatalf("ParseEndpoint: %v", err)
	}
	if ep.String() != "127.0.0.1:443" {
		t.Fatalf("got %v, want 127.0.0.1:443", ep)
	}
}

func TestResolutionFailureIsRetryable(t *testing.T) {
	if testing.Short() {
		t.Skip("needs a resolver")
	}
	_, err := netutil.ParseEndpoint("host.invalid:1", ':')
	if !errors.Is(err, netutil.ErrResolve) {
		t.Fatalf("got %v, want ErrResolve", err)
	}
}
