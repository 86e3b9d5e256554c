package validators

import (
	"context"
	"net"
	"strings"
)

// Resolver é o subconjunto de net.Resolver usado na checagem de domínio.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

var DefaultResolver Resolver = net.DefaultResolver

func IsEmailDomainValid(ctx context.Context, email string) bool {
	return IsEmailDomainValidWith(ctx, DefaultResolver, email)
}

func IsEmailDomainValidWith(ctx context.Context, r Resolver, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := r.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
