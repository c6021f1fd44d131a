package middleware

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

type clientIPKey struct{}

// ClientIP resolves the caller address for the rest of the chain. Forwarding
// headers are honoured only when the socket peer is a trusted proxy.
type ClientIP struct {
	trusted []netip.Prefix
}

// NewClientIP creates a ClientIP middleware trusting the given proxy ranges.
func NewClientIP(trusted []netip.Prefix) *ClientIP {
	return &ClientIP{trusted: trusted}
}

func (m *ClientIP) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), clientIPKey{}, m.resolve(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *ClientIP) resolve(r *http.Request) string {
	peer := remoteHost(r.RemoteAddr)

	addr, err := netip.ParseAddr(peer)
	if err != nil || !m.isTrusted(addr) {
		return peer
	}

	// walk X-Forwarded-For from the closest hop, skipping our own proxies
	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			break
		}
		if !m.isTrusted(hop) {
			return hop.Unmap().String()
		}
	}

	if realIP, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return realIP.Unmap().String()
	}

	return peer
}

func (m *ClientIP) isTrusted(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, p := range m.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// clientIP returns the address resolved by ClientIP, or the socket peer when
// the middleware did not run.
func clientIP(r *http.Request) string {
	if ip, ok := r.Context().Value(clientIPKey{}).(string); ok && ip != "" {
		return ip
	}
	return remoteHost(r.RemoteAddr)
}

func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
