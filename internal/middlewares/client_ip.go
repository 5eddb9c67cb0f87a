package middlewares

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ClientIPMiddleware resolves the real caller address from proxy headers and
// rewrites RemoteAddr to "IP:port" so the blocklist filter and log lines see
// a consistent address regardless of deployment topology.
func ClientIPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if addr, ok := resolveClientAddr(r); ok {
			_, port, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil || port == "" {
				port = "0"
			}
			r.RemoteAddr = net.JoinHostPort(addr.String(), port)
		}

		next.ServeHTTP(w, r)
	})
}

// resolveClientAddr checks trusted proxy headers in precedence order and
// falls back to the socket address. X-Forwarded-For may carry a chain; only
// the first (client) hop is taken.
func resolveClientAddr(r *http.Request) (netip.Addr, bool) {
	for _, header := range []string{"True-Client-IP", "X-Real-IP"} {
		if raw := r.Header.Get(header); raw != "" {
			if addr, err := netip.ParseAddr(strings.TrimSpace(raw)); err == nil {
				return addr, true
			}
		}
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if addr, err := netip.ParseAddr(strings.TrimSpace(first)); err == nil {
			return addr, true
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, false
	}

	return addr, true
}
