package middlewares

import (
	"log/slog"
	"net"
	"net/http"
	"net/netip"

	"kamingo-landing/internal/metrics"
	"kamingo-landing/internal/models"
)

// BlocklistMiddleware rejects requests from denied addresses before any
// session loading or routing happens. It expects RemoteAddr to already be
// normalized by ClientIPMiddleware.
func BlocklistMiddleware(blocklist *models.Blocklist, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if blocklist.Len() == 0 {
				next.ServeHTTP(w, r)
				return
			}

			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			addr, err := netip.ParseAddr(host)
			if err != nil {
				logger.Warn("failed to parse client address", "remote_addr", r.RemoteAddr, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if blocklist.Contains(addr) {
				metrics.BlocklistRejections.Inc()
				logger.Info("rejected blocklisted address", "addr", addr.String(), "path", r.URL.Path)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"Forbidden"}` + "\n"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
