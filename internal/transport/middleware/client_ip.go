package middleware

import (
	"net"
	"net/http"

	"github.com/heartmarshall/hangman-backend/pkg/ctxutil"
)

// ClientIP returns middleware that stores the caller's address, without the
// port, in the context. Run it after chi's RealIP so proxy headers are
// already applied to RemoteAddr.
func ClientIP() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(ctxutil.WithClientIP(r.Context(), hostOnly(r.RemoteAddr))))
		})
	}
}

func hostOnly(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

// clientKey identifies the caller for rate limiting.
func clientKey(r *http.Request) string {
	if ip := ctxutil.ClientIPFromCtx(r.Context()); ip != "" {
		return ip
	}
	return hostOnly(r.RemoteAddr)
}
