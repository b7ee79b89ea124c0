package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/hangman-backend/internal/config"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws into one Middleware with the first argument outermost.
// Nil entries are skipped, so optional middleware can be passed inline.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				h = mws[i](h)
			}
		}
		return h
	}
}

// Standard is the stack every route runs behind. Recovery is outermost, so
// the 500 written after a panic keeps the request ID and CORS headers.
func Standard(logger *slog.Logger, cors config.CORSConfig) Middleware {
	return Chain(
		Recovery(logger),
		RequestID(),
		ClientIP(),
		Logger(logger),
		CORS(cors),
	)
}
