package mid

import (
	"context"
	"net/http"
	"slices"

	"github.com/ardanlabs/ledger/foundation/web"
)

// Cors sets the Cross-Origin Resource Sharing headers for requests coming
// from one of the allowed origins. An allowed origin of "*" admits any origin.
func Cors(origins ...string) web.Middleware {
	anyOrigin := slices.Contains(origins, "*")

	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			origin := r.Header.Get("Origin")

			switch {
			case anyOrigin:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && slices.Contains(origins, origin):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			default:
				return handler(ctx, w, r)
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length")
			w.Header().Set("Access-Control-Max-Age", "86400")

			return handler(ctx, w, r)
		}

		return h
	}

	return m
}
