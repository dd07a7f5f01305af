package kit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RoutePattern labels a request by its matched chi pattern ("/products/{id}").
// Unmatched requests collapse into a single label.
func RoutePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if rp := rctx.RoutePattern(); rp != "" {
			return rp
		}
	}
	return "unmatched"
}
