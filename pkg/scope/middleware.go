package scope

import (
	"net/http"
)

// NewMiddleware installs a fresh Registry for every request and closes it
// once the request finishes, so loaders and their caches never outlive one
// top-level execution.
func NewMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			registry := NewRegistry()
			defer registry.Close()

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), registry)))
		})
	}
}
