package chi

import (
	"context"
	"net/http"
)

// exemptPaths are routes that bypass viewer identity (health, metrics).
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

type viewerKey struct{}

// ViewerMiddleware extracts the viewer identity installed by the upstream
// auth gateway from the given header. Requests without it are rejected;
// visibility filtering is meaningless without a viewer.
func ViewerMiddleware(header string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			viewerID := r.Header.Get(header)
			if viewerID == "" {
				writeMessage(w, http.StatusUnauthorized, "Authentication required.")
				return
			}

			ctx := context.WithValue(r.Context(), viewerKey{}, viewerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ViewerFromContext returns the authenticated viewer id, or "" if absent.
func ViewerFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(viewerKey{}).(string); ok {
		return v
	}
	return ""
}
