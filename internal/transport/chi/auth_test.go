package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestViewerMiddleware_MissingHeader_401(t *testing.T) {
	mw := ViewerMiddleware("X-Viewer-Id")
	handler := mw(okHandler())

	req := httptest.NewRequest("GET", "/search?q=nike", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("missing header: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}

	var resp messageResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Message != "Authentication required." {
		t.Errorf("message: got %q", resp.Message)
	}
}

func TestViewerMiddleware_WithHeader_PropagatesViewer(t *testing.T) {
	mw := ViewerMiddleware("X-Viewer-Id")

	var got string
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ViewerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/search?q=nike", http.NoBody)
	req.Header.Set("X-Viewer-Id", "viewer-1")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusOK)
	}
	if got != "viewer-1" {
		t.Errorf("viewer: got %q, want %q", got, "viewer-1")
	}
}

func TestViewerMiddleware_ExemptPaths_PassThrough(t *testing.T) {
	mw := ViewerMiddleware("X-Viewer-Id")
	handler := mw(okHandler())

	for _, path := range []string{"/health", "/metrics"} {
		req := httptest.NewRequest("GET", path, http.NoBody)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("%s: got %d, want %d", path, rr.Code, http.StatusOK)
		}
	}
}

func TestViewerFromContext_Missing_Empty(t *testing.T) {
	req := httptest.NewRequest("GET", "/search", http.NoBody)
	if got := ViewerFromContext(req.Context()); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
