package httpkit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func applyStack(h http.Handler, stack []func(http.Handler) http.Handler) http.Handler {
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}
	return h
}

func TestCommonStack_HealthAndPassThrough(t *testing.T) {
	hit := 0
	root := applyStack(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit++
		w.WriteHeader(http.StatusNoContent)
	}), CommonStack(StackOptions{}))

	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK || hit != 0 {
		t.Fatalf("heartbeat: code=%d hit=%d", rr.Code, hit)
	}

	rr = httptest.NewRecorder()
	root.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rr.Code != http.StatusNoContent || hit != 1 {
		t.Fatalf("final handler: code=%d hit=%d", rr.Code, hit)
	}
}

func TestCommonStack_ObserveSeesRequestID(t *testing.T) {
	var seen string
	observe := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = r.Header.Get("X-Request-Id")
			next.ServeHTTP(w, r)
		})
	}
	root := applyStack(http.NotFoundHandler(), CommonStack(StackOptions{Observe: observe, MaxInFlight: 4}))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "rid-1")
	root.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "rid-1" {
		t.Fatalf("observe middleware did not run, seen=%q", seen)
	}
}

func TestCommonStack_RejectsFormBodies(t *testing.T) {
	root := applyStack(http.NotFoundHandler(), CommonStack(StackOptions{}))
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("a=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415 got %d", rr.Code)
	}
}
