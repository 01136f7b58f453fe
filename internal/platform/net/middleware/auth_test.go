package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	perr "hidegrade/internal/platform/errors"
	"hidegrade/internal/platform/net"
	"hidegrade/internal/platform/net/middleware"
)

type fakeAuthPort struct {
	user string
	err  error
}

func (f fakeAuthPort) Parse(*http.Request) (string, error) { return f.user, f.err }

func writeStub(w http.ResponseWriter, status int, _ any) { w.WriteHeader(status) }

func TestAuth_NilPortPassesThrough(t *testing.T) {
	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	middleware.Auth(nil, writeStub)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if !nextCalled || rr.Code != http.StatusOK {
		t.Fatalf("expected pass through, called=%v code=%d", nextCalled, rr.Code)
	}
}

func TestAuth_RejectsUnresolvedOwner(t *testing.T) {
	p := fakeAuthPort{err: perr.Unauthorizedf("invalid bearer token")}
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next must not run on auth error")
	})

	rr := httptest.NewRecorder()
	middleware.Auth(p, writeStub)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rr.Code)
	}
}

func TestAuth_SetsUserOnContext(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = net.UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	middleware.Auth(fakeAuthPort{user: "owner-1"}, writeStub)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK || seen != "owner-1" {
		t.Fatalf("code=%d user=%q", rr.Code, seen)
	}
}
