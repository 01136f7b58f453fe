package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hidegrade/internal/modkit/httpkit"
	phttp "hidegrade/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func tag(v string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Mw", v)
			next.ServeHTTP(w, r)
		})
	}
}

func TestBuild_AppliesOptionsInOrder(t *testing.T) {
	type ports struct{ N int }

	b := Build(
		WithName("records"),
		WithPrefix("/one"),
		WithPrefix("/records"),
		WithMiddlewares(tag("a")),
		WithMiddlewares(tag("b")),
		WithPorts(ports{N: 7}),
	)

	assert.Equal(t, "records", b.Name)
	assert.Equal(t, "/records", b.Prefix)
	assert.Len(t, b.Mw, 2)
	assert.Equal(t, ports{N: 7}, b.Ports)
	assert.Empty(t, Build().Mw)
}

func TestBuilt_MountScopesRoutesAndMiddleware(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	b := Build(WithPrefix("records/"), WithMiddlewares(tag("a"), tag("b")))
	b.Mount(r, func(rr httpkit.Router) {
		rr.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
			_, _ = w.Write([]byte(phttp.URLParam(req, "id")))
		})
	})

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/records/r1", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "r1", rr.Body.String())
	assert.Equal(t, []string{"a", "b"}, rr.Header().Values("X-Mw"))

	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/r1", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBuilt_MountRejectsRootPrefix(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	assert.Panics(t, func() { Build().Mount(r, func(httpkit.Router) {}) })
}
