package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "hidegrade/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestMountProfiler(t *testing.T) {
	code := func(enabled bool, path string) int {
		r := phttp.AdaptChi(chi.NewRouter())
		phttp.MountProfiler(r, "/debug", enabled)
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, code(true, "/debug/pprof/"))
	assert.Equal(t, http.StatusOK, code(true, "/debug/pprof/cmdline"))
	assert.Equal(t, http.StatusNotFound, code(false, "/debug/pprof/"))
}
