package httpkit

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perrs "hidegrade/internal/platform/errors"
	phttp "hidegrade/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lotInput struct {
	LotID string `json:"lot_id" validate:"required,max=8"`
}

func newAPI(t *testing.T) Router {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	MountAPIV1(r, nil, func(api Router) {
		api.Route("/lots", func(lr Router) {
			PostJSON[lotInput](lr, "/", func(_ *http.Request, in lotInput) (any, error) {
				return Created(map[string]string{"lot": in.LotID}), nil
			})
			Get(lr, "/{id}", func(r *http.Request) (any, error) {
				if Param(r, "id") == "missing" {
					return nil, perrs.NotFoundf("lot not found")
				}
				return map[string]string{"id": Param(r, "id")}, nil
			})
			Delete(lr, "/{id}", func(*http.Request) (any, error) { return NoContent(), nil })
			Get(lr, "/boom/x", func(*http.Request) (any, error) { return nil, errors.New("nah") })
		})
	})
	return r
}

func serve(r Router, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)
	return rr
}

func TestJSON_ValidatesAndPassesResponse(t *testing.T) {
	r := newAPI(t)

	rr := serve(r, http.MethodPost, "/api/v1/lots/", `{"lot_id":"L-1"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"lot":"L-1"`)

	rr = serve(r, http.MethodPost, "/api/v1/lots/", `{"lot_id":""}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())

	rr = serve(r, http.MethodPost, "/api/v1/lots/", `{"lot_id":"L-1","extra":1}`)
	assert.GreaterOrEqual(t, rr.Code, 400)

	rr = serve(r, http.MethodPost, "/api/v1/lots/", `{`)
	assert.GreaterOrEqual(t, rr.Code, 400)
}

func TestCall_ParamsAndErrors(t *testing.T) {
	r := newAPI(t)

	rr := serve(r, http.MethodGet, "/api/v1/lots/L-9", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":"L-9"`)

	rr = serve(r, http.MethodGet, "/api/v1/lots/missing", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(r, http.MethodDelete, "/api/v1/lots/L-9", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = serve(r, http.MethodGet, "/api/v1/lots/boom/x", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
