package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	pnet "hidegrade/internal/platform/net"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := User(r)
	assert.EqualError(t, err, "missing bearer token")

	r = r.WithContext(pnet.WithUser(r.Context(), "owner-7"))
	uid, err := User(r)
	require.NoError(t, err)
	assert.Equal(t, "owner-7", uid)
}

func TestBearerToken(t *testing.T) {
	ok := map[string]string{
		"Bearer abc123":    "abc123",
		"bearer xyz":       "xyz",
		"BeArEr token":     "token",
		"bearer     stuff": "stuff",
	}
	for h, want := range ok {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", h)
		got, err := BearerToken(r)
		require.NoError(t, err, h)
		assert.Equal(t, want, got, h)
	}

	for _, h := range []string{"", "Bearer", "Bearer   ", "Basic abc", "Token abc"} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", h)
		_, err := BearerToken(r)
		assert.Error(t, err, h)
	}
}
