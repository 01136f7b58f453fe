package httpkit

import (
	"net/http"
	"strings"

	perrs "hidegrade/internal/platform/errors"
	pnet "hidegrade/internal/platform/net"
)

// User returns the owner id Auth put on the request, handlers scope every query by it
func User(r *http.Request) (string, error) {
	if uid := pnet.UserID(r.Context()); uid != "" {
		return uid, nil
	}
	return "", perrs.Unauthorizedf("missing bearer token")
}

// BearerToken returns the token of an "Authorization: Bearer <token>" header, scheme case is ignored
func BearerToken(r *http.Request) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return token, nil
}
