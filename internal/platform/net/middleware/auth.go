package middleware

import (
	"net/http"

	"hidegrade/internal/platform/logger"
	pnet "hidegrade/internal/platform/net"
)

// AuthPort resolves the owner a request acts for
type AuthPort interface {
	Parse(r *http.Request) (userID string, err error)
}

// Writer renders an envelope with status
type Writer func(w http.ResponseWriter, status int, body any)

// Auth puts the resolved owner on the request context and answers failures through write
// a nil port leaves requests untouched
func Auth(p AuthPort, write Writer) Middleware {
	if p == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := logger.WithRequest(pnet.WithUser(r.Context(), uid), "", uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
