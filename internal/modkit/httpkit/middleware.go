package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "hidegrade/internal/platform/net/http"
	"hidegrade/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack, zero values keep the defaults
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration
	MaxInFlight int
	SlowRequest time.Duration

	// Observe runs right after the request id is assigned, main passes the metrics middleware here
	Observe func(http.Handler) http.Handler
}

// CommonStack returns the baseline middleware slice for the versioned API
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.SlowRequest <= 0 {
		o.SlowRequest = 500 * time.Millisecond
	}

	stack := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
	}
	if o.Observe != nil {
		stack = append(stack, o.Observe)
	}
	stack = append(stack,
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.AllowContentType("application/json"),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	)
	if o.MaxInFlight > 0 {
		stack = append(stack, middleware.Throttle(o.MaxInFlight))
	}
	return stack
}

// Auth wires the auth middleware to the platform JSON writer
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}
