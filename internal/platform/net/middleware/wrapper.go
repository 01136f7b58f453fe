// Package middleware adapts chi and go-chi/cors middleware and adds the in house ones
package middleware

import (
	"net/http"
	"time"

	pstrings "hidegrade/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the standard net/http middleware shape
type Middleware = func(http.Handler) http.Handler

func RequestID() Middleware                    { return chimw.RequestID }
func RealIP() Middleware                       { return chimw.RealIP }
func NoCache() Middleware                      { return chimw.NoCache }
func StripSlashes() Middleware                 { return chimw.StripSlashes }
func Timeout(d time.Duration) Middleware       { return chimw.Timeout(d) }
func Throttle(limit int) Middleware            { return chimw.Throttle(limit) }
func Heartbeat(path string) Middleware         { return chimw.Heartbeat(path) }
func AllowContentType(ct ...string) Middleware { return chimw.AllowContentType(ct...) }

// Compress gzips and deflates responses at level, e.g. flate.BestSpeed
func Compress(level int) Middleware { return chimw.NewCompressor(level).Handler }

// CORSOptions is the part of go-chi/cors the API configures
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// CORS applies go-chi/cors, methods and headers default to what the API uses
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"}),
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         o.MaxAge,
	})
}
