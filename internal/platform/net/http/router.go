package http

import "net/http"

// Handler is the handler func shape modules register
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the routing seam modules mount against, chi sits behind it
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Delete(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}
