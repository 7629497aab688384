package server

import (
	"net/http"
	"strings"
)

// BasicRouter dispatches on method and path through an [http.ServeMux], so paths may carry wildcards such as "/users/{id}".
//
// Requests for a registered path with an unregistered method get a 405.
type BasicRouter struct {
	mux         *http.ServeMux
	middlewares []Middleware
}

// NewBasicRouter creates a new [BasicRouter] instance.
func NewBasicRouter() *BasicRouter {
	return &BasicRouter{mux: http.NewServeMux()}
}

// Use appends router-wide middleware. Only routes registered afterwards are wrapped.
func (r *BasicRouter) Use(middleware ...Middleware) {
	r.middlewares = append(r.middlewares, middleware...)
}

func (r *BasicRouter) Handle(method, path string, handler http.Handler) {
	r.mux.Handle(pattern(method, path), r.Apply(handler))
}

func (r *BasicRouter) HandleFunc(method, path string, fn http.HandlerFunc) {
	r.Handle(method, path, fn)
}

// Handler registers every route in [Handler.Routes] to handler.
func (r *BasicRouter) Handler(handler Handler) {
	wrapped := r.Apply(handler)
	for _, route := range handler.Routes() {
		r.mux.Handle(route, wrapped)
	}
}

// Group returns a [RouteGroup] whose routes live under prefix and pass through middleware
// after the router-wide stack.
func (r *BasicRouter) Group(prefix string, middleware ...Middleware) *RouteGroup {
	return &RouteGroup{router: r, prefix: strings.TrimSuffix(prefix, "/"), middlewares: middleware}
}

func (r *BasicRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Apply wraps handler with the router-wide middleware, first added outermost.
func (r *BasicRouter) Apply(handler http.Handler) http.Handler {
	return chain(handler, r.middlewares)
}

// RouteGroup registers routes on a [BasicRouter] under a shared prefix and middleware.
type RouteGroup struct {
	router      *BasicRouter
	prefix      string
	middlewares []Middleware
}

func (g *RouteGroup) Handle(method, path string, handler http.Handler) {
	g.router.Handle(method, g.prefix+path, chain(handler, g.middlewares))
}

func (g *RouteGroup) HandleFunc(method, path string, fn http.HandlerFunc) {
	g.Handle(method, path, fn)
}

func chain(handler http.Handler, middlewares []Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

// pattern builds a ServeMux pattern such as "GET /health".
func pattern(method, path string) string {
	return strings.ToUpper(method) + " " + path
}
