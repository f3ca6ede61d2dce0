// Package router registra as rotas da API sobre o httprouter
package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/earnings-estimator-api/pkg/apiErrors"
)

// Route associa método e caminho a um handler, com middlewares próprios opcionais
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

// wrapped devolve o handler envolto pelos middlewares; o primeiro da lista é o mais externo
func (rt Route) wrapped() http.Handler {
	h := rt.Handler
	for i := len(rt.Middlewares) - 1; i >= 0; i-- {
		h = rt.Middlewares[i](h)
	}
	return h
}

type ConfigRouter func(router *Router)

// WithRoutes adiciona um grupo de rotas na criação do router
func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

type Router struct {
	mux *httprouter.Router
}

func New(configs ...ConfigRouter) Router {
	mux := httprouter.New()
	mux.NotFound = jsonError(apiErrors.ErrResourceNotFound, "Rota não encontrada", func(r *http.Request) any { return r.URL.Path })
	mux.MethodNotAllowed = jsonError(apiErrors.ErrMethodNotAllowed, "Método não permitido", func(r *http.Request) any { return r.Method })

	router := Router{mux: mux}
	for _, configure := range configs {
		configure(&router)
	}
	return router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.mux.Handler(route.Method, route.Path, route.wrapped())
	}
}

func jsonError(code, message string, details func(*http.Request) any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, code, message, details(r))
	})
}
