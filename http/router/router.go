package router

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/junction"
	"github.com/xy-planning-network/junction/http/middleware"
	"github.com/xy-planning-network/junction/http/resource"
	"github.com/xy-planning-network/junction/logger"
)

// A Route maps a path and HTTP method to a [junction.Handler].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
//
// A non-zero Name registers the Route for URL reversal with [Router.URL].
type Route struct {
	Path        string
	Method      string
	Handler     junction.Handler
	Name        string
	Middlewares []middleware.Adapter
}

// Router routes requests to [junction.Handler]s and applies
// the ordered [junction.Transformer] pipeline to their responses.
//
// Configure a Router fully before serving requests with it.
// Registration methods are not safe to call concurrently with request handling.
type Router struct {
	env           junction.Environment
	everyReqStack []middleware.Adapter
	ls            logger.Logger
	namePrefix    string
	panics        middleware.Adapter
	pathPrefix    string
	r             *mux.Router

	// shared across every Group of this Router
	registry *registry
	pipeline *pipeline
}

// A registry tracks (method, path) pairs and route names already bound,
// so conflicts surface as configuration errors instead of shadowed routes.
type registry struct {
	routes map[string]bool
	names  map[string]bool
}

// A pipeline is the ordered set of transformers applied to every
// handler-produced response.
type pipeline struct {
	ts []junction.Transformer
}

// New constructs a [*Router] for the given environment.
func New(env junction.Environment, opts ...RouterOptFn) *Router {
	r := &Router{
		env:      env,
		r:        mux.NewRouter(),
		registry: &registry{routes: make(map[string]bool), names: make(map[string]bool)},
		pipeline: new(pipeline),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.ls == nil {
		r.ls = logger.New(logger.WithEnv(env))
	}

	r.panics = middleware.ReportPanic(env)

	return r
}

// AddResource registers one Route per HTTP verb res implements,
// dispatching each to the same-named method:
// GET to Get, POST to Post, PUT to Put, PATCH to Patch,
// DELETE to Delete, HEAD to Head, OPTIONS to Options.
//
// Each Route is named "<TypeName>:<verb>", e.g. "Trips:get";
// use [WithName] to override a verb's name and [WithMethods] to
// register a subset of the implemented verbs.
//
// AddResource is atomic: when any binding conflicts with an existing
// one, it returns [junction.ErrDuplicateRoute] and registers nothing.
// A res implementing none of the verbs (or none surviving the
// [WithMethods] filter) returns [junction.ErrNoMethods].
func (r *Router) AddResource(path string, res any, opts ...ResourceOptFn) error {
	o := resourceOpts{names: make(map[string]string)}
	for _, opt := range opts {
		opt(&o)
	}

	verbs := resource.Methods(res)
	if o.methods != nil {
		var keep []string
		for _, verb := range verbs {
			if o.methods[verb] {
				keep = append(keep, verb)
			}
		}
		verbs = keep
	}

	if len(verbs) == 0 {
		return fmt.Errorf("%w: %T exposes no HTTP verb methods to register", junction.ErrNoMethods, res)
	}

	name := resource.Name(res)
	routes := make([]Route, 0, len(verbs))
	for _, verb := range verbs {
		h, _ := resource.HandlerFor(res, verb)
		rtName := o.names[verb]
		if rtName == "" {
			rtName = name + ":" + strings.ToLower(verb)
		}

		routes = append(routes, Route{Path: path, Method: verb, Handler: h, Name: rtName})
	}

	return r.HandleRoutes(routes)
}

// CatchAll sets up a handler for all routes to funnel to for e.g. maintenance mode.
func (r *Router) CatchAll(handler junction.Handler) {
	r.r.PathPrefix("/").Handler(middleware.Chain(
		r.panics(r.adapt(handler)),
		r.everyReqStack...,
	))
}

// Group constructs a [*Router] scoped under pathPrefix,
// naming its routes under namePrefix joined with ".".
//
// e.g., r.Group("/api/v1", "api") registers paths like /api/v1/trips
// with names like "api.Trips:get".
//
// The group shares its parent's duplicate tracking and transformer pipeline.
func (r *Router) Group(pathPrefix, namePrefix string) *Router {
	sub := *r
	sub.r = r.r.PathPrefix(pathPrefix).Subrouter()
	sub.pathPrefix = r.pathPrefix + pathPrefix
	// own copy, so appends on either side cannot alias the other's stack
	sub.everyReqStack = append([]middleware.Adapter(nil), r.everyReqStack...)
	if namePrefix != "" {
		sub.namePrefix = namePrefix
		if r.namePrefix != "" {
			sub.namePrefix = r.namePrefix + "." + namePrefix
		}
	}

	return &sub
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) error {
	return r.HandleRoutes([]Route{route})
}

// HandleMethodNotAllowed sets the handler for requests matching a
// registered path but none of its methods.
func (r *Router) HandleMethodNotAllowed(handler junction.Handler) {
	r.r.MethodNotAllowedHandler = r.panics(r.adapt(handler))
}

// HandleNotFound sets the handler for when no registered Route is matched.
func (r *Router) HandleNotFound(handler junction.Handler) {
	r.r.NotFoundHandler = r.panics(r.adapt(handler))
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
//
// HandleRoutes is atomic: every Route is checked against the Routes
// already registered, and those in the set, before any is committed.
// A (path, method) pair or route name bound twice returns
// [junction.ErrDuplicateRoute]; a Route missing its Path, Method, or
// Handler returns [junction.ErrBadConfig].
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) error {
	staged := struct {
		routes map[string]bool
		names  map[string]bool
	}{make(map[string]bool), make(map[string]bool)}

	for _, route := range routes {
		if route.Path == "" || route.Method == "" || route.Handler == nil {
			return fmt.Errorf("%w: route needs a path, method and handler, have %s %q", junction.ErrBadConfig, route.Method, route.Path)
		}

		key := route.Method + " " + r.pathPrefix + route.Path
		if r.registry.routes[key] || staged.routes[key] {
			return fmt.Errorf("%w: %s", junction.ErrDuplicateRoute, key)
		}
		staged.routes[key] = true

		if name := r.prefixed(route.Name); name != "" {
			if r.registry.names[name] || staged.names[name] {
				return fmt.Errorf("%w: route name %q", junction.ErrDuplicateRoute, name)
			}
			staged.names[name] = true
		}
	}

	for _, route := range routes {
		mws := make([]middleware.Adapter, 0, len(r.everyReqStack)+len(middlewares)+len(route.Middlewares))
		mws = append(mws, r.everyReqStack...)
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)

		handler := middleware.Chain(r.panics(r.adapt(route.Handler)), mws...)
		mr := r.r.Handle(route.Path, handler).Methods(route.Method)
		if name := r.prefixed(route.Name); name != "" {
			mr.Name(name)
		}
	}

	for key := range staged.routes {
		r.registry.routes[key] = true
	}
	for name := range staged.names {
		r.registry.names[name] = true
	}

	return nil
}

// Matches reports whether the method and path pair resolves to a
// registered Route.
//
// Matches implements [middleware.RouteMatcher].
func (r *Router) Matches(method, path string) bool {
	req := &http.Request{Method: method, URL: &url.URL{Path: path}}
	var match mux.RouteMatch
	return r.r.Match(req, &match) && match.MatchErr == nil
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
//
// Only Routes registered after the call pick up the new middlewares.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Transform appends the transformers to the ordered pipeline the Router
// runs on every handler-produced response before writing it.
//
// Transformers registered first run first.
func (r *Router) Transform(ts ...junction.Transformer) {
	r.pipeline.ts = append(r.pipeline.ts, ts...)
}

// URL reverses the full route name into the path it is registered at,
// filling path variables from the name-value pairs.
func (r *Router) URL(name string, pairs ...string) (*url.URL, error) {
	route := r.r.Get(name)
	if route == nil {
		return nil, fmt.Errorf("%w: no route named %q", junction.ErrNotValid, name)
	}

	return route.URL(pairs...)
}

// adapt turns a [junction.Handler] into an [http.Handler]:
// the handler runs, errors become error responses,
// the transformer pipeline runs, and the response is written.
func (r *Router) adapt(handler junction.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		resp, err := handler(req)
		if err != nil {
			resp = r.errResponse(req, err)
		}

		if resp == nil {
			resp = &junction.Response{Code: http.StatusNoContent}
		}

		if resp.Header == nil {
			resp.Header = make(http.Header)
		}

		for _, t := range r.pipeline.ts {
			if err := t(req, resp); err != nil {
				// the pipeline stops; the error response skips it
				// so a failing transformer cannot fail twice.
				resp = r.errResponse(req, err)
				break
			}
		}

		if err := resp.Write(w); err != nil {
			r.ls.Error(fmt.Sprintf("writing response: %s", err), &logger.LogContext{Error: err, Request: req})
		}
	})
}

// errResponse maps an error from a handler or transformer to the
// [*junction.Response] describing it.
//
// A [*junction.HTTPError] keeps its code and carries its message as
// negotiable data. [junction.ErrNotAcceptable] becomes a plain-text 406.
// Anything else is logged and becomes an opaque 500.
func (r *Router) errResponse(req *http.Request, err error) *junction.Response {
	var httpErr *junction.HTTPError
	switch {
	case errors.As(err, &httpErr):
		if httpErr.Code >= http.StatusInternalServerError {
			r.ls.Error(err.Error(), &logger.LogContext{Error: err, Request: req})
		}

		resp := junction.NewResponse(map[string]string{"error": httpErr.Msg})
		resp.Code = httpErr.Code
		return resp

	case errors.Is(err, junction.ErrNotAcceptable):
		resp := junction.NewRawResponse([]byte(http.StatusText(http.StatusNotAcceptable)), "text/plain; charset=utf-8")
		resp.Code = http.StatusNotAcceptable
		return resp

	default:
		r.ls.Error(err.Error(), &logger.LogContext{Error: err, Request: req})
		resp := junction.NewRawResponse([]byte(http.StatusText(http.StatusInternalServerError)), "text/plain; charset=utf-8")
		resp.Code = http.StatusInternalServerError
		return resp
	}
}

// prefixed joins the Router's name prefix to the route name.
func (r *Router) prefixed(name string) string {
	if name == "" || r.namePrefix == "" {
		return name
	}

	return r.namePrefix + "." + name
}
