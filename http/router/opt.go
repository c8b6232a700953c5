package router

import (
	"strings"

	"github.com/xy-planning-network/junction/logger"
)

// A RouterOptFn configures a Router before New returns it.
type RouterOptFn func(*Router)

// WithLogger sets the logger.Logger the Router reports
// request handling failures with.
func WithLogger(ls logger.Logger) RouterOptFn {
	return func(r *Router) { r.ls = ls }
}

// resourceOpts collects AddResource configuration.
type resourceOpts struct {
	methods map[string]bool
	names   map[string]string
}

// A ResourceOptFn configures a call to [Router.AddResource].
type ResourceOptFn func(*resourceOpts)

// WithMethods restricts AddResource to the given HTTP verbs.
//
// Verbs the resource does not implement are ignored;
// when none survive, AddResource returns [junction.ErrNoMethods].
func WithMethods(methods ...string) ResourceOptFn {
	return func(o *resourceOpts) {
		if o.methods == nil {
			o.methods = make(map[string]bool, len(methods))
		}
		for _, m := range methods {
			o.methods[strings.ToUpper(m)] = true
		}
	}
}

// WithName overrides the route name AddResource derives for the HTTP verb.
func WithName(method, name string) ResourceOptFn {
	return func(o *resourceOpts) { o.names[strings.ToUpper(method)] = name }
}
