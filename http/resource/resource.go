package resource

import (
	"net/http"
	"reflect"

	"github.com/xy-planning-network/junction"
)

// Each HTTP verb junction dispatches on pairs with a capability interface.
// A resource opts into a verb by implementing the same-named method.

// A Getter handles GET requests.
type Getter interface {
	Get(r *http.Request) (*junction.Response, error)
}

// A Poster handles POST requests.
type Poster interface {
	Post(r *http.Request) (*junction.Response, error)
}

// A Putter handles PUT requests.
type Putter interface {
	Put(r *http.Request) (*junction.Response, error)
}

// A Patcher handles PATCH requests.
type Patcher interface {
	Patch(r *http.Request) (*junction.Response, error)
}

// A Deleter handles DELETE requests.
type Deleter interface {
	Delete(r *http.Request) (*junction.Response, error)
}

// A Header handles HEAD requests.
type Header interface {
	Head(r *http.Request) (*junction.Response, error)
}

// An Optioner handles OPTIONS requests.
type Optioner interface {
	Options(r *http.Request) (*junction.Response, error)
}

// Verbs is the fixed set of HTTP methods a resource can implement,
// in the order junction registers them.
var Verbs = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
	http.MethodOptions,
}

// Methods reports the HTTP verbs res implements, in the order of Verbs.
func Methods(res any) []string {
	var methods []string
	for _, verb := range Verbs {
		if _, ok := HandlerFor(res, verb); ok {
			methods = append(methods, verb)
		}
	}

	return methods
}

// HandlerFor extracts the junction.Handler res implements for the HTTP verb,
// or reports false when res does not implement it.
func HandlerFor(res any, verb string) (junction.Handler, bool) {
	switch verb {
	case http.MethodGet:
		if h, ok := res.(Getter); ok {
			return h.Get, true
		}
	case http.MethodPost:
		if h, ok := res.(Poster); ok {
			return h.Post, true
		}
	case http.MethodPut:
		if h, ok := res.(Putter); ok {
			return h.Put, true
		}
	case http.MethodPatch:
		if h, ok := res.(Patcher); ok {
			return h.Patch, true
		}
	case http.MethodDelete:
		if h, ok := res.(Deleter); ok {
			return h.Delete, true
		}
	case http.MethodHead:
		if h, ok := res.(Header); ok {
			return h.Head, true
		}
	case http.MethodOptions:
		if h, ok := res.(Optioner); ok {
			return h.Options, true
		}
	}

	return nil, false
}

// Name derives the route-name prefix for res from its type name,
// unwrapping pointers.
//
// An anonymous type yields "resource".
func Name(res any) string {
	t := reflect.TypeOf(res)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil || t.Name() == "" {
		return "resource"
	}

	return t.Name()
}
