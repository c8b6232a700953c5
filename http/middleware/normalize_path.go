package middleware

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

var multiSlashes = regexp.MustCompile("//+")

// A RouteMatcher reports whether the method and path pair resolves to a registered route.
type RouteMatcher interface {
	Matches(method, path string) bool
}

// NormalizePath tidies request paths that do not resolve as requested.
//
// When the requested path does not match a registered route,
// NormalizePath checks these variants in order,
// redirecting to the first that does match:
//   - the path with repeated slashes merged, if mergeSlashes
//   - the path with a trailing slash appended, if appendSlash
//   - the path with both applied
//
// The redirect is a 301 and keeps the query string.
// Requests carrying bodies (POST, PUT, PATCH) pass through untouched,
// since clients downgrade redirected requests to GET.
//
// If m is nil or both flags are off, NoopAdapter returns and this middleware does nothing.
func NormalizePath(m RouteMatcher, appendSlash, mergeSlashes bool) Adapter {
	if m == nil || (!appendSlash && !mergeSlashes) {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				h.ServeHTTP(w, r)
				return
			}

			if m.Matches(r.Method, r.URL.Path) {
				h.ServeHTTP(w, r)
				return
			}

			var candidates []string
			if mergeSlashes {
				candidates = append(candidates, multiSlashes.ReplaceAllString(r.URL.Path, "/"))
			}
			if appendSlash && !strings.HasSuffix(r.URL.Path, "/") {
				candidates = append(candidates, r.URL.Path+"/")
			}
			if mergeSlashes && appendSlash && !strings.HasSuffix(r.URL.Path, "/") {
				candidates = append(candidates, multiSlashes.ReplaceAllString(r.URL.Path, "/")+"/")
			}

			for _, path := range candidates {
				if path == r.URL.Path || !m.Matches(r.Method, path) {
					continue
				}

				u := new(url.URL)
				*u = *r.URL
				u.Path = path
				http.Redirect(w, r, u.String(), http.StatusMovedPermanently)
				return
			}

			h.ServeHTTP(w, r)
		})
	}
}
