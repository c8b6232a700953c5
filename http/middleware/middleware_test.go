package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/junction/http/middleware"
)

func noopHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
}

func teapotHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
}

func TestChain(t *testing.T) {
	// Arrange
	var order []string
	tag := func(name string) middleware.Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				h.ServeHTTP(w, r)
			})
		}
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	middleware.Chain(teapotHandler(), tag("first"), tag("second"), tag("third")).ServeHTTP(w, r)

	// Assert
	require.Equal(t, []string{"first", "second", "third"}, order)
	require.Equal(t, http.StatusTeapot, w.Code)
}

func TestNoopAdapter(t *testing.T) {
	// Arrange
	h := noopHandler()

	// Act + Assert
	require.Equal(t, fmt.Sprintf("%p", h), fmt.Sprintf("%p", middleware.NoopAdapter(h)))
}
