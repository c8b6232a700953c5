package middleware_test

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/junction"
	"github.com/xy-planning-network/junction/http/middleware"
	"github.com/xy-planning-network/junction/logger"
)

func TestLogRequest(t *testing.T) {
	color.NoColor = true
	t.Setenv("SENTRY_DSN", "")

	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	// Arrange
	b := new(bytes.Buffer)
	ls := logger.New(logger.WithLogger(log.New(b, "", 0)))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/trips?password=hunter2&sort=asc", nil)
	r = r.Clone(context.WithValue(r.Context(), junction.IpAddrKey, "1.1.1.1"))

	// Act
	middleware.LogRequest(ls)(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusTeapot, w.Code)
	require.Contains(t, b.String(), "1.1.1.1 GET /trips")
	require.Contains(t, b.String(), "password=xxxxxxx")
	require.NotContains(t, b.String(), "hunter2")
}
