package junction_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/junction"
)

func TestNewHTTPError(t *testing.T) {
	for _, tc := range []struct {
		name         string
		code         int
		msg          string
		expectedCode int
		expectedMsg  string
	}{
		{"Known", http.StatusNotFound, "no article", http.StatusNotFound, "no article"},
		{"Default-Msg", http.StatusNotFound, "", http.StatusNotFound, "Not Found"},
		{"Too-Low", 42, "odd", http.StatusInternalServerError, "odd"},
		{"Too-High", 600, "", http.StatusInternalServerError, "Internal Server Error"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := junction.NewHTTPError(tc.code, tc.msg)
			require.Equal(t, tc.expectedCode, err.Code)
			require.Equal(t, tc.expectedMsg, err.Msg)
			require.Equal(t, tc.expectedMsg, err.Error())
		})
	}
}

func TestHTTPErrorAs(t *testing.T) {
	// Arrange
	wrapped := fmt.Errorf("handling request: %w", junction.NewHTTPError(http.StatusConflict, "already exists"))

	// Act
	var httpErr *junction.HTTPError
	ok := errors.As(wrapped, &httpErr)

	// Assert
	require.True(t, ok)
	require.Equal(t, http.StatusConflict, httpErr.Code)
}
