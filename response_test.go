package junction_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/junction"
)

func TestNewResponse(t *testing.T) {
	// Arrange + Act
	resp := junction.NewResponse(map[string]any{"message": "Hello world"})

	// Assert
	require.NotNil(t, resp.Header)
	require.Nil(t, resp.Body)
	require.False(t, resp.Rendered())
	require.Equal(t, http.StatusOK, resp.StatusCode())
}

func TestNewRawResponse(t *testing.T) {
	// Arrange + Act
	resp := junction.NewRawResponse([]byte("<p>hi</p>"), "text/html")

	// Assert
	require.True(t, resp.Rendered())
	require.Equal(t, "text/html", resp.Header.Get("Content-Type"))
}

func TestResponseStatusCode(t *testing.T) {
	for _, tc := range []struct {
		name     string
		code     int
		expected int
	}{
		{"Zero-Value", 0, http.StatusOK},
		{"Created", http.StatusCreated, http.StatusCreated},
		{"Teapot", http.StatusTeapot, http.StatusTeapot},
	} {
		t.Run(tc.name, func(t *testing.T) {
			resp := junction.NewResponse(nil)
			resp.Code = tc.code
			require.Equal(t, tc.expected, resp.StatusCode())
		})
	}
}

func TestResponseWrite(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// Arrange
		resp := junction.NewResponse(nil)
		w := httptest.NewRecorder()

		// Act
		err := resp.Write(w)

		// Assert
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, junction.DefaultContentType, w.Header().Get("Content-Type"))
		require.Empty(t, w.Body.Bytes())
	})

	t.Run("Body-And-Headers", func(t *testing.T) {
		// Arrange
		resp := junction.NewRawResponse([]byte(`{"ok":true}`), "application/json")
		resp.Code = http.StatusCreated
		resp.Header.Set("X-Test", "junction")
		w := httptest.NewRecorder()

		// Act
		err := resp.Write(w)

		// Assert
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, "application/json", w.Header().Get("Content-Type"))
		require.Equal(t, "junction", w.Header().Get("X-Test"))
		require.Equal(t, "11", w.Header().Get("Content-Length"))
		require.Equal(t, `{"ok":true}`, w.Body.String())
	})

	t.Run("Literal-Without-Header", func(t *testing.T) {
		// Arrange
		resp := &junction.Response{Body: []byte("raw")}
		w := httptest.NewRecorder()

		// Act
		err := resp.Write(w)

		// Assert
		require.NoError(t, err)
		require.Equal(t, "raw", w.Body.String())
	})
}
