package middleware_test

import (
	"context"
	"crypto/sha256"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/junction/http/middleware"
)

func TestIdempotent(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	w := httptest.NewRecorder()

	cache := middleware.NewReplayMap()

	// Act - non-POST methods are idempotent already and pass through.
	middleware.Idempotent(nil, nil)(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusTeapot, w.Code)

	// Arrange
	r = httptest.NewRequest(http.MethodPost, "https://example.com", nil)
	w = httptest.NewRecorder()

	// Act
	middleware.Idempotent(cache, sha256.New())(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Arrange
	testKey := "test-idempotency"
	h := sha256.New()
	b := h.Sum(nil)
	h.Reset()

	r = httptest.NewRequest(http.MethodPost, "https://example.com", nil)
	r.Header.Set(middleware.IdempotencyHeader, testKey)

	w = httptest.NewRecorder()

	// Act
	middleware.Idempotent(cache, h)(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusTeapot, w.Code)

	v, ok := cache.Get(context.Background(), testKey)
	require.True(t, ok)
	require.Equal(t, http.StatusTeapot, v.Status)
	require.Equal(t, b, v.ReqHash)
	require.Empty(t, v.Body)
	require.Equal(t, "/", v.URI)

	// Arrange
	r = httptest.NewRequest(http.MethodPost, "https://example.com", nil)
	r.Header.Set(middleware.IdempotencyHeader, testKey)

	w = httptest.NewRecorder()

	// Act
	middleware.Idempotent(cache, h)(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusTeapot, w.Code)

	// Arrange
	r = httptest.NewRequest(http.MethodPost, "https://example.com/other", nil)
	r.Header.Set(middleware.IdempotencyHeader, testKey)

	w = httptest.NewRecorder()

	// Act
	middleware.Idempotent(cache, h)(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Arrange
	r = httptest.NewRequest(http.MethodPost, "https://example.com/", strings.NewReader("test"))
	r.Header.Set(middleware.IdempotencyHeader, testKey)

	w = httptest.NewRecorder()

	// Act
	middleware.Idempotent(cache, h)(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Arrange
	otherKey := "other"

	r = httptest.NewRequest(http.MethodPost, "https://example.com/", nil)
	r.Header.Set(middleware.IdempotencyHeader, otherKey)

	w = httptest.NewRecorder()

	cache.Set(r.Context(), otherKey, middleware.NewReplay("/", nil))

	// Act
	middleware.Idempotent(cache, h)(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusConflict, w.Code)

	// Arrange
	var incrementMe int
	incrementKey := "increment"
	incrementHandler := http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		incrementMe++
		wx.Write([]byte(strconv.Itoa(incrementMe)))
	})

	for i := 0; i < 3; i++ {
		r = httptest.NewRequest(http.MethodPost, "https://example.com/", nil)
		r.Header.Set(middleware.IdempotencyHeader, incrementKey)

		w = httptest.NewRecorder()

		// Act
		middleware.Idempotent(cache, h)(incrementHandler).ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 1, incrementMe)

		s, err := strconv.Atoi(w.Body.String())
		require.Nil(t, err)
		require.Equal(t, incrementMe, s)
	}
}

func TestNewReplay(t *testing.T) {
	// Arrange
	uri := "/test?data=true"
	b := []byte("test")

	// Act
	rp := middleware.NewReplay(uri, b)

	// Assert
	require.Equal(t, uri, rp.URI)
	require.Equal(t, b, rp.ReqHash)
	require.Zero(t, rp.Status)
	require.Empty(t, rp.Body)
}

func TestReplayRoundtrip(t *testing.T) {
	// Arrange
	rp := middleware.Replay{
		Body:    []byte("pong"),
		ReqHash: []byte("digest"),
		Status:  http.StatusOK,
		URI:     "/ping",
	}

	// Act
	b, err := rp.MarshalBinary()

	// Assert
	require.Nil(t, err)

	// Act
	got := new(middleware.Replay)
	err = got.UnmarshalBinary(b)

	// Assert
	require.Nil(t, err)
	require.Equal(t, rp, *got)
}
