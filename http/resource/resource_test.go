package resource_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/junction"
	"github.com/xy-planning-network/junction/http/resource"
)

type readOnly struct{}

func (readOnly) Get(r *http.Request) (*junction.Response, error) {
	return junction.NewResponse("read"), nil
}

type readWrite struct{}

func (readWrite) Get(r *http.Request) (*junction.Response, error) {
	return junction.NewResponse("read"), nil
}

func (readWrite) Post(r *http.Request) (*junction.Response, error) {
	return junction.NewResponse("write"), nil
}

type ptrWrite struct{}

func (*ptrWrite) Put(r *http.Request) (*junction.Response, error) {
	return junction.NewResponse("put"), nil
}

type everything struct{}

func (everything) Get(r *http.Request) (*junction.Response, error)     { return nil, nil }
func (everything) Post(r *http.Request) (*junction.Response, error)    { return nil, nil }
func (everything) Put(r *http.Request) (*junction.Response, error)     { return nil, nil }
func (everything) Patch(r *http.Request) (*junction.Response, error)   { return nil, nil }
func (everything) Delete(r *http.Request) (*junction.Response, error)  { return nil, nil }
func (everything) Head(r *http.Request) (*junction.Response, error)    { return nil, nil }
func (everything) Options(r *http.Request) (*junction.Response, error) { return nil, nil }

func TestMethods(t *testing.T) {
	tcs := []struct {
		name     string
		res      any
		expected []string
	}{
		{"Read-Only", readOnly{}, []string{http.MethodGet}},
		{"Read-Write", readWrite{}, []string{http.MethodGet, http.MethodPost}},
		{"Pointer-Receiver", &ptrWrite{}, []string{http.MethodPut}},
		{"Value-Misses-Pointer-Receiver", ptrWrite{}, nil},
		{
			"Everything",
			everything{},
			[]string{
				http.MethodGet,
				http.MethodPost,
				http.MethodPut,
				http.MethodPatch,
				http.MethodDelete,
				http.MethodHead,
				http.MethodOptions,
			},
		},
		{"Nothing", struct{}{}, nil},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, resource.Methods(tc.res))
		})
	}
}

func TestHandlerFor(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	h, ok := resource.HandlerFor(readWrite{}, http.MethodPost)

	// Assert
	require.True(t, ok)
	resp, err := h(r)
	require.Nil(t, err)
	require.Equal(t, "write", resp.Data)

	// Act
	h, ok = resource.HandlerFor(readWrite{}, http.MethodDelete)

	// Assert
	require.False(t, ok)
	require.Nil(t, h)

	// Act - TRACE is not a verb a resource can implement.
	h, ok = resource.HandlerFor(everything{}, http.MethodTrace)

	// Assert
	require.False(t, ok)
	require.Nil(t, h)
}

func TestName(t *testing.T) {
	tcs := []struct {
		name     string
		res      any
		expected string
	}{
		{"Value", readOnly{}, "readOnly"},
		{"Pointer", &ptrWrite{}, "ptrWrite"},
		{"Anonymous", struct{}{}, "resource"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, resource.Name(tc.res))
		})
	}
}
