package junction

import (
	"net/http"
	"strconv"
)

// DefaultContentType is written when nothing else claims the Content-Type
// header by the time a [Response] hits the wire.
const DefaultContentType = "application/octet-stream"

// A Handler produces a *Response for an HTTP request.
//
// Handlers never touch the wire; the router owns writing the Response after
// running it through the registered Transformers. A Handler signals failure
// by returning an error: an *HTTPError surfaces with its own status code,
// an error wrapping ErrNotAcceptable as 406, anything else as 500.
type Handler func(r *http.Request) (*Response, error)

// A Transformer edits a *Response after the Handler returns it and before it
// is written to the wire.
//
// Transformers run in the order they were registered on the application's
// router. An error from a Transformer aborts the response and maps to a
// status code the same way Handler errors do.
type Transformer func(r *http.Request, resp *Response) error

// A Response carries everything needed to answer an HTTP request.
//
// Data is the negotiable payload: a Transformer such as the content
// negotiator renders it into Body. A non-nil Body marks the Response as
// already rendered — the explicit body a Handler uses to opt out of
// negotiation.
type Response struct {
	// Code is the HTTP status code; the zero value writes as 200 OK.
	Code int

	// Header collects the response headers. NewResponse initializes it;
	// Responses built as struct literals must initialize it before use.
	Header http.Header

	// Data is the payload renderers serialize into Body.
	Data any

	// Body is the rendered payload. A Handler setting Body directly
	// bypasses negotiation unless the negotiator forces rendering.
	Body []byte
}

// NewResponse constructs a *Response around the negotiable payload data.
func NewResponse(data any) *Response {
	return &Response{Header: make(http.Header), Data: data}
}

// NewRawResponse constructs a *Response carrying an explicit body and the
// media type describing those bytes, opting the Response out of negotiation.
func NewRawResponse(body []byte, contentType string) *Response {
	resp := NewResponse(nil)
	resp.Body = body
	if contentType != "" {
		resp.Header.Set("Content-Type", contentType)
	}

	return resp
}

// Rendered reports whether an explicit body is already set on the Response.
func (resp *Response) Rendered() bool { return resp.Body != nil }

// StatusCode returns Code, defaulting the zero value to 200 OK.
func (resp *Response) StatusCode() int {
	if resp.Code == 0 {
		return http.StatusOK
	}

	return resp.Code
}

// Write sends the Response over w: headers first, then the status code, then
// the body.
//
// Content-Type falls back to DefaultContentType when nothing set it.
// Content-Length is set from the length of Body unless already claimed.
func (resp *Response) Write(w http.ResponseWriter) error {
	for k, vals := range resp.Header {
		for _, v := range vals {
			w.Header().Add(k, v)
		}
	}

	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", DefaultContentType)
	}

	if len(resp.Body) > 0 && w.Header().Get("Content-Length") == "" {
		w.Header().Set("Content-Length", strconv.Itoa(len(resp.Body)))
	}

	w.WriteHeader(resp.StatusCode())
	if len(resp.Body) == 0 {
		return nil
	}

	_, err := w.Write(resp.Body)
	return err
}
