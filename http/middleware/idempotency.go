package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"hash"
	"io"
	"net/http"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	IdempotencyHeader = "Idempotency-Key"
)

var (
	_          http.ResponseWriter = replayWriter{}
	hasherLock                     = sync.Mutex{}
)

// Idempotent returns a middleware.Adapter that enables features
// of idempotency on a POST endpoint.
// GET, DELETE, PUT, & PATCH are idempotent by definition
// and pass through untouched.
//
// Idempotent pulls a key (a UUID v4 string) from request headers
// to base the uniqueness of a POST request around.
//
// If a previous request has not used that key,
// Idempotent pairs all of the following values to the key:
// - a digest of the body of the request
// - the body of the resulting response
// - the status code of the resulting response
//
// If that key has been used before (and has not expired),
// Idempotent falls into one of these scenarios:
//
//   - if a status code has not been set for that key,
//     Idempotent responds with 409 since the idempotent request is still processing
//
//   - if the newly requested resource (the URI) does not match the original,
//     Idempotent responds with 422
//
//   - if the new request's body does not match the body of the original request's,
//     Idempotent responds with 422
//
// - Idempotent writes the status code and body set for the key
//
// cache and hasher can be nil.
// Idempotent will use an in-memory cache and implementation of hash.Hash, accordingly.
//
// Idempotent implements the draft Idempotent HTTP Header Field specification:
// https://tools.ietf.org/id/draft-idempotency-header-01.html
func Idempotent(cache Replayer, hasher hash.Hash) Adapter {
	if cache == nil {
		cache = NewReplayMap()
	}

	if hasher == nil {
		hasher = sha256.New()
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				handler.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get(IdempotencyHeader)
			if key == "" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}

			hasherLock.Lock()
			teeBody := bytes.NewBuffer(nil)
			check := io.TeeReader(r.Body, teeBody)
			if _, err := io.Copy(hasher, check); err != nil {
				hasherLock.Unlock()
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			r.Body = io.NopCloser(teeBody)
			sum := hasher.Sum(nil)
			hasher.Reset()
			hasherLock.Unlock()

			rp, ok := cache.Get(r.Context(), key)
			if ok {
				if rp.Status == 0 {
					w.WriteHeader(http.StatusConflict)
					return
				}

				if rp.URI != r.URL.RequestURI() || !bytes.Equal(rp.ReqHash, sum) {
					w.WriteHeader(http.StatusUnprocessableEntity)
					return
				}

				w.WriteHeader(rp.Status)
				w.Write(rp.Body)
				return
			}

			rp = NewReplay(r.URL.RequestURI(), sum)
			cache.Set(r.Context(), key, rp)

			rw := replayWriter{
				ctx: r.Context(),
				c:   cache,
				rp:  &rp,
				k:   key,
				w:   w,
			}
			handler.ServeHTTP(rw, r)
		})
	}
}

// A Replay is data from an HTTP response
// that can be reused when another request
// matches the same idempotency key.
type Replay struct {
	Body    []byte `msgpack:"b"`
	ReqHash []byte `msgpack:"r"`
	Status  int    `msgpack:"s"`
	URI     string `msgpack:"u"`
}

// NewReplay constructs a Replay for the URI and request body digest.
func NewReplay(uri string, reqHash []byte) Replay {
	return Replay{URI: uri, ReqHash: reqHash}
}

// MarshalBinary marshals the fields of the Replay into a msgpack-encoded []byte.
//
// MarshalBinary implements encoding.BinaryMarshaler.
func (rp Replay) MarshalBinary() ([]byte, error) { return msgpack.Marshal(rp) }

// UnmarshalBinary unmarshals the msgpack-encoded []byte into fields of the *Replay.
//
// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (rp *Replay) UnmarshalBinary(b []byte) error { return msgpack.Unmarshal(b, rp) }

// A replayWriter pairs a Replay with an http.ResponseWriter
// so both can be written to by an HTTP handler.
// Changes to the Replay in such a way are saved in the cache.
//
// A replayWriter implements http.ResponseWriter.
type replayWriter struct {
	ctx context.Context
	c   Replayer
	rp  *Replay
	k   string
	w   http.ResponseWriter
}

// Header returns the http.Header of the underlying http.ResponseWriter.
func (rw replayWriter) Header() http.Header { return rw.w.Header() }

// Write writes the bytes to all consumers the replayWriter is concerned with.
func (rw replayWriter) Write(b []byte) (int, error) {
	select {
	case <-rw.ctx.Done():
		return 0, nil
	default:
		if rw.rp.Status == 0 {
			rw.WriteHeader(http.StatusOK)
		}

		n, err := rw.w.Write(b)
		if err != nil {
			return n, err
		}

		rw.rp.Body = append(rw.rp.Body, b...)
		rw.c.Set(rw.ctx, rw.k, *rw.rp)
		return n, nil
	}
}

// WriteHeader copies the status code about to be written to the *Replay for later reuse
// before actually writing the status code.
func (rw replayWriter) WriteHeader(s int) {
	select {
	case <-rw.ctx.Done():
		return
	default:
		rw.w.WriteHeader(s)
		rw.rp.Status = s
		rw.c.Set(rw.ctx, rw.k, *rw.rp)
	}
}
