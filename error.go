package junction

import "errors"

var (
	ErrBadConfig      = errors.New("bad config")
	ErrBadFormat      = errors.New("bad format")
	ErrDuplicateRoute = errors.New("duplicate route")
	ErrNoMethods      = errors.New("no resource methods")
	ErrNotAcceptable  = errors.New("not acceptable")
	ErrNotValid       = errors.New("invalid")
	ErrRender         = errors.New("cannot render")
	ErrUnexpected     = errors.New("unexpected")
)
