package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"reflect"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/junction"
)

// A Parser decodes the payload carried by an HTTP request into a pointer to
// a struct and validates what it decoded.
type Parser struct {
	params *schema.Decoder
	validator
}

// NewParser constructs a *Parser, which applies default configuration.
func NewParser() *Parser {
	return &Parser{
		params:    newQueryParamDecoder(),
		validator: newValidator(),
	}
}

// ParseBody decodes into a pointer to a struct the JSON data in an HTTP
// request's body. If successful, ParseBody runs validation against the
// contents, returning a [junction.ErrNotValid] if the data fails the
// struct's "validate" tag rules.
//
// ParseBody reads the entire body, which can't be read from again.
// Use an [io.TeeReader] if the body needs to be reused after calling
// ParseBody.
func (p *Parser) ParseBody(body io.Reader, structPtr any) error {
	var ourFault *json.InvalidUnmarshalError
	err := json.NewDecoder(body).Decode(structPtr)
	if errors.As(err, &ourFault) {
		return fmt.Errorf("%w: ParseBody called with non-pointer: %s", junction.ErrBadConfig, err)
	}

	if err != nil {
		return fmt.Errorf("%w: failed decoding request body: %s", junction.ErrBadFormat, err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("%T failed validation: %w", structPtr, err)
	}

	return nil
}

// ParseQueryParams decodes into a pointer to a struct the query param data
// in an HTTP request's URL, matching params to fields by "schema" struct
// tags. If successful, ParseQueryParams runs validation against the
// contents, returning a [junction.ErrNotValid] if the data fails the
// struct's "validate" tag rules.
func (p *Parser) ParseQueryParams(params url.Values, structPtr any) error {
	if rv := reflect.ValueOf(structPtr); rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: ParseQueryParams called with non-pointer", junction.ErrBadConfig)
	}

	if err := p.params.Decode(structPtr, params); err != nil {
		err = translateDecoderError(err)
		if _, ok := err.(ValidationErrors); !ok {
			return fmt.Errorf("failed decoding request query params: %w", err)
		}

		return fmt.Errorf("%T failed validation: %w", structPtr, err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("%T failed validation: %w", structPtr, err)
	}

	return nil
}
