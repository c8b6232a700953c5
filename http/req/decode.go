package req

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/junction"
)

func newQueryParamDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return dec
}

// translateDecoderError converts an error returned by *schema.Decoder into
// standardized errors. Some *schema.Decoder errors are issues with calling
// code; some are unexpected issues; still some are issues with mismatches
// between a request's query params and the expected shape.
func translateDecoderError(err error) error {
	var pkgErrs schema.MultiError
	// NOTE(dlk): outside other errors handled below, the schema package
	// appears to always use MultiError to wrap errors up.
	if !errors.As(err, &pkgErrs) {
		return fmt.Errorf("%w: %s", junction.ErrBadFormat, err)
	}

	var validErrs ValidationErrors
	for _, pkgErr := range pkgErrs {
		switch err := pkgErr.(type) {
		case schema.ConversionError:
			// NOTE(dlk): for non-slice values, err.Index is -1.
			validErrs = append(validErrs, ValidationError{
				Field: err.Key,
				Got:   fmt.Sprintf("bad value at index %d", max(0, err.Index)),
				Rule:  "must be " + err.Type.String(),
			})

		case schema.EmptyFieldError:
			return fmt.Errorf(`%w: use the "required" validate tag, not schema`, junction.ErrBadConfig)

		case schema.UnknownKeyError:
			// NOTE(dlk): unknown keys are currently ignored by the
			// decoder's configuration; handled in case that changes.
			validErrs = append(validErrs, ValidationError{
				Field: err.Key,
				Got:   "value is set",
				Rule:  "unexpected key should not be set",
			})

		default:
			// NOTE(dlk): a field whose type has no schema.Converter
			// only errors once a url.Values actually sets its key.
			if strings.Contains(err.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type", junction.ErrBadConfig)
			}

			// likely a programming error, surface it immediately.
			return fmt.Errorf("%w: %s", junction.ErrUnexpected, err)
		}
	}

	return validErrs
}
