package negotiate

import (
	"fmt"
	"strings"

	"github.com/xy-planning-network/junction"
	"github.com/xy-planning-network/junction/logger"
)

// An Option configures the Negotiator under construction by New or Setup.
type Option func(n *Negotiator) error

// WithRenderer offers mediaType rendered through fn.
//
// Registration order matters: earlier registrations win quality ties and
// the first stands in when the Accept header is empty or unusable. A blank
// mediaType, nil fn, or mediaType registered twice errors with
// junction.ErrBadConfig.
func WithRenderer(mediaType string, fn Renderer) Option {
	return func(n *Negotiator) error {
		mediaType = strings.TrimSpace(mediaType)
		if mediaType == "" || fn == nil {
			return fmt.Errorf("%w: a renderer registration needs a media type and a Renderer", junction.ErrBadConfig)
		}
		for _, reg := range n.offers {
			if strings.EqualFold(reg.mediaType, mediaType) {
				return fmt.Errorf("%w: %s registered twice", junction.ErrBadConfig, mediaType)
			}
		}

		n.offers = append(n.offers, registration{mediaType: mediaType, render: fn})

		return nil
	}
}

// ForceRendering renders every response, explicit bodies and nil data
// included, overwriting the body already set.
func ForceRendering() Option {
	return func(n *Negotiator) error {
		n.force = true

		return nil
	}
}

// ForceNegotiation renders requests accepting none of the offers with the
// first registration instead of failing them with junction.ErrNotAcceptable.
func ForceNegotiation() Option {
	return func(n *Negotiator) error {
		n.fallback = true

		return nil
	}
}

// WithLogger sets the logger Transform notes forced negotiations with.
func WithLogger(ls logger.Logger) Option {
	return func(n *Negotiator) error {
		n.ls = ls

		return nil
	}
}
