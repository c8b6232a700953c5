package negotiate

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/junction"
	"github.com/xy-planning-network/junction/logger"
)

// An App can install junction.Transformers on its response pipeline.
// *router.Router satisfies it.
type App interface {
	Transform(ts ...junction.Transformer)
}

// A registration pairs an offered media type with the Renderer producing it.
type registration struct {
	mediaType string
	render    Renderer
}

// A Negotiator picks a response's representation by matching the request's
// Accept header against its registered renderers.
//
// Construct one with New or hang it directly on a router with Setup. The
// zero value is not usable.
type Negotiator struct {
	fallback bool
	force    bool
	keys     []string
	ls       logger.Logger
	offers   []registration
}

// New constructs a Negotiator from opts.
//
// Without a WithRenderer option it offers only "application/json" through
// the JSON Renderer.
func New(opts ...Option) (*Negotiator, error) {
	n := new(Negotiator)
	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}

	if len(n.offers) == 0 {
		n.offers = []registration{{mediaType: "application/json", render: JSON}}
	}
	for _, reg := range n.offers {
		n.keys = append(n.keys, reg.mediaType)
	}

	if n.ls == nil {
		n.ls = logger.New()
	}

	return n, nil
}

// Setup constructs a Negotiator from opts and installs its Transform on app.
func Setup(app App, opts ...Option) (*Negotiator, error) {
	if app == nil {
		return nil, fmt.Errorf("%w: nil app", junction.ErrBadConfig)
	}

	n, err := New(opts...)
	if err != nil {
		return nil, err
	}
	app.Transform(n.Transform)

	return n, nil
}

// MediaTypes lists the offered media types in registration order.
func (n *Negotiator) MediaTypes() []string {
	keys := make([]string, len(n.keys))
	copy(keys, n.keys)

	return keys
}

// Transform is a junction.Transformer rendering resp.Data into resp.Body
// with the Renderer the request's Accept header selects, stamping the
// matching Content-Type.
//
// Responses already carrying an explicit body pass through untouched, as do
// responses with no data to render; ForceRendering changes both. A request
// accepting none of the offers errors with junction.ErrNotAcceptable unless
// ForceNegotiation is set, in which case the first registration renders it.
// A Renderer failure errors with junction.ErrRender and leaves resp alone.
func (n *Negotiator) Transform(r *http.Request, resp *junction.Response) error {
	if !n.force {
		if resp.Rendered() {
			return nil
		}
		if resp.Data == nil {
			return nil
		}
	}

	header := r.Header.Get("Accept")
	idx, entry, err := negotiate(header, n.keys)
	if err != nil {
		if !n.fallback || !errors.Is(err, junction.ErrNotAcceptable) {
			return err
		}

		idx, entry = 0, acceptEntry{}
		n.ls.Debug(fmt.Sprintf("%q accepts no offer, forcing %s", header, n.offers[0].mediaType), nil)
	}

	reg := n.offers[idx]
	b, err := reg.render(r, resp.Data)
	if err != nil {
		return fmt.Errorf("%w: %s: %s", junction.ErrRender, reg.mediaType, err)
	}

	resp.Body = b
	if resp.Header == nil {
		resp.Header = make(http.Header)
	}
	resp.Header.Set("Content-Type", resolveContentType(reg.mediaType, entry))

	return nil
}
