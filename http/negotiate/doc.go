/*
Package negotiate implements proactive content negotiation for junction
response data.

A Negotiator holds an ordered set of media type registrations, each pairing
a type with the Renderer producing it. Its Transform method slots into a
router's response pipeline: it matches the request's Accept header against
the registrations, renders the response's Data with the winner, and stamps
the matching Content-Type.

	n, err := negotiate.Setup(
		router,
		negotiate.WithRenderer("application/json", negotiate.JSON),
		negotiate.WithRenderer("application/x-yaml", negotiate.YAML),
	)

Handlers then return data, not bytes:

	func (t Trips) Get(r *http.Request) (*junction.Response, error) {
		return &junction.Response{Data: map[string]any{"trips": []string{"PCT"}}}, nil
	}

Matching follows RFC 7231 semantics: higher quality wins, specificity breaks
quality ties, registration order breaks the rest. Requests accepting none of
the offers fail with junction.ErrNotAcceptable, which the router answers
with 406; ForceNegotiation swaps that for rendering with the first
registration. Responses carrying an explicit Body skip negotiation entirely
unless ForceRendering is set.

Package negotiate ships Renderers for JSON, YAML, MessagePack, XML,
protobuf, and html/template execution. Anything else is a small function
away.
*/
package negotiate
