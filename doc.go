/*
Package junction holds the shared types gluing the junction toolkit together.

junction is a small set of helpers layered on top of net/http and gorilla/mux:
method-based request handlers ("resources", [http/resource]), a router that
dispatches to them ([http/router]), and a content-negotiation layer that picks
a response renderer from the client's Accept header ([http/negotiate]).

The root package defines the pieces every subpackage speaks in:
[Handler], [Response] and [Transformer] describe how a request becomes bytes
on the wire; [HTTPError] and the sentinel errors describe how failures map to
status codes; [Key] and [Environment] carry request context and deploy-time
configuration.
*/
package junction
