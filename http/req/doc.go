/*
Package req provides ergonomics for handling an HTTP request.

Package req provides a helper for parsing payloads in an HTTP request.
It supports JSON-encoded payloads and payloads encoded in query parameters.
In both cases, package req expects to parse payloads into a pointer to a struct.
That struct ought to leverage the appropriate struct tags for performing two tasks.
First, matching keys in the payload to fields on the struct:
"json" tags for bodies, "schema" tags for query params.
Second, for validating the payload's data meets requirements,
through "validate" tags.

By leveraging req, handlers get data out of an HTTP request into
application-specific structs. Notably, the parade of errors that may
propagate from such a task are translated to junction sentinel errors in
order to provide a consistent interface for issues that arise across
encoding types. Validation failures unwrap to [junction.ErrNotValid] and
carry a [ValidationErrors] detailing every broken rule, ready to render
back to the client.
*/
package req
