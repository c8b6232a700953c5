/*
Package router binds [junction.Handler]s to paths and methods on top of
gorilla/mux, surfacing configuration mistakes at registration time.

# Routes and resources

Individual bindings go through [Router.Handle] with a [Route].
Groups of verbs belonging to one endpoint go through [Router.AddResource],
which inspects the value for the capability interfaces in
[github.com/xy-planning-network/junction/http/resource] and registers a
route per implemented verb.

Both are atomic and fail fast: a (path, method) pair or route name bound
twice is [junction.ErrDuplicateRoute] at setup, never a shadowed route
found at request time.

# Responses

Handlers return [*junction.Response] values instead of touching
[http.ResponseWriter]. The Router maps handler errors to statuses,
runs the [junction.Transformer] pipeline registered with
[Router.Transform] (content negotiation installs itself here),
and writes the result.

# Reversal

Named routes reverse with [Router.URL]:

	u, err := r.URL("Trips:get")

[Router.Group] scopes both the path and the names of the routes
registered through it.
*/
package router
