/*
Package resource maps HTTP verbs onto same-named methods of plain Go values.

A resource is any value implementing one or more of the capability
interfaces ([Getter], [Poster], [Putter], [Patcher], [Deleter], [Header],
[Optioner]). Registering one with [router.Router.AddResource] creates a route
per implemented verb, so related handlers live together on one type:

	type Trips struct{ db *sql.DB }

	func (t Trips) Get(r *http.Request) (*junction.Response, error)  { ... }
	func (t Trips) Post(r *http.Request) (*junction.Response, error) { ... }

	err := r.AddResource("/trips", Trips{db})

Methods not implemented simply do not exist as routes; requests for them
receive the router's 405 handling.
*/
package resource
