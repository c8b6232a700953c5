/*

start-here provides a toy example use of junction's http stack,
focusing on the basics of:

(1) declaring a resource and the HTTP verbs it answers;
(2) registering it on a router;
(3) letting content negotiation render response data;
(4) and running the web server until a signal to stop arrives.
*/
package main

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/junction"
	"github.com/xy-planning-network/junction/http/negotiate"
	"github.com/xy-planning-network/junction/http/router"
	"github.com/xy-planning-network/junction/serve"
)

// Trips is the resource answering requests about hiking trips.
type Trips struct{}

// Get returns the trip collection.
//
// The Response carries Data, not bytes: the negotiator installed in main
// renders it per the request's Accept header.
func (Trips) Get(_ *http.Request) (*junction.Response, error) {
	return junction.NewResponse(map[string]any{
		"trips": []string{"Pacific Crest Trail", "Continental Divide Trail"},
	}), nil
}

// Post creates a trip, demonstrating failures:
// a *junction.HTTPError surfaces with its own status code,
// any other error as a 500.
func (Trips) Post(r *http.Request) (*junction.Response, error) {
	name := r.PostFormValue("name")
	if name == "" {
		return nil, junction.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	resp := junction.NewResponse(map[string]any{"name": name})
	resp.Code = http.StatusCreated

	return resp, nil
}

func main() {
	env := junction.EnvVarOrEnv("ENVIRONMENT", junction.Development)

	// bind GET and POST /trips, derived from the methods Trips implements.
	r := router.New(env)
	if err := r.AddResource("/trips", Trips{}); err != nil {
		fmt.Println(err)
		return
	}

	// render response data as JSON, the default registration.
	if _, err := negotiate.Setup(r); err != nil {
		fmt.Println(err)
		return
	}

	// run the web server until receiving a signal to stop.
	runner, err := serve.New(r)
	if err != nil {
		fmt.Println(err)
		return
	}

	if err := runner.Run(); err != nil {
		fmt.Println(err)
		return
	}
}
