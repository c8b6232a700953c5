/*

second-example provides a fuller use of junction's http stack,
highlighting:

(1) negotiating one payload into JSON, YAML or HTML;
(2) a middleware stack applied to every request;
(3) a route group carrying middleware of its own;
(4) parsing and validating a POST body with req;
(5) tidying sloppy request paths with NormalizePath;
(6) replaying POSTs retried with an Idempotency-Key header;
(7) and stopping the web server from a request handler.
*/
package main

import (
	"context"
	"crypto/sha256"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/xy-planning-network/junction"
	"github.com/xy-planning-network/junction/http/middleware"
	"github.com/xy-planning-network/junction/http/negotiate"
	"github.com/xy-planning-network/junction/http/req"
	"github.com/xy-planning-network/junction/http/router"
	"github.com/xy-planning-network/junction/logger"
	"github.com/xy-planning-network/junction/serve"
)

//go:embed tmpl/*
var files embed.FS

// A campsite is the payload a client POSTs to reserve a spot.
type campsite struct {
	Name   string `json:"name" validate:"required"`
	Nights int64  `json:"nights" validate:"gt=0"`
}

// Campsites is the resource answering requests about where to sleep.
type Campsites struct {
	parse *req.Parser
}

func (Campsites) Get(_ *http.Request) (*junction.Response, error) {
	return junction.NewResponse(map[string]any{
		"trips": []string{"Pacific Crest Trail", "Continental Divide Trail", "Appalachian Trail"},
	}), nil
}

func (c Campsites) Post(r *http.Request) (*junction.Response, error) {
	var body campsite
	if err := c.parse.ParseBody(r.Body, &body); err != nil {
		if errors.Is(err, junction.ErrBadFormat) || errors.Is(err, junction.ErrNotValid) {
			return nil, junction.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}

		return nil, err
	}

	resp := junction.NewResponse(map[string]any{"status": "created", "name": body.Name})
	resp.Code = http.StatusCreated

	return resp, nil
}

// initShutdown uses a closure to hand the handler the running server's
// cancel function, showing an alternative pattern to hanging handlers
// off a struct.
//
// Requesting the endpoint the enclosed function binds to causes the web
// server to shut down!
func initShutdown(ls logger.Logger, cancel context.CancelFunc) junction.Handler {
	return func(r *http.Request) (*junction.Response, error) {
		ls.Info("see ya!", nil)
		cancel()

		return junction.NewRawResponse([]byte("bye\n"), "text/plain"), nil
	}
}

func main() {
	// the handler returned by initShutdown cancels this context,
	// stopping the Runner constructed below with it.
	ctx, cancel := context.WithCancel(context.Background())

	env := junction.EnvVarOrEnv("ENVIRONMENT", junction.Development)
	ls := logger.New(logger.WithEnv(env))

	r := router.New(env, router.WithLogger(ls))

	// every request gets an ID, its client IP and a log line;
	// heavy-handed clients get rate limited.
	r.OnEveryRequest(
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(ls),
		middleware.RateLimit(middleware.NewVisitors()),
	)

	if err := r.Handle(router.Route{
		Path:    "/shutdown",
		Method:  http.MethodGet,
		Handler: initShutdown(ls, cancel),
		Name:    "shutdown",
	}); err != nil {
		fmt.Println(err)
		return
	}

	// POSTs to the api group replay when retried with the same
	// Idempotency-Key; swap NewReplayMap for NewRedisCache to share
	// replays across processes.
	api := r.Group("/api", "api")
	api.OnEveryRequest(middleware.Idempotent(middleware.NewReplayMap(), sha256.New()))
	if err := api.AddResource("/campsites", Campsites{parse: req.NewParser()}); err != nil {
		fmt.Println(err)
		return
	}

	// one payload, three representations: curl with
	// Accept: application/json, application/x-yaml or text/html.
	tmpls := template.Must(template.ParseFS(files, "tmpl/*.tmpl"))
	if _, err := negotiate.Setup(
		r,
		negotiate.WithRenderer("application/json", negotiate.JSON),
		negotiate.WithRenderer("application/x-yaml", negotiate.YAML),
		negotiate.WithRenderer("text/html", negotiate.Template(tmpls, "campsites.tmpl")),
		negotiate.WithLogger(ls),
	); err != nil {
		fmt.Println(err)
		return
	}

	// NormalizePath wraps the router itself: a request for //api//campsites/
	// must redirect before route matching happens.
	h := middleware.NormalizePath(r, true, true)(r)

	runner, err := serve.New(h, serve.WithContext(ctx), serve.WithLogger(ls))
	if err != nil {
		fmt.Println(err)
		return
	}

	if err := runner.Run(); err != nil {
		fmt.Println(err)
		return
	}
}
