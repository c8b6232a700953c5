/*
Package serve runs a junction app's web server with sane defaults.

# Runner

The main entrypoint to package serve is the [Runner] type.
A [Runner] ought to be constructed with [New],
handing it the application's router and any [RunnerOption] overrides.

[*Runner.Run] begins the web server.
By default, [*Runner.Run] listens on [DefaultHost][DefaultPort] (localhost:8080),
assuming either a reverse proxy proxies requests
or only a client application makes direct requests to the junction web server.

Stop that web server with [*Runner.Shutdown],
call the context.CancelFunc returned by [*Runner.Cancel],
cancel the context supplied through [WithContext],
or send a signal [*Runner.Run] listens for.

# Configuration

A developer configures the web server through environment variables
and through [RunnerOption] values passed to [New];
options overrule environment variables.

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - ENVIRONMENT: the environment the application is running in; cf. [junction.Environment]
  - HOST: the host the application is running on; default: localhost
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: :8080
  - SENTRY_DSN: the DSN errors are reported to; cf. [logger.NewSentryLogger]
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_SHUTDOWN_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for in-flight requests to complete at shutdown; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
*/
package serve
