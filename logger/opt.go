package logger

import (
	"log"

	"github.com/xy-planning-network/junction"
)

// A LoggerOptFn configures a JunctionLogger before New returns it.
type LoggerOptFn func(*JunctionLogger)

// WithEnv sets the Environment the JunctionLogger operates in.
func WithEnv(env junction.Environment) LoggerOptFn {
	return func(l *JunctionLogger) { l.env = env }
}

// WithLevel sets the minimum LogLevel the JunctionLogger emits.
func WithLevel(ll LogLevel) LoggerOptFn {
	return func(l *JunctionLogger) { l.ll = ll }
}

// WithLogger sets the log.Logger messages are printed with.
func WithLogger(logger *log.Logger) LoggerOptFn {
	return func(l *JunctionLogger) { l.l = logger }
}

// WithSkip sets the number of frames to scroll back
// when locating the call site of a log message.
func WithSkip(i int) LoggerOptFn {
	return func(l *JunctionLogger) { l.skip = i }
}
