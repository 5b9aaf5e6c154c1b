// Package logging provides the structured loggers shared across the
// solver's packages. Every component pulls its logger from here rather than
// constructing its own, so a single Configure call at the process entry
// point governs verbosity and formatting everywhere.
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Logger.Level(zerolog.InfoLevel)
}

// Configure sets the global log level and output format. Library code never
// calls this; it is the process entry point's responsibility.
func Configure(level zerolog.Level, w io.Writer) {
	if w == nil {
		w = defaultWriter(os.Stdout)
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger().Level(level)
}

// defaultWriter renders a human-friendly console format when stdout is a
// terminal, and raw JSON otherwise (piped into a log aggregator).
func defaultWriter(f *os.File) io.Writer {
	if isatty.IsTerminal(f.Fd()) {
		return zerolog.ConsoleWriter{Out: f}
	}
	return f
}

// Component is a logger bound to a package name. Unlike a plain
// zerolog.Logger, it re-resolves the global logger on every call instead of
// snapshotting it once, so a Configure call made after package
// initialization (the usual case -- "var log = logging.Named(...)" runs
// before main) still governs its level and writer.
type Component struct {
	name string
}

// Named returns a Component logger scoped to name. It is cheap enough to
// store in a package-level var; the lookup against the global logger
// happens lazily, at each Debug/Info/Warn/Error call.
func Named(name string) Component {
	return Component{name: name}
}

func (c Component) logger() zerolog.Logger {
	return log.Logger.With().Str("component", c.name).Logger()
}

func (c Component) Debug() *zerolog.Event { return c.logger().Debug() }
func (c Component) Info() *zerolog.Event  { return c.logger().Info() }
func (c Component) Warn() *zerolog.Event  { return c.logger().Warn() }
func (c Component) Error() *zerolog.Event { return c.logger().Error() }
