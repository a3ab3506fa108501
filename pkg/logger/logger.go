// Package logger owns the process-wide zerolog instance. main calls Init once;
// everything else receives a logger (or a scoped child of it) by value.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls how the logger is built.
type Options struct {
	// Level is the minimum level to emit: trace, debug, info, warn or error.
	// Anything unrecognised falls back to info.
	Level string
	// Pretty switches from JSON lines to the coloured console writer. Meant
	// for local development only.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	once     sync.Once
	instance zerolog.Logger
	ready    bool
)

// Init builds the singleton. Subsequent calls return the logger from the
// first one unchanged.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		instance = build(opts)
		ready = true
	})
	return instance
}

// Get returns the singleton and panics when Init has not run yet, which
// always indicates a wiring bug rather than a runtime condition.
func Get() zerolog.Logger {
	if !ready {
		panic("logger: Get() before Init()")
	}
	return instance
}

func build(opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(out).Level(lvl).With().Timestamp().Caller().Logger()
}
