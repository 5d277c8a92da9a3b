// Package log is the ambient, package-private logging surface every
// other package in this module calls into (spec.md's ambient stack:
// "logging, off by default, Debug level only"). It wraps
// github.com/rs/zerolog rather than defining its own sink, following the
// example pack's existing dependency on it (e.g.
// BaoNinh2808-gnark/go.mod's require block) instead of hand-rolling one.
//
// Nothing in this module logs above Debug: there are no user-facing
// warnings or errors to emit from a library with no I/O surface —
// every failure is returned as a Go error instead. Debug logging exists
// purely to let a caller trace what an expensive pass is doing
// internally (algorithms.Connect is the only pass that logs), and is
// silent unless SetOutput is called or WFST_DEBUG is set.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(io.Discard).With().Timestamp().Logger().Level(zerolog.Disabled)
)

// SetOutput redirects subsequent log output to w and enables Debug-level
// logging. Passing nil restores the default (discarded, disabled)
// behavior. Intended for tests and diagnostic tooling, not production
// callers, since this package is a library with no ambient configuration
// surface of its own.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		logger = zerolog.New(io.Discard).With().Timestamp().Logger().Level(zerolog.Disabled)
		return
	}
	logger = zerolog.New(w).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

// Debug returns a zerolog.Event for the package-level logger, honoring
// whatever level SetOutput last configured.
func Debug() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return logger.Debug()
}

// Named returns a child logger tagged with component=name, for call
// sites that want to attribute a Debug line to a specific algorithm
// (e.g. "connect", "determinize", "compose").
func Named(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger.With().Str("component", name).Logger()
}

func init() {
	if os.Getenv("WFST_DEBUG") != "" {
		SetOutput(os.Stderr)
	}
}
