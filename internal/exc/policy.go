package exc

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// policy holds the process-wide failure-handling switches. The zero value
// is the default policy: abort on failed checks, capture stacktraces, no
// additional output, reports to stderr, log-only failures dropped.
//
// The switches are meant to be set once at startup, before concurrent work
// begins; the atomics only keep late toggles from tripping the race
// detector.
type policy struct {
	noAbort  atomic.Bool
	noTraces atomic.Bool

	mu    sync.Mutex
	extra string
	out   io.Writer
	log   *zap.Logger
}

var pol policy

var nopLogger = zap.NewNop()

// DisableAbort makes failed abort-or-throw checks throw a catchable error
// instead of terminating the process. Global and immediate.
func DisableAbort() { pol.noAbort.Store(true) }

// EnableAbort restores the default behavior of terminating the process on
// a failed abort-or-throw check. Global and immediate; last write wins.
func EnableAbort() { pol.noAbort.Store(false) }

// AbortEnabled reports whether failed abort-or-throw checks currently
// terminate the process.
func AbortEnabled() bool { return !pol.noAbort.Load() }

// SuppressStacktraces disables stack capture and printing for all
// subsequent failures. Useful when report text must compare equal across
// machines. There is no way to turn capture back on.
func SuppressStacktraces() { pol.noTraces.Store(true) }

// StacktracesSuppressed reports whether stack capture has been turned off.
func StacktracesSuppressed() bool { return pol.noTraces.Load() }

// SetAdditionalOutput stores an extra diagnostic string, such as a host
// name, appended to every subsequently rendered report. The text replaces
// any previously set value; an empty string clears it.
func SetAdditionalOutput(text string) {
	pol.mu.Lock()
	defer pol.mu.Unlock()
	pol.extra = text
}

// AdditionalOutput returns the currently configured extra diagnostic text.
func AdditionalOutput() string {
	pol.mu.Lock()
	defer pol.mu.Unlock()
	return pol.extra
}

// SetOutput redirects process-termination reports. A nil w restores the
// default, os.Stderr.
func SetOutput(w io.Writer) {
	pol.mu.Lock()
	defer pol.mu.Unlock()
	pol.out = w
}

func output() io.Writer {
	pol.mu.Lock()
	defer pol.mu.Unlock()
	if pol.out == nil {
		return os.Stderr
	}
	return pol.out
}

// SetLogger installs the sink for log-only check failures. A nil l
// restores the default no-op logger, which drops them.
func SetLogger(l *zap.Logger) {
	pol.mu.Lock()
	defer pol.mu.Unlock()
	pol.log = l
}

func logger() *zap.Logger {
	pol.mu.Lock()
	defer pol.mu.Unlock()
	if pol.log == nil {
		return nopLogger
	}
	return pol.log
}
