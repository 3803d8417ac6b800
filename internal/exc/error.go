package exc

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
)

const separator = "--------------------------------------------------------"

// Error describes one failed check: where it happened, the violated
// condition, the failure kind with its arguments, and an optional stack
// snapshot. An Error is populated exactly once, when the check fails, and
// is immutable afterwards except for the lazily rendered message.
type Error struct {
	file     string
	line     int
	function string
	cond     string
	kindName string
	kind     Kind
	pcs      []uintptr

	once sync.Once
	msg  string
}

// newError builds the record for a failure raised skip frames above the
// caller of newError. Location metadata and the stack snapshot are captured
// here, before any dispatch branching; capture is best-effort and an empty
// result is acceptable.
func newError(skip int, cond string, kind Kind) *Error {
	e := &Error{
		cond:     cond,
		kind:     kind,
		kindName: kind.Name(),
	}
	pcs := callers(skip + 1)
	if len(pcs) > 0 {
		fr, _ := runtime.CallersFrames(pcs).Next()
		e.file = fr.File
		e.line = fr.Line
		e.function = fr.Function
		if !StacktracesSuppressed() {
			e.pcs = pcs
		}
	}
	return e
}

// Error renders the full diagnostic block: generic fields, kind-specific
// explanation, stack trace unless suppressed, and any additional output
// configured at the time of rendering. The first call pays the formatting
// cost; the result is cached and later calls return identical text, even
// after the originating stack has unwound. Error never panics: a renderer
// failure degrades to a stub message.
func (e *Error) Error() string {
	e.once.Do(e.generate)
	return e.msg
}

func (e *Error) generate() {
	defer func() {
		if recover() != nil {
			e.msg = "failed to render the message for a " + e.kindName + " failure"
		}
	}()

	var b strings.Builder
	b.WriteString("\n" + separator + "\n")
	e.writeData(&b)
	e.writeInfo(&b)
	e.writeStack(&b)
	if extra := AdditionalOutput(); extra != "" {
		b.WriteString(separator + "\n")
		b.WriteString(extra + "\n")
	}
	b.WriteString(separator + "\n")
	e.msg = b.String()
}

// writeData emits the generic fields block shared by every kind.
func (e *Error) writeData(b *strings.Builder) {
	fmt.Fprintf(b, "An error occurred in line <%d> of file <%s> in function\n    %s\n", e.line, e.file, e.function)
	if e.cond != "" {
		fmt.Fprintf(b, "The violated condition was:\n    %s\n", e.cond)
	}
	fmt.Fprintf(b, "The failure kind was:\n    %s\n", e.kindName)
}

// writeInfo appends the kind-specific explanation through the Info hook.
func (e *Error) writeInfo(b *strings.Builder) {
	var info strings.Builder
	e.kind.Info(&info)
	b.WriteString("Additional information:\n")
	if info.Len() == 0 {
		b.WriteString("    (none)\n")
		return
	}
	b.WriteString("    " + info.String() + "\n")
}

func (e *Error) writeStack(b *strings.Builder) {
	if len(e.pcs) == 0 || StacktracesSuppressed() {
		return
	}
	b.WriteString("Stacktrace:\n-----------\n")
	writeFrames(b, e.pcs)
}

// File returns the source file of the failed check.
func (e *Error) File() string { return e.file }

// Line returns the source line of the failed check.
func (e *Error) Line() int { return e.line }

// Func returns the fully qualified name of the function containing the
// failed check.
func (e *Error) Func() string { return e.function }

// Condition returns the violated condition text, empty for checks that
// fail unconditionally.
func (e *Error) Condition() string { return e.cond }

// Name returns the name of the failure kind.
func (e *Error) Name() string { return e.kindName }

// Kind returns the failure kind with its captured arguments.
func (e *Error) Kind() Kind { return e.kind }
