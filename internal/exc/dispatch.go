package exc

import (
	"fmt"
	"math"
	"os"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// handling selects what a failed check does. It is chosen at the call
// site and never stored on the Error itself.
type handling int

const (
	// abortOrThrow terminates the process unless aborting is disabled by
	// policy, in which case it throws.
	abortOrThrow handling = iota
	// throwAlways throws regardless of policy.
	throwAlways
	// logOnly writes the report to the logger and returns normally.
	logOnly
)

// osExit is swapped out by tests observing the abort path.
var osExit = os.Exit

// issue is the single chokepoint every failed check flows through. The
// record is fully populated before any branching on mode. skip counts the
// frames between issue's caller and the user call site to report.
//
// In abortOrThrow and throwAlways modes, issue never returns: it either
// terminates the process or panics with the *Error. An unrecognized mode
// escalates to an InternalError throw rather than silently continuing.
func issue(h handling, skip int, cond string, kind Kind) {
	e := newError(skip+1, cond, kind)
	switch h {
	case abortOrThrow:
		if AbortEnabled() {
			abort(e)
		}
		panic(e)
	case throwAlways:
		panic(e)
	case logOnly:
		logFailure(e)
	default:
		panic(newError(skip+1, cond, InternalError()))
	}
}

// abort writes the full diagnostic block to the output sink and terminates
// the process. It does not return.
func abort(e *Error) {
	fmt.Fprintln(output(), e.Error())
	osExit(1)
}

func logFailure(e *Error) {
	logger().Error("nothrow check failed, continuing",
		zap.String("kind", e.kindName),
		zap.String("file", e.file),
		zap.Int("line", e.line),
		zap.String("condition", e.cond),
		zap.String("report", e.Error()),
	)
}

// Assert verifies an invariant. If cond is false the process terminates
// with a full diagnostic report, or, when aborting is disabled by policy,
// a *Error is thrown instead. Code after a passed Assert may rely on the
// condition holding. condText is the source text of the condition.
func Assert(cond bool, condText string, kind Kind) {
	if cond {
		return
	}
	issue(abortOrThrow, 1, condText, kind)
}

// AssertThrow verifies a condition that must stay catchable: a false cond
// throws a *Error regardless of the abort policy.
func AssertThrow(cond bool, condText string, kind Kind) {
	if cond {
		return
	}
	issue(throwAlways, 1, condText, kind)
}

// AssertNothrow verifies a condition without ever altering control flow: a
// false cond writes the report to the configured logger and returns. A
// true cond does nothing at all.
func AssertNothrow(cond bool, condText string, kind Kind) {
	if cond {
		return
	}
	issue(logOnly, 1, condText, kind)
}

// AssertDimension verifies that two integer sizes agree, mixing signedness
// safely. Failure carries both values in a DimensionMismatch.
func AssertDimension[A, B constraints.Integer](dim1 A, dim2 B) {
	if sameSize(dim1, dim2) {
		return
	}
	issue(abortOrThrow, 1, "dim1 == dim2", DimensionMismatch(int(dim1), int(dim2)))
}

// AssertIndexRange verifies 0 <= index < size. Failure carries the index
// and the half-open range in an IndexRange.
func AssertIndexRange[A, B constraints.Integer](index A, size B) {
	if indexBelow(index, size) {
		return
	}
	issue(abortOrThrow, 1, "0 <= index && index < size", IndexRange(int(index), 0, int(size)))
}

// AssertIsFinite verifies that v is neither infinite nor NaN.
func AssertIsFinite(v float64) {
	if !math.IsInf(v, 0) && !math.IsNaN(v) {
		return
	}
	issue(abortOrThrow, 1, "isFinite(v)", NumberNotFinite(complex(v, 0)))
}

// FailNotImplemented reports reaching functionality that intentionally
// does not exist yet. It never returns.
func FailNotImplemented() {
	issue(abortOrThrow, 1, "", NotImplemented())
}

// FailUnreachable reports reaching code the author considered impossible
// to reach. It never returns.
func FailUnreachable() {
	issue(abortOrThrow, 1, "", Unreachable())
}

// Catch, deferred, recovers a thrown *Error into err and stops the panic.
// Panics that did not originate from a failed check propagate unchanged.
func Catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(*Error)
	if !ok {
		panic(r)
	}
	*err = e
}

// Do runs fn and converts a thrown failure into an error return.
func Do(fn func()) (err error) {
	defer Catch(&err)
	fn()
	return nil
}
