package exc

import (
	"fmt"
	"io"
)

// Message carries a free-form explanation for failures that do not fit any
// of the more specific kinds. The text is rendered as-is.
var Message = Declare1("Message", func(w io.Writer, text string) {
	io.WriteString(w, text)
})

// Arithmetic failures.
var (
	// DivideByZero reports an attempted division by zero.
	DivideByZero = Declare0("DivideByZero",
		"A piece of code is attempting a division by zero. This is likely going to produce results that make no sense.")

	// NumberNotFinite reports an infinite or NaN value where a finite
	// number was required.
	NumberNotFinite = Declare1("NumberNotFinite", func(w io.Writer, v complex128) {
		fmt.Fprintf(w,
			"A numerical computation produced a value that is not finite: its value is %v. Such values typically result from dividing by zero or from overflowing floating point operations earlier on.", v)
	})

	// Zero reports a zero value in a place where that makes no sense.
	Zero = Declare0("Zero",
		"A check encountered a zero in a place where a nonzero value was required, for example as a divisor or a normalization factor.")
)

// Resource failures.
var (
	// OutOfMemory reports a failed allocation of the given size.
	OutOfMemory = Declare1("OutOfMemory", func(w io.Writer, bytes uint64) {
		fmt.Fprintf(w,
			"Your program tried to allocate some memory but the allocation failed. The number of bytes requested was %d.", bytes)
	})

	// MemoryLeak reports objects still alive while their handler is torn down.
	MemoryLeak = Declare1("MemoryLeak", func(w io.Writer, n int) {
		fmt.Fprintf(w, "Destroying a memory handler while %d objects are still allocated.", n)
	})

	// IO reports a generic input/output failure.
	IO = Declare0("IO",
		"An input/output error has occurred. There are a number of reasons why this may be happening: the file may not exist, may not be readable or writable, the disk may be full, or the stream may have been closed early.")

	// FileNotOpen reports a file that could not be opened.
	FileNotOpen = Declare1("FileNotOpen", func(w io.Writer, name string) {
		fmt.Fprintf(w, "Could not open file %s.", name)
	})
)

// Programming-contract failures.
var (
	// NotImplemented reports a call into functionality that does not exist
	// yet for the current case.
	NotImplemented = Declare0("NotImplemented",
		"You are trying to use functionality that is currently not implemented. It may genuinely be missing, or it may simply not have been needed for the cases handled so far.")

	// InternalError reports a violated internal invariant: a condition the
	// author of the code believed must hold at this point does not.
	InternalError = Declare0("InternalError",
		"A condition that the author of this code assumed must hold at this point is not satisfied. This is either a bug in the calling code or in this library.")

	// PureFunctionCalled reports a call into a default method body that a
	// concrete implementation was supposed to override.
	PureFunctionCalled = Declare0("PureFunctionCalled",
		"A method that must be supplied by a concrete implementation was called on the embedded default. The type you are using declares this operation but does not actually implement it.")

	// Unreachable reports control flow arriving at a point the author
	// considered impossible to reach.
	Unreachable = Declare0("Unreachable",
		"The program has reached a code path its author considered unreachable. This is a bug: some case analysis above this point is incomplete.")
)

// User-callback failures.
var (
	// FunctionNotProvided reports a required user callback left unset.
	FunctionNotProvided = Declare1("FunctionNotProvided", func(w io.Writer, name string) {
		fmt.Fprintf(w, "Please provide an implementation for the function %q.", name)
	})

	// FunctionNonzeroReturn reports a user callback that signalled failure
	// through a nonzero return code.
	FunctionNonzeroReturn = Declare2("FunctionNonzeroReturn", func(w io.Writer, name string, code int) {
		fmt.Fprintf(w, "The function %q should have returned zero but instead returned %d.", name, code)
	})

	// RecoverableUserCallbackError reports a user callback that failed in a
	// way the caller may recover from.
	RecoverableUserCallbackError = Declare0("RecoverableUserCallbackError",
		"A user call-back function encountered a recoverable error. The operation that invoked the callback was rolled back and may be retried with different inputs.")
)

// Object-state failures.
var (
	// NotInitialized reports use of an object before initialization.
	NotInitialized = Declare0("NotInitialized", "")

	// InvalidState reports an operation illegal in the object's current state.
	InvalidState = Declare0("InvalidState", "")

	// EmptyObject reports an operation that makes no sense on an empty object.
	EmptyObject = Declare0("EmptyObject",
		"The object you are trying to use is empty, and the operation you attempted makes no sense on an empty object.")

	// GhostsPresent reports an operation that requires a fully owned object
	// on one that still carries read-only replicated entries.
	GhostsPresent = Declare0("GhostsPresent",
		"The operation you attempted is only possible on an object without ghost entries, but this object still carries read-only replicated state. Clear or localize the ghost entries first.")

	// ScalarAssignmentOnlyForZero reports a whole-object scalar assignment
	// with a value other than zero.
	ScalarAssignmentOnlyForZero = Declare0("ScalarAssignmentOnlyForZero",
		"Assigning a scalar to all elements at once is only allowed for the scalar zero. Other values are ambiguous and therefore rejected.")
)

// Dimensional failures.
var (
	// DimensionMismatch reports two sizes that were supposed to agree.
	DimensionMismatch = Declare2("DimensionMismatch", func(w io.Writer, d1, d2 int) {
		fmt.Fprintf(w, "Two sizes or dimensions were supposed to be equal, but aren't. They are %d and %d.", d1, d2)
	})

	// DimensionMismatch2 reports a size that matched neither of two
	// acceptable values.
	DimensionMismatch2 = Declare3("DimensionMismatch2", func(w io.Writer, d, want1, want2 int) {
		fmt.Fprintf(w, "The size %d was expected to equal either %d or %d, but matched neither.", d, want1, want2)
	})

	// IndexRange reports an index outside its half-open range.
	IndexRange = Declare3("IndexRange", func(w io.Writer, index, lower, upper int) {
		fmt.Fprintf(w, "Index %d is not in the half-open range [%d,%d).", index, lower, upper)
		if lower == upper {
			io.WriteString(w,
				" In the current case, this half-open range is empty, suggesting that you are accessing an element of a collection that has not been set to its correct size yet.")
		}
	})

	// LowerRange reports a value below its permitted lower bound.
	LowerRange = Declare2("LowerRange", func(w io.Writer, value, bound int) {
		fmt.Fprintf(w, "Number %d must be larger than or equal to %d.", value, bound)
	})

	// NotMultiple reports a division that was supposed to come out even.
	NotMultiple = Declare2("NotMultiple", func(w io.Writer, value, divisor int) {
		fmt.Fprintf(w, "Division of %d by %d has a remainder different from zero.", value, divisor)
	})
)

// Iterator failures.
var (
	// InvalidIterator reports use of an iterator that is not associated
	// with a valid element.
	InvalidIterator = Declare0("InvalidIterator",
		"You are trying to use an iterator that does not point at a valid element, either because it was never initialized or because the container it refers to has changed.")

	// IteratorPastEnd reports dereferencing an iterator advanced past the
	// end of its range.
	IteratorPastEnd = Declare0("IteratorPastEnd",
		"The iterator has been advanced past the end of its range and can no longer be dereferenced.")
)

// InvalidIntegerConversion reports two integers that were supposed to be
// equal but differ, typically because one was converted from a type that
// could not represent the value.
var InvalidIntegerConversion = Declare2("InvalidIntegerConversion", func(w io.Writer, v1, v2 int64) {
	fmt.Fprintf(w,
		"The two integer values %d and %d were supposed to be equal, but converting between their types changed one of them.", v1, v2)
})

// Missing-optional-dependency kinds. These are raised when a subsystem that
// is disabled by configuration is exercised anyway.
var (
	// NeedsStore reports use of run persistence while the store is disabled.
	NeedsStore = Declare0("NeedsStore",
		"This operation needs the run store, but the store is disabled in the current configuration. Enable it under the store section of the config file.")

	// NeedsRPC reports use of RPC-backed functionality while RPC support is
	// disabled.
	NeedsRPC = Declare0("NeedsRPC",
		"This operation needs RPC support, but RPC is disabled in the current configuration.")
)
