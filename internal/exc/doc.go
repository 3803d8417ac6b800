// Package exc is the failure-handling core used throughout the repository:
// structured failure kinds, condition checks, and a process-wide policy
// deciding whether a failed check aborts the process, throws a catchable
// error, or is logged without touching control flow.
//
// The package defines:
//
//   - [Error]: one captured failure (location, condition, kind, stack)
//   - [Kind]: a failure category bundling typed arguments and a renderer
//   - [Assert] / [AssertThrow] / [AssertNothrow]: the three check shapes
//   - [Declare0] .. [Declare5]: declarative generators for new kinds
//   - [DisableAbort] / [EnableAbort]: the process-wide abort/throw toggle
//   - [Catch] / [Do]: recover helpers for the throwing paths
//
// # Example
//
//	func (m *Dense) Trace() float64 {
//		exc.Assert(m.rows == m.cols, "m.rows == m.cols",
//			exc.DimensionMismatch(m.rows, m.cols))
//		// the condition holds from here on
//	}
//
//	err := exc.Do(func() { risky() })
//
// # Thread Safety
//
// Checks may fail from any goroutine. The policy toggles are atomic, but
// they are meant to be set once at startup, before concurrent work begins.
package exc
