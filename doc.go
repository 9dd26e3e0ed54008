// Package copyable classifies types as safe or unsafe to shallow-copy for
// deferred log formatting. A deferred-formatting pipeline hands arguments to a
// background goroutine and renders them later; that is only sound when
// duplicating the value cannot capture a reference whose referent dies before
// rendering happens. This package answers exactly that question, as a pure
// predicate over types, and nothing else: it never copies, allocates buffers,
// or formats anything itself.
//
// # Design overview
//
//   - Structural rules: a type is safe when it is trivial (shallow copy is the
//     whole value), arithmetic, a string, a two-field pair of safe types, a
//     container of safe element types, or a struct explicitly tagged by its
//     author. Everything else defaults to unsafe, so the consuming pipeline
//     falls back to eager formatting rather than risking a dangling copy.
//   - Guarded queries: every predicate that inspects a type's internals runs
//     behind a shape check, so no input type, however exotic, produces a panic.
//     And/Or stop at the first deciding operand for the same reason.
//   - Warm cache: results are memoised per reflect.Type in a sync.Map; after
//     first classification a query is a single lock-free map hit, cheap enough
//     for a logging hot path.
//   - Explicit registry: Register supplies classifications for types you do
//     not own. An explicit registration wins over the structural rules in both
//     directions and is meant to run at process start.
//
// # Opting in
//
// Authors tag their own types by declaring a CopyLoggable method; the Loggable
// interface exists so the declaration can be compile-checked:
//
//	type Request struct {
//		ID   uint64
//		Path string
//	}
//
//	func (Request) CopyLoggable() {}
//
//	var _ copyable.Loggable = Request{}
//
// For foreign types, register once during start-up:
//
//	copyable.Register[time.Time](true) // Location pointer is shared and immutable
//
// # Usage
//
//	if copyable.Value(v) {
//		enqueue(v) // rendered later, off the caller goroutine
//	} else {
//		enqueue(render(v)) // rendered now, result is a plain string
//	}
//
// The typecheck subpackage applies the same rules to go/types objects so code
// generators and analyzers can make the identical decision at build time, and
// the copyablecheck analyzer reports call sites whose arguments will force the
// eager path.
package copyable
