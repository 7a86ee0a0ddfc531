// Package lazy provides composable, deferred-execution transformation
// pipelines over ordered sequences, including sequences with no end.
//
// The core abstraction is the Seq interface, a pull-based producer
// queried one item at a time, and the Lazy handle, which owns a chain
// of Seq adapters and exposes the combinator and terminal API. Each
// combinator wraps the current chain in a new adapter without pulling
// anything; no work happens until a terminal operation (Collect, Fold,
// Any, and friends) drives the chain. Because every adapter processes
// one item per pull, chains run in a single pass with bounded memory
// and are safe over infinite sources, with two documented exceptions
// (GroupBy and Sorted) that must buffer their entire upstream.
//
// A Lazy handle is move-only: calling any combinator or terminal
// transfers ownership of the chain out of the handle, and touching the
// handle again panics with ErrConsumed. This keeps two handles from
// ever pulling on the same upstream.
package lazy

import "iter"

// Seq is the pull capability at the bottom of every pipeline: a
// producer that yields the items of an ordered sequence one per call.
//
// The second return value is false once the sequence has ended, and
// any implementation must keep reporting false on every subsequent
// call (idempotent exhaustion). Sequences with no end simply never
// return false. A Seq is consumed destructively; its state advances on
// every call.
type Seq[T any] interface {
	Next() (T, bool)
}

// SeqFunc adapts a plain function to the Seq interface, for producers
// that are most naturally written as closures over their own state.
type SeqFunc[T any] func() (T, bool)

// Next calls the underlying function.
func (f SeqFunc[T]) Next() (T, bool) { return f() }

// Lazy is a handle that owns one pipeline chain, rooted at a Seq.
//
// Handles are single-use values: every combinator and every terminal
// operation detaches the chain from the handle it is called on, and
// the combinators return a fresh handle wrapping the new chain root.
// Reusing a handle after it has been consumed panics with ErrConsumed
// rather than letting two chains silently share (and corrupt) one
// upstream.
type Lazy[T any] struct {
	seq Seq[T]
}

// New wraps any pull-based producer in a Lazy handle.
func New[T any](seq Seq[T]) *Lazy[T] { return &Lazy[T]{seq: seq} }

// detach transfers the chain root out of the handle, leaving it
// consumed. All combinators and terminals acquire their upstream
// through detach so that double-use fails loudly at the second call
// site.
func (l *Lazy[T]) detach() Seq[T] {
	if l == nil || l.seq == nil {
		panic(ErrConsumed)
	}
	seq := l.seq
	l.seq = nil
	return seq
}

// Next pulls the next item directly from the chain without consuming
// the handle. It exists for callers that want to drive the pipeline
// themselves instead of using a terminal operation.
func (l *Lazy[T]) Next() (T, bool) {
	if l == nil || l.seq == nil {
		panic(ErrConsumed)
	}
	return l.seq.Next()
}

// Iter consumes the handle and exposes the remaining items as a
// standard library iterator, for use with range-over-func and the
// iter package's tooling.
func (l *Lazy[T]) Iter() iter.Seq[T] {
	seq := l.detach()
	return func(yield func(T) bool) {
		for v, ok := seq.Next(); ok; v, ok = seq.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
