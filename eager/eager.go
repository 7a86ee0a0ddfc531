// Package eager provides an immediate-evaluation counterpart to the
// deferred chains in the lazy package. List exposes the same
// combinator vocabulary, but every call materializes its result right
// away; on the same finite input, an eager combinator and its lazy
// equivalent produce observably identical results. Lists convert to
// deferred chains (restartably) and back (by a one-shot drain).
package eager

import (
	"cmp"
	"sort"

	"github.com/lazykit/lazy"
)

// List is an owned, ordered, resizable sequence of materialized items
// with immediate-evaluation combinators.
type List[T any] []T

// New produces a List as a convenience constructor to avoid needing
// to specify types.
func New[T any](in []T) List[T] { return in }

// Of constructs a List from a sequence of variadic elements.
func Of[T any](in ...T) List[T] { return in }

// FromLazy drains a deferred chain into a List, consuming the handle.
func FromLazy[T any](l *lazy.Lazy[T]) List[T] { return List[T](l.Slice()) }

// FromQList converts the deferred package's container without
// copying.
func FromQList[T any](q lazy.QList[T]) List[T] { return List[T](q) }

// Lazy wraps the list's items in a new deferred chain. The list
// retains its data, so the conversion is restartable.
func (e List[T]) Lazy() *lazy.Lazy[T] { return lazy.FromSlice(e) }

// QList converts to the deferred package's container without copying.
func (e List[T]) QList() lazy.QList[T] { return lazy.QList[T](e) }

// Len returns the number of stored items.
func (e List[T]) Len() int { return len(e) }

// Slice returns the backing slice.
func (e List[T]) Slice() []T { return e }

// Filter returns a new List of the items satisfying the predicate.
func (e List[T]) Filter(pred func(T) bool) List[T] {
	out := List[T]{}
	for _, v := range e {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// TakeWhile returns the prefix of items before the first one failing
// the predicate.
func (e List[T]) TakeWhile(pred func(T) bool) List[T] {
	out := List[T]{}
	for _, v := range e {
		if !pred(v) {
			break
		}
		out = append(out, v)
	}
	return out
}

// Take returns the first n items, or everything if the list is
// shorter. Negative counts are treated as zero.
func (e List[T]) Take(n int) List[T] {
	if n < 0 {
		n = 0
	}
	if n > len(e) {
		n = len(e)
	}
	return append(List[T]{}, e[:n]...)
}

// Skip returns everything after the first n items. Negative counts
// are treated as zero.
func (e List[T]) Skip(n int) List[T] {
	if n < 0 {
		n = 0
	}
	if n > len(e) {
		n = len(e)
	}
	return append(List[T]{}, e[n:]...)
}

// Chain returns the items of both lists, in order.
func (e List[T]) Chain(other List[T]) List[T] {
	out := append(make(List[T], 0, len(e)+len(other)), e...)
	return append(out, other...)
}

// Window returns all size-k sliding windows, matching the deferred
// Window combinator: a list shorter than k has no windows. Panics
// with lazy.ErrInvalidSize if k < 1.
func Window[T any](e List[T], k int) List[[]T] {
	if k < 1 {
		panic(lazy.ErrInvalidSize)
	}
	out := List[[]T]{}
	for i := 0; i+k <= len(e); i++ {
		out = append(out, append(make([]T, 0, k), e[i:i+k]...))
	}
	return out
}

// Batch returns consecutive chunks of size k; the final chunk may be
// shorter. Panics with lazy.ErrInvalidSize if k < 1.
func Batch[T any](e List[T], k int) List[[]T] {
	if k < 1 {
		panic(lazy.ErrInvalidSize)
	}
	out := List[[]T]{}
	for i := 0; i < len(e); i += k {
		end := i + k
		if end > len(e) {
			end = len(e)
		}
		out = append(out, append(make([]T, 0, end-i), e[i:end]...))
	}
	return out
}

// Sorted returns a new List in ascending order under the given
// ordering, leaving the receiver untouched. The sort is stable.
func (e List[T]) Sorted(less func(a, b T) bool) List[T] {
	out := append(make(List[T], 0, len(e)), e...)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Reversed returns a new List with the items in the opposite order.
func (e List[T]) Reversed() List[T] {
	out := make(List[T], len(e))
	for i, v := range e {
		out[len(e)-1-i] = v
	}
	return out
}

// Merge combines two lists that are each non-decreasing under the
// given ordering into one non-decreasing list; ties go to the
// receiver's side.
func (e List[T]) Merge(other List[T], less func(a, b T) bool) List[T] {
	return FromLazy(e.Lazy().Merge(other.Lazy(), less))
}

// Any reports whether any item satisfies the predicate.
func (e List[T]) Any(pred func(T) bool) bool {
	for _, v := range e {
		if pred(v) {
			return true
		}
	}
	return false
}

// All reports whether every item satisfies the predicate.
func (e List[T]) All(pred func(T) bool) bool {
	for _, v := range e {
		if !pred(v) {
			return false
		}
	}
	return true
}

// ForEach applies fn to each item in order.
func (e List[T]) ForEach(fn func(T)) {
	for _, v := range e {
		fn(v)
	}
}

// Map returns a new List with the mapper applied to every item.
func Map[T any, O any](e List[T], mapper func(T) O) List[O] {
	out := make(List[O], 0, len(e))
	for _, v := range e {
		out = append(out, mapper(v))
	}
	return out
}

// FlatMap applies the mapper to every item and concatenates the
// results.
func FlatMap[T any, O any](e List[T], mapper func(T) []O) List[O] {
	out := List[O]{}
	for _, v := range e {
		out = append(out, mapper(v)...)
	}
	return out
}

// Zip pairs the two lists' items elementwise, stopping at the shorter
// side.
func Zip[A any, B any](a List[A], b List[B]) List[lazy.Pair[A, B]] {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make(List[lazy.Pair[A, B]], 0, n)
	for i := 0; i < n; i++ {
		out = append(out, lazy.Pair[A, B]{Key: a[i], Value: b[i]})
	}
	return out
}

// ZipWith pairs the two lists' items elementwise through op, stopping
// at the shorter side.
func ZipWith[A any, B any, R any](a List[A], b List[B], op func(A, B) R) List[R] {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make(List[R], 0, n)
	for i := 0; i < n; i++ {
		out = append(out, op(a[i], b[i]))
	}
	return out
}

// Product returns the cartesian product of the two lists in left-major
// order: every item of a paired with every item of b, the left index
// varying slowest.
func Product[A any, B any](a List[A], b List[B]) List[lazy.Pair[A, B]] {
	return ProductWith(a, b, lazy.MakePair[A, B])
}

// ProductWith is Product with the pairs passed through op instead of
// collected.
func ProductWith[A any, B any, R any](a List[A], b List[B], op func(A, B) R) List[R] {
	out := make(List[R], 0, len(a)*len(b))
	for _, av := range a {
		for _, bv := range b {
			out = append(out, op(av, bv))
		}
	}
	return out
}

// Fold is a strict left fold over the list.
func Fold[T any, K any](e List[T], op func(K, T) K, init K) K {
	acc := init
	for _, v := range e {
		acc = op(acc, v)
	}
	return acc
}

// BatchBy groups consecutive runs of items sharing a key, exactly as
// the deferred BatchBy does.
func BatchBy[T any, K comparable](e List[T], keyfn func(T) K) List[[]T] {
	return List[[]T](lazy.BatchBy(e.Lazy(), keyfn).Slice())
}

// GroupBy collects all items sharing a key into one group apiece, in
// first-seen key order, exactly as the deferred GroupBy does.
func GroupBy[T any, K comparable](e List[T], keyfn func(T) K) List[[]T] {
	return List[[]T](lazy.GroupBy(e.Lazy(), keyfn).Slice())
}

// Sum accumulates the items with the item type's addition.
func Sum[T lazy.Addable](e List[T]) T {
	var total T
	for _, v := range e {
		total += v
	}
	return total
}

// Max returns the largest item, or lazy.ErrEmpty on an empty list. On
// ties the first-encountered item wins.
func Max[T cmp.Ordered](e List[T]) (T, error) { return lazy.Max(e.Lazy()) }

// Min returns the smallest item, or lazy.ErrEmpty on an empty list.
// On ties the first-encountered item wins.
func Min[T cmp.Ordered](e List[T]) (T, error) { return lazy.Min(e.Lazy()) }

// MaxBy is Max under a key projection.
func MaxBy[T any, K cmp.Ordered](e List[T], key func(T) K) (T, error) {
	return lazy.MaxBy(e.Lazy(), key)
}

// MinBy is Min under a key projection.
func MinBy[T any, K cmp.Ordered](e List[T], key func(T) K) (T, error) {
	return lazy.MinBy(e.Lazy(), key)
}
