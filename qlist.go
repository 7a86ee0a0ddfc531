package lazy

import "sort"

// QList is the materialized counterpart of a Lazy chain: an owned,
// ordered, resizable sequence of items. Duplicates are allowed and
// order is significant. Unlike a Lazy handle a QList retains its data
// independent of iteration, so its chainable methods are restartable:
// each call wraps a fresh cursor over the backing array, and two
// chains built from the same QList observe the same items.
type QList[T any] []T

// NewQList produces a QList as a convenience constructor to avoid
// needing to specify types.
func NewQList[T any](in []T) QList[T] { return in }

// QListOf constructs a QList from a sequence of variadic elements.
func QListOf[T any](in ...T) QList[T] { return in }

// Lazy wraps the list's items in a new deferred chain. The list is
// not copied and remains usable afterward.
func (q QList[T]) Lazy() *Lazy[T] { return FromSlice(q) }

// Len returns the number of stored items.
func (q QList[T]) Len() int { return len(q) }

// Slice returns the backing slice.
func (q QList[T]) Slice() []T { return q }

// Get returns the item at index i, or def when i is out of bounds.
func (q QList[T]) Get(i int, def T) T {
	if i < 0 || i >= len(q) {
		return def
	}
	return q[i]
}

// Append returns a new QList with the items added at the end. The
// receiver keeps its own backing array, so two Appends on the same
// list never clobber each other.
func (q QList[T]) Append(items ...T) QList[T] {
	out := append(make(QList[T], 0, len(q)+len(items)), q...)
	return append(out, items...)
}

// Sorted returns a new QList with the items in ascending order under
// the given ordering, leaving the receiver untouched. The sort is
// stable.
func (q QList[T]) Sorted(less func(a, b T) bool) QList[T] {
	out := append(make(QList[T], 0, len(q)), q...)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Reversed returns a new QList with the items in the opposite order.
func (q QList[T]) Reversed() QList[T] {
	out := make(QList[T], len(q))
	for i, v := range q {
		out[len(q)-1-i] = v
	}
	return out
}

// The remaining methods mirror the deferred vocabulary for
// convenience: each starts a fresh chain over the list's items.

// Filter starts a deferred chain keeping the items that satisfy the
// predicate.
func (q QList[T]) Filter(pred func(T) bool) *Lazy[T] { return q.Lazy().Filter(pred) }

// TakeWhile starts a deferred chain that truncates at the first item
// failing the predicate.
func (q QList[T]) TakeWhile(pred func(T) bool) *Lazy[T] { return q.Lazy().TakeWhile(pred) }

// Take starts a deferred chain over the first n items.
func (q QList[T]) Take(n int) *Lazy[T] { return q.Lazy().Take(n) }

// Skip starts a deferred chain over everything after the first n
// items.
func (q QList[T]) Skip(n int) *Lazy[T] { return q.Lazy().Skip(n) }

// Chain starts a deferred chain over the list's items followed by the
// other chain's items.
func (q QList[T]) Chain(other *Lazy[T]) *Lazy[T] { return q.Lazy().Chain(other) }

// Cycle starts a deferred chain repeating the list's items forever.
func (q QList[T]) Cycle() *Lazy[T] { return q.Lazy().Cycle() }

// QListEnumerate starts a deferred chain of index-item pairs.
func QListEnumerate[T any](q QList[T], start int) *Lazy[Pair[int, T]] {
	return Enumerate(q.Lazy(), start)
}

// QListWindow starts a deferred chain of size-k sliding windows.
func QListWindow[T any](q QList[T], k int) *Lazy[[]T] { return Window(q.Lazy(), k) }

// QListBatch starts a deferred chain of size-k chunks.
func QListBatch[T any](q QList[T], k int) *Lazy[[]T] { return Batch(q.Lazy(), k) }

// ForEach applies fn to each stored item in order.
func (q QList[T]) ForEach(fn func(T)) {
	for _, v := range q {
		fn(v)
	}
}

// FoldRight folds the list from the last item toward the first. It
// needs the materialized container: a deferred chain can only be
// walked front to back.
func FoldRight[T any, K any](q QList[T], op func(K, T) K, init K) K {
	acc := init
	for i := len(q) - 1; i >= 0; i-- {
		acc = op(acc, q[i])
	}
	return acc
}
