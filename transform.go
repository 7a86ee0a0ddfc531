package lazy

import "cmp"

// The combinators and terminal reductions in this file change the item
// type (or constrain it) and therefore cannot be methods on the Lazy
// handle: Go methods cannot introduce type parameters. They consume
// their input handles exactly like the method combinators do.

// Map returns a handle yielding the mapper applied to each upstream
// item, one application per pull.
func Map[T any, O any](l *Lazy[T], mapper func(T) O) *Lazy[O] {
	seq := l.detach()
	return New[O](SeqFunc[O](func() (O, bool) {
		v, ok := seq.Next()
		if !ok {
			var zero O
			return zero, false
		}
		return mapper(v), true
	}))
}

// FlatMap applies the mapper to each upstream item and yields the
// items of each resulting chain in turn. The adapter holds a cursor
// into the current inner chain and drains it fully before pulling the
// next outer item.
func FlatMap[T any, O any](l *Lazy[T], mapper func(T) *Lazy[O]) *Lazy[O] {
	seq := l.detach()
	var inner Seq[O]
	return New[O](SeqFunc[O](func() (O, bool) {
		for {
			if inner != nil {
				if v, ok := inner.Next(); ok {
					return v, true
				}
				inner = nil
			}
			v, ok := seq.Next()
			if !ok {
				var zero O
				return zero, false
			}
			inner = mapper(v).detach()
		}
	}))
}

// Scan is a running fold: it yields every intermediate accumulator
// value, one per upstream item. The initial value itself is not
// yielded. Scan(l, op, init).Collect() has the same final element as
// Fold(l, op, init) on a finite chain.
func Scan[T any, K any](l *Lazy[T], op func(K, T) K, init K) *Lazy[K] {
	seq := l.detach()
	acc := init
	return New[K](SeqFunc[K](func() (K, bool) {
		v, ok := seq.Next()
		if !ok {
			var zero K
			return zero, false
		}
		acc = op(acc, v)
		return acc, true
	}))
}

// Zip pairs the two chains' items elementwise, pulling one item from
// each side per pull. The result ends as soon as either side ends, so
// its length is that of the shorter side.
func Zip[A any, B any](a *Lazy[A], b *Lazy[B]) *Lazy[Pair[A, B]] {
	left, right := a.detach(), b.detach()
	done := false
	return New[Pair[A, B]](SeqFunc[Pair[A, B]](func() (Pair[A, B], bool) {
		if done {
			return Pair[A, B]{}, false
		}
		av, ok := left.Next()
		if !ok {
			done = true
			return Pair[A, B]{}, false
		}
		bv, ok := right.Next()
		if !ok {
			done = true
			return Pair[A, B]{}, false
		}
		return Pair[A, B]{Key: av, Value: bv}, true
	}))
}

// ZipWith pairs the two chains' items elementwise and applies op to
// each pair, ending at the shorter side like Zip.
func ZipWith[A any, B any, R any](a *Lazy[A], b *Lazy[B], op func(A, B) R) *Lazy[R] {
	return Map(Zip(a, b), func(p Pair[A, B]) R { return op(p.Key, p.Value) })
}

// Product yields the Cartesian product of the two chains as pairs, in
// left-major order: every right item for the first left item, then
// every right item for the second, and so on.
func Product[A any, B any](a *Lazy[A], b *Lazy[B]) *Lazy[Pair[A, B]] {
	return ProductWith(a, b, MakePair[A, B])
}

// ProductWith applies op to every pair of the two chains' Cartesian
// product, in the same left-major order as Product. The right side is
// buffered as it streams through the first pass and replayed from the
// buffer for each later left item (in the style of Cycle), so the
// left side may have no end but the right side must.
func ProductWith[A any, B any, R any](a *Lazy[A], b *Lazy[B], op func(A, B) R) *Lazy[R] {
	left, right := a.detach(), b.detach()
	var saved []B
	var cur A
	haveCur := false
	draining := true
	done := false
	idx := 0
	return New[R](SeqFunc[R](func() (R, bool) {
		var zero R
		for {
			if done {
				return zero, false
			}
			if !haveCur {
				v, ok := left.Next()
				if !ok {
					done = true
					return zero, false
				}
				cur, haveCur = v, true
				idx = 0
			}
			if draining {
				if v, ok := right.Next(); ok {
					saved = append(saved, v)
					return op(cur, v), true
				}
				draining = false
				// an empty right side empties the whole product,
				// even under a left side with no end
				done = len(saved) == 0
				haveCur = false
				continue
			}
			if idx < len(saved) {
				v := saved[idx]
				idx++
				return op(cur, v), true
			}
			haveCur = false
		}
	}))
}

// BatchBy groups consecutive runs of items that share a key: a new
// chunk starts whenever the key differs from the previous item's key.
// Only adjacent items are grouped; items with equal keys separated by
// a different key land in different chunks (compare GroupBy). Streams
// with one chunk of buffering.
func BatchBy[T any, K comparable](l *Lazy[T], keyfn func(T) K) *Lazy[[]T] {
	seq := l.detach()
	var pending T
	var pendingKey K
	hasPending := false
	ended := false
	return New[[]T](SeqFunc[[]T](func() ([]T, bool) {
		if ended {
			return nil, false
		}
		if !hasPending {
			v, ok := seq.Next()
			if !ok {
				ended = true
				return nil, false
			}
			pending, pendingKey, hasPending = v, keyfn(v), true
		}
		chunk := []T{pending}
		key := pendingKey
		for {
			v, ok := seq.Next()
			if !ok {
				ended = true
				hasPending = false
				break
			}
			if k := keyfn(v); k != key {
				pending, pendingKey = v, k
				break
			}
			chunk = append(chunk, v)
		}
		return chunk, true
	}))
}

// GroupBy collects all items sharing a key into one group apiece and
// yields the groups in first-seen key order.
//
// GroupBy is the engine's documented exception to streaming: the first
// pull drains the entire upstream into the key mapping before any
// group is yielded, so it cannot be used on a chain with no end. When
// only adjacent runs need grouping, BatchBy streams.
func GroupBy[T any, K comparable](l *Lazy[T], keyfn func(T) K) *Lazy[[]T] {
	seq := l.detach()
	var groups [][]T
	pending := true
	idx := 0
	return New[[]T](SeqFunc[[]T](func() ([]T, bool) {
		if pending {
			pending = false
			at := map[K]int{}
			for v, ok := seq.Next(); ok; v, ok = seq.Next() {
				k := keyfn(v)
				i, seen := at[k]
				if !seen {
					i = len(groups)
					at[k] = i
					groups = append(groups, nil)
				}
				groups[i] = append(groups[i], v)
			}
		}
		if idx >= len(groups) {
			return nil, false
		}
		g := groups[idx]
		idx++
		return g, true
	}))
}

// Fold is a strict left fold: the accumulator is fully computed from
// each item before the next pull. Folding an empty chain returns init.
func Fold[T any, K any](l *Lazy[T], op func(K, T) K, init K) K {
	seq := l.detach()
	acc := init
	for v, ok := seq.Next(); ok; v, ok = seq.Next() {
		acc = op(acc, v)
	}
	return acc
}

// FlatFold folds with a working set of accumulators instead of a
// single one, modeling branching search over a sequence. The set
// starts as {init}; for each item every accumulator is replaced by all
// the values op produces for it, flattened in generation order. The
// final working set is returned as a new handle.
//
// FlatFold drains its upstream completely before returning, so like
// GroupBy and Sorted it is not usable on a chain with no end.
func FlatFold[T any, K any](l *Lazy[T], op func(K, T) []K, init K) *Lazy[K] {
	seq := l.detach()
	working := []K{init}
	for v, ok := seq.Next(); ok; v, ok = seq.Next() {
		next := make([]K, 0, len(working))
		for _, acc := range working {
			next = append(next, op(acc, v)...)
		}
		working = next
	}
	return FromSlice(working)
}

// Addable constrains Sum to the types whose + operator the engine can
// use to accumulate, including string concatenation.
type Addable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128 |
		~string
}

// Sum drains the chain, accumulating with the item type's addition.
// An empty chain sums to the zero value.
func Sum[T Addable](l *Lazy[T]) T {
	seq := l.detach()
	var total T
	for v, ok := seq.Next(); ok; v, ok = seq.Next() {
		total += v
	}
	return total
}

// Max drains the chain and returns its largest item, or ErrEmpty if
// the chain yields nothing. On ties the first-encountered item wins.
func Max[T cmp.Ordered](l *Lazy[T]) (T, error) {
	return MaxBy(l, func(v T) T { return v })
}

// Min drains the chain and returns its smallest item, or ErrEmpty if
// the chain yields nothing. On ties the first-encountered item wins.
func Min[T cmp.Ordered](l *Lazy[T]) (T, error) {
	return MinBy(l, func(v T) T { return v })
}

// MaxBy is Max under a key projection.
func MaxBy[T any, K cmp.Ordered](l *Lazy[T], key func(T) K) (T, error) {
	seq := l.detach()
	best, ok := seq.Next()
	if !ok {
		var zero T
		return zero, ErrEmpty
	}
	bestKey := key(best)
	for v, ok := seq.Next(); ok; v, ok = seq.Next() {
		if k := key(v); k > bestKey {
			best, bestKey = v, k
		}
	}
	return best, nil
}

// MinBy is Min under a key projection.
func MinBy[T any, K cmp.Ordered](l *Lazy[T], key func(T) K) (T, error) {
	seq := l.detach()
	best, ok := seq.Next()
	if !ok {
		var zero T
		return zero, ErrEmpty
	}
	bestKey := key(best)
	for v, ok := seq.Next(); ok; v, ok = seq.Next() {
		if k := key(v); k < bestKey {
			best, bestKey = v, k
		}
	}
	return best, nil
}
