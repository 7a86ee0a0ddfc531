package lazy

import "sort"

// Every combinator in this file consumes its receiving handle (and the
// other handle, for the two-input combinators) and returns a new
// handle wrapping a new adapter over the detached chain. Nothing is
// pulled until a terminal operation runs. Combinators whose output
// type depends on a second type parameter (Map, FlatMap, Zip, Scan,
// BatchBy, GroupBy) live in transform.go as package-level functions,
// because Go methods cannot introduce type parameters.

// Filter returns a handle yielding only the items for which the
// predicate holds. Each pull of the filter pulls upstream until a
// match or upstream end.
func (l *Lazy[T]) Filter(pred func(T) bool) *Lazy[T] {
	seq := l.detach()
	return New[T](SeqFunc[T](func() (T, bool) {
		for {
			v, ok := seq.Next()
			if !ok {
				return v, false
			}
			if pred(v) {
				return v, true
			}
		}
	}))
}

// TakeWhile yields items as long as the predicate holds. The first
// failing item ends the sequence permanently: it is consumed but not
// yielded, and the adapter never resumes even if later upstream items
// would satisfy the predicate again.
func (l *Lazy[T]) TakeWhile(pred func(T) bool) *Lazy[T] {
	seq := l.detach()
	done := false
	return New[T](SeqFunc[T](func() (T, bool) {
		var zero T
		if done {
			return zero, false
		}
		v, ok := seq.Next()
		if !ok || !pred(v) {
			done = true
			return zero, false
		}
		return v, true
	}))
}

// Take yields at most n items. Negative counts are treated as zero.
// Once the budget is spent the adapter stops pulling upstream, which
// makes Take the usual way to bound an infinite chain.
func (l *Lazy[T]) Take(n int) *Lazy[T] {
	seq := l.detach()
	remaining := n
	return New[T](SeqFunc[T](func() (T, bool) {
		if remaining <= 0 {
			var zero T
			return zero, false
		}
		v, ok := seq.Next()
		if !ok {
			remaining = 0
			return v, false
		}
		remaining--
		return v, true
	}))
}

// Skip discards the first n items (fewer if the upstream ends first)
// and passes everything after them through. The discarding happens on
// the first pull, not at construction. Negative counts are treated as
// zero.
func (l *Lazy[T]) Skip(n int) *Lazy[T] {
	seq := l.detach()
	skipped := false
	return New[T](SeqFunc[T](func() (T, bool) {
		if !skipped {
			skipped = true
			for i := 0; i < n; i++ {
				if _, ok := seq.Next(); !ok {
					break
				}
			}
		}
		return seq.Next()
	}))
}

// Chain yields all of this chain's items followed by all of the other
// chain's items. Both handles are consumed.
func (l *Lazy[T]) Chain(other *Lazy[T]) *Lazy[T] {
	first, second := l.detach(), other.detach()
	onSecond := false
	return New[T](SeqFunc[T](func() (T, bool) {
		if !onSecond {
			if v, ok := first.Next(); ok {
				return v, true
			}
			onSecond = true
		}
		return second.Next()
	}))
}

// Cycle repeats the chain's items forever: items are buffered as they
// stream through the first time, then replayed from the buffer. The
// result has no end unless the upstream is empty, in which case it is
// empty too.
func (l *Lazy[T]) Cycle() *Lazy[T] {
	seq := l.detach()
	var saved []T
	idx := 0
	draining := true
	return New[T](SeqFunc[T](func() (T, bool) {
		if draining {
			if v, ok := seq.Next(); ok {
				saved = append(saved, v)
				return v, true
			}
			draining = false
		}
		if len(saved) == 0 {
			var zero T
			return zero, false
		}
		v := saved[idx]
		idx = (idx + 1) % len(saved)
		return v, true
	}))
}

// Enumerate pairs each item with its position in the sequence,
// starting the count at start.
func Enumerate[T any](l *Lazy[T], start int) *Lazy[Pair[int, T]] {
	seq := l.detach()
	idx := start
	return New[Pair[int, T]](SeqFunc[Pair[int, T]](func() (Pair[int, T], bool) {
		v, ok := seq.Next()
		if !ok {
			return Pair[int, T]{}, false
		}
		p := Pair[int, T]{Key: idx, Value: v}
		idx++
		return p, true
	}))
}

// mergeSeq holds the current head of each side. A head is refilled
// only after it is emitted, so each pull performs exactly one upstream
// pull once both heads are primed.
type mergeSeq[T any] struct {
	left, right Seq[T]
	lv, rv      T
	lok, rok    bool
	primed      bool
	less        func(a, b T) bool
}

func (s *mergeSeq[T]) Next() (T, bool) {
	if !s.primed {
		s.lv, s.lok = s.left.Next()
		s.rv, s.rok = s.right.Next()
		s.primed = true
	}
	switch {
	case s.lok && (!s.rok || !s.less(s.rv, s.lv)):
		// ties go to the left side
		v := s.lv
		s.lv, s.lok = s.left.Next()
		return v, true
	case s.rok:
		v := s.rv
		s.rv, s.rok = s.right.Next()
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Merge interleaves two chains that are each non-decreasing under the
// given ordering into a single non-decreasing chain, comparing the
// current heads and emitting the lesser on every pull. Ties go to the
// left side; once either side ends the remainder of the other is
// passed through. Neither input is buffered, so merging two infinite
// chains is fine.
func (l *Lazy[T]) Merge(other *Lazy[T], less func(a, b T) bool) *Lazy[T] {
	return New[T](&mergeSeq[T]{left: l.detach(), right: other.detach(), less: less})
}

// Sorted yields the chain's items in ascending order under the given
// ordering. The sort is stable.
//
// Sorted must materialize: the first pull drains the entire upstream
// into a buffer before anything is yielded, so it cannot be used on a
// chain with no end. Every other combinator except GroupBy streams.
func (l *Lazy[T]) Sorted(less func(a, b T) bool) *Lazy[T] {
	seq := l.detach()
	var buf []T
	idx := 0
	pending := true
	return New[T](SeqFunc[T](func() (T, bool) {
		if pending {
			pending = false
			buf = drain(seq)
			sort.SliceStable(buf, func(i, j int) bool { return less(buf[i], buf[j]) })
		}
		if idx >= len(buf) {
			var zero T
			return zero, false
		}
		v := buf[idx]
		idx++
		return v, true
	}))
}

// Window yields a length-k snapshot of the k most recent items, sliding
// by one: the n-th window covers items n through n+k-1. An upstream
// shorter than k produces no windows. The adapter keeps a fixed-size
// ring buffer of the last k items; each yielded window is a fresh
// slice that later pulls never mutate. Panics with ErrInvalidSize if
// k < 1.
func Window[T any](l *Lazy[T], k int) *Lazy[[]T] {
	if k < 1 {
		panic(ErrInvalidSize)
	}
	seq := l.detach()
	ring := make([]T, k)
	count := 0
	return New[[]T](SeqFunc[[]T](func() ([]T, bool) {
		for {
			v, ok := seq.Next()
			if !ok {
				return nil, false
			}
			ring[count%k] = v
			count++
			if count >= k {
				// oldest item lives at ring[count%k]
				out := make([]T, k)
				for i := range out {
					out[i] = ring[(count+i)%k]
				}
				return out, true
			}
		}
	}))
}

// Batch groups consecutive items into chunks of k; the final chunk may
// be shorter if the upstream ends mid-chunk. Each chunk is a fresh
// slice owned by the consumer. Panics with ErrInvalidSize if k < 1.
func Batch[T any](l *Lazy[T], k int) *Lazy[[]T] {
	if k < 1 {
		panic(ErrInvalidSize)
	}
	seq := l.detach()
	return New[[]T](SeqFunc[[]T](func() ([]T, bool) {
		v, ok := seq.Next()
		if !ok {
			return nil, false
		}
		chunk := append(make([]T, 0, k), v)
		for len(chunk) < k {
			v, ok := seq.Next()
			if !ok {
				break
			}
			chunk = append(chunk, v)
		}
		return chunk, true
	}))
}

// Flatten concatenates a chain of slices into a chain of their
// elements.
func Flatten[T any](l *Lazy[[]T]) *Lazy[T] {
	seq := l.detach()
	var inner []T
	idx := 0
	return New[T](SeqFunc[T](func() (T, bool) {
		for idx >= len(inner) {
			var ok bool
			inner, ok = seq.Next()
			if !ok {
				var zero T
				return zero, false
			}
			idx = 0
		}
		v := inner[idx]
		idx++
		return v, true
	}))
}

// drain pulls a sequence to exhaustion. The result is always non-nil
// so downstream consumers can compare against empty containers.
func drain[T any](seq Seq[T]) []T {
	out := []T{}
	for v, ok := seq.Next(); ok; v, ok = seq.Next() {
		out = append(out, v)
	}
	return out
}
