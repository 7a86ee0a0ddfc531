package lazy

import "iter"

// sliceSeq is a cursor over a caller-provided slice. Exhaustion is
// idempotent: once the cursor passes the end it stays there.
type sliceSeq[T any] struct {
	vals []T
	idx  int
}

func (s *sliceSeq[T]) Next() (T, bool) {
	if s.idx >= len(s.vals) {
		var zero T
		return zero, false
	}
	v := s.vals[s.idx]
	s.idx++
	return v, true
}

// FromSlice returns a handle over the items of the slice, in order.
// The slice is not copied; the caller should not mutate it while the
// chain is being consumed.
func FromSlice[T any](vals []T) *Lazy[T] { return New[T](&sliceSeq[T]{vals: vals}) }

// Of is a variadic convenience for FromSlice.
func Of[T any](vals ...T) *Lazy[T] { return FromSlice(vals) }

// Empty returns a handle over a sequence with no items.
func Empty[T any]() *Lazy[T] { return FromSlice[T](nil) }

// Range returns a handle over the integers from start toward stop
// (exclusive), advancing by step. A negative step counts down. A zero
// step panics with ErrZeroStep.
func Range(start, stop, step int) *Lazy[int] {
	if step == 0 {
		panic(ErrZeroStep)
	}
	cur := start
	return New[int](SeqFunc[int](func() (int, bool) {
		if (step > 0 && cur >= stop) || (step < 0 && cur <= stop) {
			return 0, false
		}
		v := cur
		cur += step
		return v, true
	}))
}

// Generate returns a handle over the infinite sequence seed,
// next(seed), next(next(seed)), and so on. Useful for exercising the
// engine's unbounded-input guarantees.
func Generate[T any](seed T, next func(T) T) *Lazy[T] {
	cur := seed
	first := true
	return New[T](SeqFunc[T](func() (T, bool) {
		if first {
			first = false
			return cur, true
		}
		cur = next(cur)
		return cur, true
	}))
}

// Repeat returns a handle over an infinite sequence of the same value.
func Repeat[T any](v T) *Lazy[T] {
	return New[T](SeqFunc[T](func() (T, bool) { return v, true }))
}

// chanSeq pulls from a channel; a closed channel is the end signal.
type chanSeq[T any] struct {
	pipe <-chan T
}

func (s *chanSeq[T]) Next() (T, bool) {
	v, ok := <-s.pipe
	return v, ok
}

// FromChan adapts a channel to a pipeline source. Each pull receives
// one value, blocking until the producer sends or closes the channel;
// closing the channel ends the sequence.
func FromChan[T any](ch <-chan T) *Lazy[T] { return New[T](&chanSeq[T]{pipe: ch}) }

// FromIter adapts a standard library iterator to a pipeline source.
func FromIter[T any](it iter.Seq[T]) *Lazy[T] {
	next, stop := iter.Pull(it)
	return New[T](SeqFunc[T](func() (T, bool) {
		v, ok := next()
		if !ok {
			stop()
		}
		return v, ok
	}))
}
