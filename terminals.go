package lazy

// Terminal operations drive the chain: they pull to exhaustion, or to
// the first pull that decides the result. All of them consume the
// handle.

// Collect drains the chain into a QList, in pull order. The result is
// always non-nil.
func (l *Lazy[T]) Collect() QList[T] { return QList[T](drain(l.detach())) }

// Slice drains the chain into a plain slice, in pull order.
func (l *Lazy[T]) Slice() []T { return drain(l.detach()) }

// ForEach applies fn to each item as it is pulled.
func (l *Lazy[T]) ForEach(fn func(T)) {
	seq := l.detach()
	for v, ok := seq.Next(); ok; v, ok = seq.Next() {
		fn(v)
	}
}

// Any reports whether any item satisfies the predicate, pulling only
// until the first satisfying item. Because it performs the minimum
// number of pulls needed to decide, Any is safe on a chain with no end
// as long as a satisfying item exists.
func (l *Lazy[T]) Any(pred func(T) bool) bool {
	seq := l.detach()
	for v, ok := seq.Next(); ok; v, ok = seq.Next() {
		if pred(v) {
			return true
		}
	}
	return false
}

// All reports whether every item satisfies the predicate, pulling only
// until the first failing item. An empty chain satisfies All. Like
// Any, All decides in the minimum number of pulls, so it is safe on a
// chain with no end as long as a failing item exists.
func (l *Lazy[T]) All(pred func(T) bool) bool {
	seq := l.detach()
	for v, ok := seq.Next(); ok; v, ok = seq.Next() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Count drains the chain and returns the number of items pulled.
func (l *Lazy[T]) Count() int {
	seq := l.detach()
	n := 0
	for _, ok := seq.Next(); ok; _, ok = seq.Next() {
		n++
	}
	return n
}

// First returns the first item, or ErrEmpty if the chain yields
// nothing. Only one pull is performed.
func (l *Lazy[T]) First() (T, error) {
	seq := l.detach()
	v, ok := seq.Next()
	if !ok {
		var zero T
		return zero, ErrEmpty
	}
	return v, nil
}

// Get returns the item at position n (zero-based), consuming
// everything before it. Negative positions and positions past the end
// of the chain report ErrEmpty.
func (l *Lazy[T]) Get(n int) (T, error) {
	seq := l.detach()
	var zero T
	if n < 0 {
		return zero, ErrEmpty
	}
	for i := 0; i < n; i++ {
		if _, ok := seq.Next(); !ok {
			return zero, ErrEmpty
		}
	}
	v, ok := seq.Next()
	if !ok {
		return zero, ErrEmpty
	}
	return v, nil
}

// Uncons splits the chain into its first item and a new handle over
// the rest, pulling exactly once. An exhausted upstream reports
// ErrEmpty. Repeated Uncons calls on the successive rest handles walk
// a chain one item at a time, including a chain with no end.
func (l *Lazy[T]) Uncons() (T, *Lazy[T], error) {
	seq := l.detach()
	v, ok := seq.Next()
	if !ok {
		var zero T
		return zero, nil, ErrEmpty
	}
	return v, New[T](seq), nil
}

// SplitWhen drains the chain up to and including the first item that
// satisfies the predicate, returning the drained prefix materialized
// and the untouched remainder as a new handle. If no item satisfies
// the predicate the whole chain ends up in the prefix. An upstream
// that yields nothing reports ErrEmpty.
func (l *Lazy[T]) SplitWhen(pred func(T) bool) (QList[T], *Lazy[T], error) {
	seq := l.detach()
	left := QList[T]{}
	for {
		v, ok := seq.Next()
		if !ok {
			if len(left) == 0 {
				return nil, nil, ErrEmpty
			}
			break
		}
		left = append(left, v)
		if pred(v) {
			break
		}
	}
	return left, New[T](seq), nil
}
