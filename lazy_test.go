package lazy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lazykit/lazy"
)

// countingSeq yields 0, 1, 2, ... forever and records every pull in
// the counter, for asserting minimum-pull guarantees.
func countingSeq(pulls *int) lazy.SeqFunc[int] {
	i := 0
	return func() (int, bool) {
		*pulls++
		v := i
		i++
		return v, true
	}
}

func naturals() *lazy.Lazy[int] {
	return lazy.Generate(0, func(n int) int { return n + 1 })
}

func TestHandleConsumedPanics(t *testing.T) {
	t.Parallel()

	l := lazy.Of(1, 2, 3)
	_ = l.Filter(func(int) bool { return true })

	require.PanicsWithError(t, lazy.ErrConsumed.Error(), func() { l.Collect() })
	require.PanicsWithError(t, lazy.ErrConsumed.Error(), func() { l.Filter(func(int) bool { return true }) })
	require.PanicsWithError(t, lazy.ErrConsumed.Error(), func() { l.Next() })
}

func TestHandleConsumedByTerminal(t *testing.T) {
	t.Parallel()

	l := lazy.Of(1, 2)
	_ = l.Collect()
	require.PanicsWithError(t, lazy.ErrConsumed.Error(), func() { l.Count() })
}

func TestDeferredEvaluation(t *testing.T) {
	t.Parallel()

	calls := 0
	l := lazy.Map(lazy.Of(1, 2, 3), func(x int) int { calls++; return x * 2 })
	require.Zero(t, calls, "combinators must not pull")

	require.Equal(t, []int{2, 4, 6}, l.Slice())
	require.Equal(t, 3, calls)
}

func TestDirectPull(t *testing.T) {
	t.Parallel()

	l := lazy.Of("a", "b")

	v, ok := l.Next()
	require.True(t, ok)
	require.Equal(t, "a", v)

	v, ok = l.Next()
	require.True(t, ok)
	require.Equal(t, "b", v)

	_, ok = l.Next()
	require.False(t, ok)
	// exhausted reuse is not an error, just more end signals
	_, ok = l.Next()
	require.False(t, ok)
}

func TestIterInterop(t *testing.T) {
	t.Parallel()

	var seen []int
	for v := range lazy.Of(1, 2, 3).Iter() {
		seen = append(seen, v)
	}
	require.Equal(t, []int{1, 2, 3}, seen)

	// early break stops pulling
	pulls := 0
	for range lazy.New[int](countingSeq(&pulls)).Iter() {
		break
	}
	require.Equal(t, 1, pulls)

	// round trip through the stdlib iterator form
	out := lazy.FromIter(lazy.Of(4, 5, 6).Iter()).Slice()
	require.Equal(t, []int{4, 5, 6}, out)
}
