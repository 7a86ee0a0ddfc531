package eager_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lazykit/lazy"
	"github.com/lazykit/lazy/eager"
)

func TestImmediateCombinators(t *testing.T) {
	t.Parallel()

	e := eager.Of(0, 1, 2, 3, 4, 5)

	require.Equal(t, eager.List[int]{0, 2, 4}, e.Filter(func(x int) bool { return x%2 == 0 }))
	require.Equal(t, eager.List[int]{0, 1, 2}, e.TakeWhile(func(x int) bool { return x < 3 }))
	require.Equal(t, eager.List[int]{0, 1}, e.Take(2))
	require.Equal(t, eager.List[int]{4, 5}, e.Skip(4))
	require.Equal(t, eager.List[int]{0, 1, 2, 3, 4, 5}, e.Take(100))
	require.Empty(t, e.Skip(100))
	require.Equal(t, eager.List[int]{0, 1, 9}, eager.Of(0, 1).Chain(eager.Of(9)))
	require.Equal(t, eager.List[int]{5, 4, 3, 2, 1, 0}, e.Reversed())
}

func TestImmediateWindowAndBatch(t *testing.T) {
	t.Parallel()

	require.Equal(t, eager.List[[]int]{{1, 2}, {2, 3}, {3, 4}, {4, 5}}, eager.Window(eager.Of(1, 2, 3, 4, 5), 2))
	require.Empty(t, eager.Window(eager.Of(1, 2), 3))
	require.Equal(t, eager.List[[]int]{{0, 1}, {2, 3}, {4}}, eager.Batch(eager.Of(0, 1, 2, 3, 4), 2))

	require.PanicsWithError(t, lazy.ErrInvalidSize.Error(), func() { eager.Window(eager.Of(1), 0) })
	require.PanicsWithError(t, lazy.ErrInvalidSize.Error(), func() { eager.Batch(eager.Of(1), -1) })
}

func TestImmediateSortAndMerge(t *testing.T) {
	t.Parallel()

	less := func(a, b int) bool { return a < b }

	require.Equal(t, eager.List[int]{1, 2, 3}, eager.Of(3, 1, 2).Sorted(less))
	require.Equal(t, eager.List[int]{1, 2, 3, 4, 5, 6, 7, 8, 9},
		eager.Of(1, 2, 5, 7, 8).Merge(eager.Of(3, 4, 6, 9), less))
}

func TestImmediateFreeFunctions(t *testing.T) {
	t.Parallel()

	require.Equal(t, eager.List[string]{"1", "2"}, eager.Map(eager.Of(1, 2), strconv.Itoa))
	require.Equal(t, eager.List[int]{1, 1, 2, 2},
		eager.FlatMap(eager.Of(1, 2), func(x int) []int { return []int{x, x} }))
	require.Equal(t, 6, eager.Fold(eager.Of(1, 2, 3), func(acc, x int) int { return acc + x }, 0))
	require.Equal(t, 6, eager.Sum(eager.Of(1, 2, 3)))

	pairs := eager.Zip(eager.Of(1, 2, 3), eager.Of("a", "b"))
	require.Equal(t, eager.List[lazy.Pair[int, string]]{{Key: 1, Value: "a"}, {Key: 2, Value: "b"}}, pairs)

	max, err := eager.Max(eager.Of(2, 9, 4))
	require.NoError(t, err)
	require.Equal(t, 9, max)
	_, err = eager.Min(eager.List[int]{})
	require.ErrorIs(t, err, lazy.ErrEmpty)

	longest, err := eager.MaxBy(eager.Of("a", "aaa", "aa"), func(s string) int { return len(s) })
	require.NoError(t, err)
	require.Equal(t, "aaa", longest)
}

func TestImmediateProductAndZipWith(t *testing.T) {
	t.Parallel()

	require.Equal(t, eager.List[string]{"1a", "2b"},
		eager.ZipWith(eager.Of(1, 2, 3), eager.Of("a", "b"),
			func(n int, s string) string { return strconv.Itoa(n) + s }))

	require.Equal(t, eager.List[lazy.Pair[int, string]]{
		{Key: 1, Value: "a"},
		{Key: 1, Value: "b"},
		{Key: 2, Value: "a"},
		{Key: 2, Value: "b"},
	}, eager.Product(eager.Of(1, 2), eager.Of("a", "b")))

	require.Equal(t, eager.List[string]{"x1", "x2", "y1", "y2"},
		eager.ProductWith(eager.Of("x", "y"), eager.Of(1, 2),
			func(s string, n int) string { return s + strconv.Itoa(n) }))
	require.Empty(t, eager.Product(eager.Of(1, 2), eager.List[string]{}))

	// same order as draining the deferred product
	require.Equal(t,
		[]lazy.Pair[int, string](eager.Product(eager.Of(1, 2), eager.Of("a", "b"))),
		lazy.Product(lazy.Of(1, 2), lazy.Of("a", "b")).Slice())
}

func TestImmediateGrouping(t *testing.T) {
	t.Parallel()

	input := eager.Of("a1", "b1", "b2", "a2", "a3", "b3")
	key := func(s string) byte { return s[0] }

	require.Equal(t, eager.List[[]string]{{"a1", "a2", "a3"}, {"b1", "b2", "b3"}}, eager.GroupBy(input, key))
	require.Equal(t, eager.List[[]string]{{"a1"}, {"b1", "b2"}, {"a2", "a3"}, {"b3"}}, eager.BatchBy(input, key))
}

func TestLazyEquivalence(t *testing.T) {
	t.Parallel()

	// the eager facade must match a drained lazy chain on the same
	// finite input, operation for operation
	input := []int{5, 3, 8, 1, 9, 2, 7}
	even := func(x int) bool { return x%2 == 0 }
	less := func(a, b int) bool { return a < b }

	e := eager.New(input)
	require.Equal(t, e.Filter(even).Slice(), lazy.FromSlice(input).Filter(even).Slice())
	require.Equal(t, e.TakeWhile(even).Slice(), lazy.FromSlice(input).TakeWhile(even).Slice())
	require.Equal(t, e.Take(3).Slice(), lazy.FromSlice(input).Take(3).Slice())
	require.Equal(t, e.Skip(3).Slice(), lazy.FromSlice(input).Skip(3).Slice())
	require.Equal(t, e.Sorted(less).Slice(), lazy.FromSlice(input).Sorted(less).Slice())

	require.Equal(t,
		[][]int(eager.Window(e, 3)),
		lazy.Window(lazy.FromSlice(input), 3).Slice())
	require.Equal(t,
		[][]int(eager.Batch(e, 2)),
		lazy.Batch(lazy.FromSlice(input), 2).Slice())
	require.Equal(t,
		[]string(eager.Map(e, strconv.Itoa)),
		lazy.Map(lazy.FromSlice(input), strconv.Itoa).Slice())
}

func TestConversions(t *testing.T) {
	t.Parallel()

	// container → chain is restartable
	e := eager.Of(1, 2, 3)
	require.Equal(t, []int{1, 2, 3}, e.Lazy().Slice())
	require.Equal(t, []int{1, 2, 3}, e.Lazy().Slice())

	// chain → container is a one-shot drain
	l := lazy.Of(4, 5)
	require.Equal(t, eager.List[int]{4, 5}, eager.FromLazy(l))
	require.PanicsWithError(t, lazy.ErrConsumed.Error(), func() { eager.FromLazy(l) })

	q := e.QList()
	require.Equal(t, lazy.QList[int]{1, 2, 3}, q)
	require.Equal(t, e, eager.FromQList(q))
}
