package quadtree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ArgishtiAyvazyan/geometry/geom"
	"github.com/ArgishtiAyvazyan/geometry/quadtree"
)

func mustInsert(t *testing.T, idx *quadtree.Index[int, geom.Rect[int]], r geom.Rect[int]) bool {
	t.Helper()
	ok, err := idx.Insert(r)
	require.NoError(t, err)
	return ok
}

func TestIndex_SeedScenario(t *testing.T) {
	idx := quadtree.New[int, geom.Rect[int]]()

	a := geom.NewRect(geom.NewPoint(50, 13), 100, 100)
	b := geom.NewRect(geom.NewPoint(0, 0), 123, 123)
	c := geom.NewRect(geom.NewPoint(200, 200), 10, 10)

	require.True(t, mustInsert(t, idx, a))
	require.True(t, mustInsert(t, idx, b))
	require.True(t, mustInsert(t, idx, c))
	require.Equal(t, 3, idx.Size())

	var found []geom.Rect[int]
	idx.Query(geom.NewRect(geom.NewPoint(60, 60), 5, 5), func(r geom.Rect[int]) {
		found = append(found, r)
	})
	require.ElementsMatch(t, []geom.Rect[int]{a, b}, found)

	require.True(t, idx.Remove(b))

	found = nil
	idx.Query(geom.NewRect(geom.NewPoint(60, 60), 5, 5), func(r geom.Rect[int]) {
		found = append(found, r)
	})
	require.ElementsMatch(t, []geom.Rect[int]{a}, found)
	require.Equal(t, 2, idx.Size())
}

func TestIndex_DuplicateInsertIsNoop(t *testing.T) {
	idx := quadtree.New[int, geom.Rect[int]]()
	r := geom.NewRect(geom.NewPoint(1, 1), 5, 5)

	require.True(t, mustInsert(t, idx, r))
	require.False(t, mustInsert(t, idx, r))
	require.Equal(t, 1, idx.Size())
}

func TestIndex_ContainsAndRemove(t *testing.T) {
	idx := quadtree.New[int, geom.Rect[int]]()
	r := geom.NewRect(geom.NewPoint(10, 10), 5, 5)

	require.False(t, idx.Contains(r))
	mustInsert(t, idx, r)
	require.True(t, idx.Contains(r))

	require.True(t, idx.Remove(r))
	require.False(t, idx.Contains(r))
	require.False(t, idx.Remove(r))
}

func TestIndex_RemovingLastKeyResetsToEmpty(t *testing.T) {
	idx := quadtree.New[int, geom.Rect[int]]()
	r := geom.NewRect(geom.NewPoint(5, 5), 5, 5)

	mustInsert(t, idx, r)
	require.True(t, idx.Remove(r))
	require.True(t, idx.Empty())
	require.Equal(t, 0, idx.Size())

	other := geom.NewRect(geom.NewPoint(900, 900), 5, 5)
	require.True(t, mustInsert(t, idx, other))
	require.True(t, idx.Contains(other))
	require.False(t, idx.Contains(r))
}

func TestIndex_ClearResetsToEmpty(t *testing.T) {
	idx := quadtree.New[int, geom.Rect[int]]()
	mustInsert(t, idx, geom.NewRect(geom.NewPoint(0, 0), 1, 1))
	mustInsert(t, idx, geom.NewRect(geom.NewPoint(500, 500), 20, 20))

	idx.Clear()
	require.True(t, idx.Empty())
	require.Equal(t, 0, idx.Size())
	require.False(t, idx.Contains(geom.NewRect(geom.NewPoint(0, 0), 1, 1)))
}

func TestIndex_GrowsUpForOutOfBoundsKeys(t *testing.T) {
	idx := quadtree.New[int, geom.Rect[int]]()
	small := geom.NewRect(geom.NewPoint(1, 1), 1, 1)
	far := geom.NewRect(geom.NewPoint(100000, 100000), 10, 10)

	mustInsert(t, idx, small)
	mustInsert(t, idx, far)

	require.True(t, idx.Contains(small))
	require.True(t, idx.Contains(far))

	var found []geom.Rect[int]
	idx.Query(geom.NewRect(geom.NewPoint(99990, 99990), 20, 20), func(r geom.Rect[int]) {
		found = append(found, r)
	})
	require.ElementsMatch(t, []geom.Rect[int]{far}, found)
}

func TestIndex_WithStrictBoundsRejectsNegativeKeys(t *testing.T) {
	idx := quadtree.New[int, geom.Rect[int]](quadtree.WithStrictBounds[int, geom.Rect[int]]())

	inBounds := geom.NewRect(geom.NewPoint(1, 1), 5, 5)
	ok, err := idx.Insert(inBounds)
	require.NoError(t, err)
	require.True(t, ok)

	outOfBounds := geom.NewRect(geom.NewPoint(-1, 1), 5, 5)
	ok, err = idx.Insert(outOfBounds)
	require.ErrorIs(t, err, quadtree.ErrOutOfBounds)
	require.False(t, ok)

	require.Equal(t, 1, idx.Size())
	require.False(t, idx.Contains(outOfBounds))
}

func TestIndex_WithoutStrictBoundsAcceptsNegativeKeys(t *testing.T) {
	idx := quadtree.New[int, geom.Rect[int]]()

	outOfBounds := geom.NewRect(geom.NewPoint(-5, -5), 5, 5)
	ok, err := idx.Insert(outOfBounds)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, idx.Contains(outOfBounds))
}

// bruteForceQuery is the reference oracle: every stored key intersecting q,
// found by brute-force scan rather than tree traversal.
func bruteForceQuery(all []geom.Rect[int], q geom.Rect[int]) []geom.Rect[int] {
	var out []geom.Rect[int]
	for _, r := range all {
		if geom.BoxesIntersect[int](q, r) {
			out = append(out, r)
		}
	}
	return out
}

func TestIndex_RandomizedQueryMatchesOracle(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	idx := quadtree.New[int, geom.Rect[int]]()

	var inserted []geom.Rect[int]
	seen := map[geom.Rect[int]]bool{}
	for len(inserted) < 200 {
		r := geom.NewRect(
			geom.NewPoint(rnd.Intn(1000), rnd.Intn(1000)),
			rnd.Intn(50)+1,
			rnd.Intn(50)+1,
		)
		if seen[r] {
			continue
		}
		seen[r] = true
		inserted = append(inserted, r)
		require.True(t, mustInsert(t, idx, r))
	}
	require.Equal(t, len(inserted), idx.Size())

	for i := 0; i < 20; i++ {
		q := geom.NewRect(
			geom.NewPoint(rnd.Intn(1000), rnd.Intn(1000)),
			rnd.Intn(100)+1,
			rnd.Intn(100)+1,
		)
		want := bruteForceQuery(inserted, q)

		var got []geom.Rect[int]
		idx.Query(q, func(r geom.Rect[int]) {
			got = append(got, r)
		})
		require.ElementsMatch(t, want, got, "query %v", q)
	}

	for _, r := range inserted[:50] {
		require.True(t, idx.Remove(r))
	}
	require.Equal(t, len(inserted)-50, idx.Size())
	for _, r := range inserted[:50] {
		require.False(t, idx.Contains(r))
	}
	for _, r := range inserted[50:] {
		require.True(t, idx.Contains(r))
	}
}
