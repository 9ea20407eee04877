package quadtree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ArgishtiAyvazyan/geometry/geom"
	"github.com/ArgishtiAyvazyan/geometry/quadtree"
)

// gridOracle is a uniform-grid spatial hash: every inserted rect is filed
// under every fixed-size cell it overlaps, and a query visits the union of
// cells it overlaps, deduplicating by index. It shares no code and no
// structural idea with the quadtree under test (no recursive subdivision, no
// split lines, no arena) so an agreement between the two is evidence the
// quadtree's routing and query logic are correct, not a blind spot shared by
// one implementation's own self-tests.
type gridOracle struct {
	cellSize int
	buckets  map[[2]int][]int
	rects    []geom.Rect[int]
}

func newGridOracle(cellSize int) *gridOracle {
	return &gridOracle{cellSize: cellSize, buckets: map[[2]int][]int{}}
}

func (g *gridOracle) cellRange(r geom.Rect[int]) (minCX, minCY, maxCX, maxCY int) {
	bl := geom.BottomLeft[int](r)
	tr := geom.TopRight[int](r)
	return bl.X / g.cellSize, bl.Y / g.cellSize, tr.X / g.cellSize, tr.Y / g.cellSize
}

func (g *gridOracle) Insert(r geom.Rect[int]) {
	idx := len(g.rects)
	g.rects = append(g.rects, r)
	minCX, minCY, maxCX, maxCY := g.cellRange(r)
	for cx := minCX; cx <= maxCX; cx++ {
		for cy := minCY; cy <= maxCY; cy++ {
			cell := [2]int{cx, cy}
			g.buckets[cell] = append(g.buckets[cell], idx)
		}
	}
}

func (g *gridOracle) Query(q geom.Rect[int]) []geom.Rect[int] {
	minCX, minCY, maxCX, maxCY := g.cellRange(q)
	seen := map[int]bool{}
	var out []geom.Rect[int]
	for cx := minCX; cx <= maxCX; cx++ {
		for cy := minCY; cy <= maxCY; cy++ {
			for _, idx := range g.buckets[[2]int{cx, cy}] {
				if seen[idx] {
					continue
				}
				seen[idx] = true
				r := g.rects[idx]
				if geom.BoxesIntersect[int](q, r) {
					out = append(out, r)
				}
			}
		}
	}
	return out
}

// TestIndex_AgreesWithIndependentOracle cross-checks the quadtree's query
// results against the grid oracle built from the same data: any
// disagreement is a bug in one of the two, not a shared blind spot.
func TestIndex_AgreesWithIndependentOracle(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	idx := quadtree.New[int, geom.Rect[int]]()
	oracle := newGridOracle(64)

	for i := 0; i < 150; i++ {
		r := geom.NewRect(geom.NewPoint(rnd.Intn(1000), rnd.Intn(1000)), rnd.Intn(40)+1, rnd.Intn(40)+1)
		_, err := idx.Insert(r)
		require.NoError(t, err)
		oracle.Insert(r)
	}

	for i := 0; i < 25; i++ {
		q := geom.NewRect(geom.NewPoint(rnd.Intn(1000), rnd.Intn(1000)), rnd.Intn(80)+1, rnd.Intn(80)+1)

		var fromQuadtree []geom.Rect[int]
		idx.Query(q, func(r geom.Rect[int]) {
			fromQuadtree = append(fromQuadtree, r)
		})

		fromOracle := oracle.Query(q)

		require.ElementsMatch(t, fromOracle, fromQuadtree, "query %v", q)
	}
}
