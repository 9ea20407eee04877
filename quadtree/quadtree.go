// Package quadtree implements a region quadtree spatial index over
// axis-aligned boxes. Unlike a classic fixed-depth quadtree, this one grows
// both upward (replacing the root with a larger one when a new key does not
// fit) and downward (materializing child nodes lazily as keys are inserted),
// so it needs no a-priori bound on the coordinate space.
//
// A value descends from the root into the quadrant its position falls in
// until it reaches a node whose horizontal or vertical split line it
// straddles (or a unit-sized node); it is stored at that node instead of
// being pushed further down.
package quadtree

import (
	"math"
	"math/bits"

	"github.com/ArgishtiAyvazyan/geometry/geom"
	"github.com/ArgishtiAyvazyan/geometry/log"
)

// Number is the coordinate type constraint shared with package geom.
type Number = geom.Number

// zOrderPos is the quadrant a key falls in relative to a node's center.
type zOrderPos int

const (
	leftTop zOrderPos = iota
	leftBottom
	rightTop
	rightBottom
)

// node is one arena slot. Children are indices into Index.nodes; -1 marks an
// absent child.
type node[C Number, K key[C, K]] struct {
	region   geom.Square[C]
	children [4]int
	values   orderedSet[K]
}

func newNode[C Number, K key[C, K]](region geom.Square[C]) node[C, K] {
	return node[C, K]{region: region, children: [4]int{-1, -1, -1, -1}}
}

// empty reports whether the node holds no values and has no children,
// i.e. it contributes nothing and can be dropped.
func (n *node[C, K]) empty() bool {
	if !n.values.empty() {
		return false
	}
	for _, c := range n.children {
		if c != -1 {
			return false
		}
	}
	return true
}

// Index is a quadtree spatial index over keys of type K. Build one with New;
// the zero value is not ready to use.
type Index[C Number, K key[C, K]] struct {
	nodes        []node[C, K]
	rootIndex    int
	size         int
	logger       log.Logger
	less         func(K, K) bool
	strictBounds bool
}

// New builds an empty Index, applying any given Options.
func New[C Number, K key[C, K]](opts ...Option[C, K]) *Index[C, K] {
	idx := &Index[C, K]{
		rootIndex: -1,
		logger:    log.NewNoop(),
		less:      func(a, b K) bool { return a.Less(b) },
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Size returns the number of keys currently stored.
func (t *Index[C, K]) Size() int { return t.size }

// Empty reports whether the index holds no keys.
func (t *Index[C, K]) Empty() bool { return t.size == 0 }

// Clear discards every stored key and the entire node arena.
func (t *Index[C, K]) Clear() {
	t.nodes = nil
	t.rootIndex = -1
	t.size = 0
}

// Insert adds key to the index, growing the tree upward and downward as
// needed, and reports whether key was newly inserted (false if an
// Less-equivalent key was already present). If the index was built with
// WithStrictBounds and key falls outside the positive quadrant, Insert
// leaves the index unchanged and returns ErrOutOfBounds instead.
func (t *Index[C, K]) Insert(k K) (bool, error) {
	if t.strictBounds && outOfBounds(k) {
		return false, ErrOutOfBounds
	}

	if t.rootIndex == -1 {
		t.createRoot(k)
	}

	t.growUpIfNeeded(k)

	n := t.growDownIfNeededAndReturnLastNode(k)
	inserted := t.nodes[n].values.insert(k, t.less)
	if inserted {
		t.size++
		t.logger.Debug("quadtree: inserted key", log.Int("node", n))
	}
	return inserted, nil
}

// outOfBounds reports whether k's position or extent falls outside the
// positive quadrant.
func outOfBounds[C Number, K key[C, K]](k K) bool {
	pos := k.Pos()
	return pos.X < 0 || pos.Y < 0 || k.Width() < 0 || k.Height() < 0
}

// Remove deletes key from the index, reporting whether it was present. A
// node left empty by the removal (no values, no children) is dropped from
// its parent, and the same check repeats up the chain toward the root.
func (t *Index[C, K]) Remove(k K) bool {
	if t.rootIndex == -1 {
		return false
	}
	chain := t.findNodeChain(k)
	if len(chain) == 0 {
		return false
	}
	last := chain[len(chain)-1]
	if !t.nodes[last].values.erase(k, t.less) {
		return false
	}
	t.size--

	t.pruneEmptyChain(chain)
	return true
}

// Contains reports whether key is present in the index.
func (t *Index[C, K]) Contains(k K) bool {
	if t.rootIndex == -1 {
		return false
	}
	chain := t.findNodeChain(k)
	if len(chain) == 0 {
		return false
	}
	last := chain[len(chain)-1]
	return t.nodes[last].values.contains(k, t.less)
}

// Query calls visit once for every stored key intersecting q, in depth-first
// traversal order. Query never mutates the index and is safe to call
// concurrently with other Query calls.
func (t *Index[C, K]) Query(q geom.Box[C], visit func(K)) {
	if t.rootIndex == -1 {
		return
	}
	stack := []int{t.rootIndex}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[i]
		if !geom.BoxesIntersect[C](q, n.region) {
			continue
		}
		for _, c := range n.children {
			if c != -1 {
				stack = append(stack, c)
			}
		}
		for _, v := range n.values.values {
			if geom.BoxesIntersect[C](q, v) {
				visit(v)
			}
		}
	}
}

// createRoot builds the first root: a square rooted at the origin whose size
// is the smallest power of two strictly greater than key's largest top-right
// coordinate.
func (t *Index[C, K]) createRoot(k K) {
	tr := geom.TopRight[C](k)
	largest := tr.X
	if tr.Y > largest {
		largest = tr.Y
	}
	size := nextPowerOfTwo(largest)
	t.nodes = append(t.nodes, newNode[C, K](geom.NewSquare(geom.Point[C]{}, size)))
	t.rootIndex = 0
}

// growUpIfNeeded replaces the root with a doubled-size root, with the old
// root hanging off its bottom-left child, until key's region fits inside. A
// key with a corner outside the positive quadrant can never fit an
// origin-anchored root, so the root is left as it is for such a key.
func (t *Index[C, K]) growUpIfNeeded(k K) {
	bl, tr := geom.BottomLeft[C](k), geom.TopRight[C](k)
	if min(bl.X, bl.Y, tr.X, tr.Y) < 0 {
		return
	}
	for !geom.BoxContainsBox[C](t.nodes[t.rootIndex].region, k) {
		newSize := t.nodes[t.rootIndex].region.Size() * 2
		newRoot := newNode[C, K](geom.NewSquare(geom.Point[C]{}, newSize))
		t.nodes = append(t.nodes, newRoot)
		newRootIndex := len(t.nodes) - 1
		t.nodes[newRootIndex].children[leftBottom] = t.rootIndex
		t.rootIndex = newRootIndex
		t.logger.Debug("quadtree: grew up", log.Int("size", int(float64(newSize))))
	}
}

// growDownIfNeededAndReturnLastNode descends from the root, materializing
// child nodes as needed, stopping at the first node whose split lines key
// straddles (or whose region is already minimal), and returns that node's
// arena index.
func (t *Index[C, K]) growDownIfNeededAndReturnLastNode(k K) int {
	current := t.rootIndex
	for !(hasIntersectionWithRegionSplitLines[C](k, t.nodes[current].region) || t.nodes[current].region.Size() == 1) {
		pos := zOrderPosOf[C](t.nodes[current].region, k)
		child := t.nodes[current].children[pos]
		if child == -1 {
			childRegion := makeChildRegion[C](t.nodes[current].region, pos)
			t.nodes = append(t.nodes, newNode[C, K](childRegion))
			child = len(t.nodes) - 1
			t.nodes[current].children[pos] = child
			t.logger.Debug("quadtree: grew down", log.Int("child", child))
		}
		current = child
	}
	return current
}

// findNodeChain returns the chain of arena indices from the root down to the
// node that would hold key, or nil if no such node exists.
func (t *Index[C, K]) findNodeChain(k K) []int {
	chain := []int{t.rootIndex}
	current := t.rootIndex
	for !(hasIntersectionWithRegionSplitLines[C](k, t.nodes[current].region) || t.nodes[current].region.Size() == 1) {
		pos := zOrderPosOf[C](t.nodes[current].region, k)
		child := t.nodes[current].children[pos]
		if child == -1 {
			return nil
		}
		current = child
		chain = append(chain, current)
	}
	return chain
}

// pruneEmptyChain drops the deepest node in chain if it is now empty,
// detaching it from its parent, and repeats up the chain. If the root
// itself ends up empty, the index resets to the empty state New returns so
// the next Insert starts a fresh root rather than growing from a stale one.
func (t *Index[C, K]) pruneEmptyChain(chain []int) {
	for i := len(chain) - 1; i > 0; i-- {
		if !t.nodes[chain[i]].empty() {
			return
		}
		parent := chain[i-1]
		for pos, c := range t.nodes[parent].children {
			if c == chain[i] {
				t.nodes[parent].children[pos] = -1
			}
		}
	}
	if t.nodes[chain[0]].empty() {
		t.nodes = nil
		t.rootIndex = -1
	}
}

func getRectMiddleX[C Number](r geom.Square[C]) C {
	return r.Pos().X + r.Size()/2
}

func getRectMiddleY[C Number](r geom.Square[C]) C {
	return r.Pos().Y + r.Size()/2
}

// hasIntersectionWithRegionSplitLines reports whether k straddles region's
// horizontal or vertical bisector — the condition that pins k to region
// rather than pushing it into a child.
func hasIntersectionWithRegionSplitLines[C Number, K key[C, K]](k K, region geom.Square[C]) bool {
	midX := getRectMiddleX(region)
	midY := getRectMiddleY(region)
	pos := k.Pos()
	return (pos.X <= midX && midX <= pos.X+k.Width()) ||
		(pos.Y <= midY && midY <= pos.Y+k.Height())
}

// zOrderPosOf returns which quadrant of region key's position falls in.
func zOrderPosOf[C Number, K key[C, K]](region geom.Square[C], k K) zOrderPos {
	midX := getRectMiddleX(region)
	midY := getRectMiddleY(region)
	pos := k.Pos()
	if pos.X < midX {
		if pos.Y > midY {
			return leftTop
		}
		return leftBottom
	}
	if pos.Y > midY {
		return rightTop
	}
	return rightBottom
}

// makeChildRegion computes the region of region's child at pos.
func makeChildRegion[C Number](region geom.Square[C], pos zOrderPos) geom.Square[C] {
	midX := getRectMiddleX(region)
	midY := getRectMiddleY(region)
	size := C(math.Round(float64(region.Size()) / 2.0))

	switch pos {
	case leftTop:
		return geom.NewSquare(geom.Point[C]{X: region.Pos().X, Y: midY}, size)
	case leftBottom:
		return geom.NewSquare(region.Pos(), size)
	case rightTop:
		return geom.NewSquare(geom.Point[C]{X: midX, Y: midY}, size)
	default: // rightBottom
		return geom.NewSquare(geom.Point[C]{X: midX, Y: region.Pos().Y}, size)
	}
}

// nextPowerOfTwo returns the smallest power of two strictly greater than v,
// or 1 if v is 0.
func nextPowerOfTwo[C Number](v C) C {
	f := float64(v)
	if f <= 0 {
		return 1
	}
	shift := bits.Len64(uint64(f))
	return C(math.Exp2(float64(shift)))
}
