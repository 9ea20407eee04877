package quadtree

import (
	"sort"

	"github.com/ArgishtiAyvazyan/geometry/geom"
)

// key is the constraint a quadtree's stored values must satisfy: the box
// capability (so the tree can compute regions and test intersection) plus a
// total order (so a node's value set can be kept sorted).
type key[C Number, K any] interface {
	geom.Box[C]
	Less(K) bool
}

// orderedSet is a sorted slice searched and mutated with sort.Search,
// rather than a tree or hash table — the same flat, cache-friendly shape
// as a C++ boost::container::flat_set. Duplicate insertion (by
// Less-equivalence) is a no-op, matching set semantics.
type orderedSet[K any] struct {
	values []K
}

func (s *orderedSet[K]) search(v K, less func(K, K) bool) (int, bool) {
	i := sort.Search(len(s.values), func(i int) bool {
		return !less(s.values[i], v)
	})
	if i < len(s.values) && !less(v, s.values[i]) {
		return i, true
	}
	return i, false
}

// insert adds v to the set if not already present, reporting whether it was
// newly inserted.
func (s *orderedSet[K]) insert(v K, less func(K, K) bool) bool {
	i, found := s.search(v, less)
	if found {
		return false
	}
	s.values = append(s.values, v)
	copy(s.values[i+1:], s.values[i:])
	s.values[i] = v
	return true
}

// erase removes v from the set if present, reporting whether it was removed.
func (s *orderedSet[K]) erase(v K, less func(K, K) bool) bool {
	i, found := s.search(v, less)
	if !found {
		return false
	}
	s.values = append(s.values[:i], s.values[i+1:]...)
	return true
}

// contains reports whether v is a member of the set.
func (s *orderedSet[K]) contains(v K, less func(K, K) bool) bool {
	_, found := s.search(v, less)
	return found
}

func (s *orderedSet[K]) empty() bool { return len(s.values) == 0 }
