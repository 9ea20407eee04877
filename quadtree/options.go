package quadtree

import "github.com/ArgishtiAyvazyan/geometry/log"

// Option configures an Index at construction time via the functional-options
// pattern.
type Option[C Number, K key[C, K]] func(*Index[C, K])

// WithLogger attaches a logger that receives debug traces of grow-up,
// grow-down, and insertion events. The default is a no-op logger.
func WithLogger[C Number, K key[C, K]](logger log.Logger) Option[C, K] {
	return func(idx *Index[C, K]) {
		idx.logger = logger
	}
}

// WithStrictBounds makes Insert reject, with ErrOutOfBounds, any key whose
// position or extent falls outside the positive quadrant (negative X/Y, or
// negative width/height) instead of silently routing it into the tree. Off
// by default: an index with no strict bounds check accepts such a key, but
// its origin-anchored root does not grow to cover a corner outside the
// positive quadrant; the key is stored at the node its routing reaches.
func WithStrictBounds[C Number, K key[C, K]]() Option[C, K] {
	return func(idx *Index[C, K]) {
		idx.strictBounds = true
	}
}
