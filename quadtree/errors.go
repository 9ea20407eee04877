package quadtree

import "errors"

// ErrOutOfBounds is returned by Insert, when WithStrictBounds is enabled,
// for a key whose position or extent falls outside the positive quadrant
// (negative X/Y, or negative width/height).
var ErrOutOfBounds = errors.New("quadtree: key out of contract bounds (negative coordinate or extent)")
