package cubecoord

import "errors"

// Sentinel errors for the cubecoord package.
var (
	// Facelet parsing errors
	ErrMalformedInput = errors.New("cubecoord: malformed facelet string")
	ErrColorCount     = errors.New("cubecoord: each color must appear exactly 9 times")

	// Conversion errors
	ErrUnresolvableCorner = errors.New("cubecoord: corner colors match no corner piece")
	ErrUnresolvableEdge   = errors.New("cubecoord: edge colors match no edge piece")

	// Cubie state errors
	ErrUnresolved        = errors.New("cubecoord: cubie slot not resolved")
	ErrDuplicateCorner   = errors.New("cubecoord: corner piece appears more than once")
	ErrDuplicateEdge     = errors.New("cubecoord: edge piece appears more than once")
	ErrTwistParity       = errors.New("cubecoord: corner twist sum is not a multiple of 3")
	ErrFlipParity        = errors.New("cubecoord: edge flip sum is odd")
	ErrPermutationParity = errors.New("cubecoord: corner and edge permutation parities differ")

	// Notation errors
	ErrInvalidNotation = errors.New("cubecoord: invalid move notation")

	// Move table errors
	ErrCorruptCache = errors.New("cubecoord: corrupt move table cache")
	ErrCacheMiss    = errors.New("cubecoord: move table not cached")
	ErrCoordRange   = errors.New("cubecoord: coordinate out of range")
)
