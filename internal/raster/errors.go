package raster

import "errors"

// Sentinels returned across the internal/raster boundary.
var (
	// ErrPoolOverflow is returned the moment a cell write would exceed
	// the pool's capacity. Overflow is never silent: a caller that sees
	// this rebinds a larger pool and re-renders, rather than discovering
	// a truncated fill after the fact.
	ErrPoolOverflow = errors.New("raster: cell pool overflow")

	// ErrUninitializedPool is returned by NewPool when given fewer bytes
	// than the minimum arena size, or zero cell capacity.
	ErrUninitializedPool = errors.New("raster: pool smaller than minimum size")

	// ErrBadParameter is returned for malformed render parameters (an
	// empty or inverted clip box, a nil span callback, etc).
	ErrBadParameter = errors.New("raster: bad parameter")
)

// MinPoolBytes is the smallest arena NewPool will accept.
const MinPoolBytes = 4096
