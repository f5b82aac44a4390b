package raster

import "unsafe"

// Cell is the fundamental unit of coverage storage. X and Y are pixel
// coordinates relative to the clipped bounding box origin; Area holds the
// signed trapezoidal integral of the segment fragments crossing the cell,
// Cover their signed vertical traversal.
//
// Fields are plain int, not int32: the per-cell accumulators top out at
// 2*OnePixel² per full crossing, far under 32-bit overflow, and plain int
// keeps the hot-path arithmetic free of width conversions.
type Cell struct {
	X, Y        int
	Area, Cover int
}

// cellSize sizes a Pool's cell capacity from a byte count.
var cellSize = int(unsafe.Sizeof(Cell{}))
