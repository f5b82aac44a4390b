// Package basics holds the small constants and integer helpers shared by
// the outline decomposer and the cell rasterizer. It has no dependents
// outside this module and carries no state.
package basics

// PixelBits is the number of fractional bits of the subpixel grid the
// cell generator walks: 7, i.e. 128 subpixels per pixel. The sweep's
// coverage-to-alpha shift in CoverageShift below is derived from it
// directly, so changing it means re-deriving that too.
const (
	PixelBits  = 7
	OnePixel   = 1 << PixelBits
	PixelMask  = OnePixel - 1
	PixelShift = PixelBits
)

// CoverageShift converts a raw (2*OnePixel²-scaled) area accumulator into
// the 0..256 range the sweep maps to alpha: a fully covered cell's raw
// area 2*OnePixel² shifts to exactly 256.
const CoverageShift = 2*PixelBits + 1 - 8

// MaxCoverage is the saturating ceiling applied to non-zero-rule coverage
// before it is narrowed to a byte.
const MaxCoverage = 255

// Pixel returns the pixel column/row containing subpixel coordinate x,
// i.e. x >> PixelBits, with correct floor behavior for negative x.
func Pixel(x int) int { return x >> PixelBits }

// Frac returns the subpixel offset of x within its pixel cell.
func Frac(x int) int { return x & PixelMask }

// Subpixels upscales an integer pixel coordinate to subpixel units.
func Subpixels(p int) int { return p << PixelBits }

// FillingRule selects how a signed winding/area value is mapped to
// coverage.
type FillingRule int

const (
	FillNonZero FillingRule = iota
	FillEvenOdd
)

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// FloorDiv returns a/b rounded towards negative infinity, with the
// remainder normalized to be non-negative. The Bresenham-style grid walk
// in internal/raster relies on this: Go's '/' and '%' truncate towards
// zero, which would push the cell geometry off by one on negative
// slopes.
func FloorDiv(a, b int) (q, r int) {
	q = a / b
	r = a % b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}
