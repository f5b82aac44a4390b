// Package outline holds the read-only outline data model and the contour
// decomposer that turns it into move/line/conic/cubic events. Nothing
// here touches pixels; that is internal/raster's job.
package outline

import "fmt"

// Point is a 2-D vector in the font's fixed-point coordinate system,
// nominally 26.6 (integer font units scaled by 64).
type Point struct {
	X, Y int32
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Mid returns the midpoint of p and q with integer (a+b)/2 rounding
// (truncating towards zero on odd sums), not a rounded average. The
// decomposer and flattener both rely on this exact rule: rendering the
// same outline twice must produce byte-identical output.
func Mid(p, q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// Tag classifies a single outline point. Bits 0-1 carry the
// on-curve/conic/cubic classification; bits 3-4 are reserved for an
// external hinter and are never interpreted here. Tag only ever looks at
// TagKindMask when deciding how to decompose a contour.
type Tag uint8

const (
	TagOnCurve   Tag = 0
	TagConic     Tag = 1
	TagCubic     Tag = 2
	tagReserved  Tag = 3
	TagKindMask  Tag = 0x03
	TagHintBits1 Tag = 1 << 3
	TagHintBits2 Tag = 1 << 4
)

// Kind masks off the hinter-reserved bits, returning one of TagOnCurve,
// TagConic, TagCubic, or the reserved value 3 (which is always invalid in a
// well-formed outline).
func (t Tag) Kind() Tag { return t & TagKindMask }

// Flags recognized on an Outline. Only EvenOddFill alters
// decomposition/rasterization behavior; the rest are hints carried
// through for a caller's benefit (hinter, dropout control) and ignored by
// this module.
type Flags uint32

const (
	EvenOddFill    Flags = 1 << 1
	ReverseFill    Flags = 1 << 2
	IgnoreDropouts Flags = 1 << 3
	HighPrecision  Flags = 1 << 8
	SinglePass     Flags = 1 << 9
)

// Outline is a read-only, caller-owned contour set. Nothing in this
// module mutates Points, Tags, or Contours; coordinate transforms are
// applied by the decomposer on the fly (see Decompose's shift/delta
// parameters) instead of rescaling the point array in place.
type Outline struct {
	Points   []Point
	Tags     []Tag
	Contours []int // end-of-contour point indices, strictly increasing
	Flags    Flags
}

// NContours and NPoints report the contour and point counts. The slice
// lengths already carry this, but callers translating from a C-style
// FT_Outline (n_contours, n_points as separate int16 fields) can use
// these to validate their input before constructing an Outline.
func (o *Outline) NContours() int { return len(o.Contours) }
func (o *Outline) NPoints() int   { return len(o.Points) }

// Validate checks the structural invariants decomposition depends on:
// there must be one tag per point; contour end indices must be strictly
// increasing, and the last one must cover every point; no contour may
// start with a cubic off-curve control point. An outline with no points
// or no contours is empty and passes.
func (o *Outline) Validate() error {
	if len(o.Points) != len(o.Tags) {
		return fmt.Errorf("outline: %d points but %d tags", len(o.Points), len(o.Tags))
	}
	if len(o.Points) == 0 || len(o.Contours) == 0 {
		return nil
	}
	if o.Contours[len(o.Contours)-1] != len(o.Points)-1 {
		return fmt.Errorf("%w: last contour end %d != n_points-1 (%d)",
			ErrInvalidOutline, o.Contours[len(o.Contours)-1], len(o.Points)-1)
	}
	prev := -1
	for _, end := range o.Contours {
		if end <= prev {
			return fmt.Errorf("%w: contour ends not strictly increasing", ErrInvalidOutline)
		}
		prev = end
	}
	first := 0
	for _, end := range o.Contours {
		if o.Tags[first].Kind() == TagCubic {
			return fmt.Errorf("%w: contour starting at point %d begins with a cubic control", ErrInvalidOutline, first)
		}
		first = end + 1
	}
	return nil
}
