package raster

import (
	"github.com/smoothtype/grays/internal/basics"
	"github.com/smoothtype/grays/internal/outline"
)

// fontShift upscales the outline's nominal 26.6 font-unit coordinates
// (64 subpixels/pixel) onto this module's PixelBits=7 grid
// (128 subpixels/pixel).
const fontShift = basics.PixelBits - 6

// Render decomposes, flattens, scan-converts, sorts, and sweeps o,
// clipping to [0, width) x [0, height), and delivers the result through
// emit.
//
// Render does not touch any bitmap buffer itself, only emits spans;
// width and height exist purely to derive the clip window.
func (r *Raster) Render(o *outline.Outline, width, height int, emit SpanFunc) error {
	if r.pool == nil {
		return ErrUninitializedPool
	}
	if emit == nil || width <= 0 || height <= 0 {
		return ErrBadParameter
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if len(o.Points) == 0 || len(o.Contours) == 0 {
		return nil
	}

	minX, minY, maxX, maxY := controlBox(o)

	minEX := basics.Pixel(minX << fontShift)
	maxEX := basics.Pixel(maxX<<fontShift) + 1
	minEY := basics.Pixel(minY << fontShift)
	maxEY := basics.Pixel(maxY<<fontShift) + 1

	if minEX < 0 {
		minEX = 0
	}
	if minEY < 0 {
		minEY = 0
	}
	if maxEX > width {
		maxEX = width
	}
	if maxEY > height {
		maxEY = height
	}
	if minEX >= maxEX || minEY >= maxEY {
		return nil // control box misses the clip window entirely
	}

	fillRule := basics.FillNonZero
	if o.Flags&outline.EvenOddFill != 0 {
		fillRule = basics.FillEvenOdd
	}

	r.resetForRender(minEX, maxEX, minEY, maxEY, fillRule, emit)

	if err := outline.Decompose(o, r, fontShift, outline.Point{}); err != nil {
		return err
	}
	if err := r.finish(); err != nil {
		return err
	}

	cells := r.pool.Cells()
	shellSort(cells)
	return r.sweepCells(cells)
}

// controlBox returns the axis-aligned rectangle enclosing every point
// of o, including Bezier controls. Not a tight bounding box of the
// filled region, but sufficient to derive a safe clip window.
func controlBox(o *outline.Outline) (minX, minY, maxX, maxY int) {
	minX, minY = int(o.Points[0].X), int(o.Points[0].Y)
	maxX, maxY = minX, minY
	for _, p := range o.Points[1:] {
		x, y := int(p.X), int(p.Y)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return minX, minY, maxX, maxY
}
