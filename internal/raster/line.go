package raster

import "github.com/smoothtype/grays/internal/basics"

// renderLine walks the straight segment from the current pen position to
// (toX, toY), both in subpixel units, updating cell accumulators along
// the way.
func (r *Raster) renderLine(toX, toY int) error {
	ey1 := basics.Pixel(r.y)
	ey2 := basics.Pixel(toY)

	if ey1 == ey2 {
		if err := r.renderScanline(ey1, r.x, basics.Frac(r.y), toX, basics.Frac(toY)); err != nil {
			return err
		}
		r.x, r.y = toX, toY
		return nil
	}

	dx := toX - r.x
	dy := toY - r.y

	var first, incr int
	if dy > 0 {
		first, incr = basics.OnePixel, 1
	} else {
		first, incr = 0, -1
		dy = -dy
	}

	fy1 := basics.Frac(r.y)
	p := (first - fy1) * dx
	if incr < 0 {
		p = -p
	}
	delta, mod := basics.FloorDiv(p, dy)

	x1 := r.x + delta
	if err := r.renderScanline(ey1, r.x, fy1, x1, first); err != nil {
		return err
	}
	ey1 += incr
	// Explicit transition to the next row's cell: without this, the row's
	// accumulated total would only be committed lazily by the next
	// renderScanline call's own setCell, by which point that call has
	// already added the next row's delta to the same bucket.
	if err := r.setCell(basics.Pixel(x1), ey1); err != nil {
		return err
	}

	if ey1 != ey2 {
		lift, rem := basics.FloorDiv(basics.OnePixel*dx, dy)
		mod -= dy

		for ey1 != ey2 {
			delta = lift
			mod += rem
			if mod >= 0 {
				mod -= dy
				delta++
			}

			x2 := x1 + delta
			if err := r.renderScanline(ey1, x1, basics.OnePixel-first, x2, first); err != nil {
				return err
			}
			x1 = x2
			ey1 += incr
			if err := r.setCell(basics.Pixel(x1), ey1); err != nil {
				return err
			}
		}
	}

	if err := r.renderScanline(ey1, x1, basics.OnePixel-first, toX, basics.Frac(toY)); err != nil {
		return err
	}

	r.x, r.y = toX, toY
	return nil
}

// renderScanline walks the portion of a segment confined to pixel row
// ey, from (x1, y1) to (x2, y2), where y1 and y2 are the fractional
// vertical positions within that row. Their difference is the only thing
// that matters, so callers may pass the row's top/bottom edge (0 or
// OnePixel) for a mid-traversal call.
func (r *Raster) renderScanline(ey, x1, y1, x2, y2 int) error {
	ex1 := basics.Pixel(x1)
	ex2 := basics.Pixel(x2)

	if y1 == y2 {
		return r.setCell(ex2, ey)
	}

	fx1 := basics.Frac(x1)
	fx2 := basics.Frac(x2)

	if ex1 == ex2 {
		dy := y2 - y1
		r.area += (fx1 + fx2) * dy
		r.cover += dy
		return r.setCell(ex1, ey)
	}

	dx := x2 - x1
	dy := y2 - y1

	var first, incr int
	if dx > 0 {
		first, incr = basics.OnePixel, 1
	} else {
		first, incr = 0, -1
		dx = -dx
	}

	p := (first - fx1) * dy
	if incr < 0 {
		p = -p
	}
	delta, mod := basics.FloorDiv(p, dx)

	r.area += (fx1 + first) * delta
	r.cover += delta
	ex1 += incr
	if err := r.setCell(ex1, ey); err != nil {
		return err
	}
	y1 += delta

	if ex1 != ex2 {
		lift, rem := basics.FloorDiv(basics.OnePixel*dy, dx)
		mod -= dx

		for ex1 != ex2 {
			delta = lift
			mod += rem
			if mod >= 0 {
				mod -= dx
				delta++
			}

			r.area += basics.OnePixel * delta
			r.cover += delta
			y1 += delta
			ex1 += incr
			if err := r.setCell(ex1, ey); err != nil {
				return err
			}
		}
	}

	dy = y2 - y1
	r.area += (fx2 + basics.OnePixel - first) * dy
	r.cover += dy

	return nil
}
