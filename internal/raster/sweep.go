package raster

import "github.com/smoothtype/grays/internal/basics"

// Span is a run of adjacent pixels on one scanline sharing a single
// coverage byte. addSpan enforces the Len <= 255 invariant by splitting
// any longer run before it ever reaches a Span value.
type Span struct {
	X, Len   int
	Coverage uint8
}

// SpanFunc receives one scanline's worth of spans at a time, in batches
// of at most spanBatchSize. Batches arrive in strictly increasing
// scanline order, and within one scanline in strictly increasing x. A
// callback that can fail (a full output buffer, a cancelled write) is
// the common case for a real caller, so SpanFunc returns an error;
// Render aborts and propagates whatever it returns.
type SpanFunc func(y int, spans []Span) error

// sweepCells performs the single emission pass over cells, which must
// already be sorted by (Y, X). Cell.X/Cell.Y are stored relative to the
// clip window's origin to keep cell values small and pool-compact;
// sweepCells does all of its column bookkeeping in that same relative
// frame and only translates back to absolute bitmap coordinates at the
// moment a span is handed to addSpan, so a caller's SpanFunc can index
// its target buffer directly without knowing the clip window's origin.
//
// spanX tracks the column up to which this scanline's coverage has been
// accounted for. A cell with nonzero area consumes its own column (spanX
// advances past it) before the gap-fill check runs; a cover-only cell
// (area == 0, the common case for an edge sitting exactly on a pixel
// boundary) does not, so the very next gap-fill naturally starts at that
// cell's own column instead of skipping it. The in-cell span and the
// flat span are jointly exhaustive over the row, never both and never
// neither.
func (r *Raster) sweepCells(cells []Cell) error {
	countEX := r.maxEX - r.minEX
	n := len(cells)
	i := 0
	for i < n {
		y := cells[i].Y
		absY := y + r.minEY
		cover := 0
		spanX := 0

		j := i
		for j < n && cells[j].Y == y {
			x := cells[j].X
			area := cells[j].Area
			cover += cells[j].Cover

			k := j + 1
			for k < n && cells[k].Y == y && cells[k].X == x {
				area += cells[k].Area
				cover += cells[k].Cover
				k++
			}

			spanX = x
			if area != 0 {
				if spanX >= 0 {
					raw := cover*2*basics.OnePixel - area
					if err := r.addSpan(absY, r.minEX+spanX, 1, coverageFromRaw(raw, r.fillRule)); err != nil {
						return err
					}
				}
				spanX++
			}

			hasNext := k < n && cells[k].Y == y
			if hasNext && cover != 0 && cells[k].X > spanX {
				if err := r.addClippedSpan(absY, spanX, cells[k].X, coverageFromRaw(cover*2*basics.OnePixel, r.fillRule)); err != nil {
					return err
				}
			}

			j = k
		}

		if cover != 0 && spanX < countEX {
			if err := r.addClippedSpan(absY, spanX, countEX, coverageFromRaw(cover*2*basics.OnePixel, r.fillRule)); err != nil {
				return err
			}
		}

		i = j
	}
	return r.flushSpans()
}

// addClippedSpan emits [from, to) in the relative column frame, after
// clamping from to 0 (it may still be the sentinel column -1), translating
// both ends to absolute bitmap columns before handing off to addSpan.
func (r *Raster) addClippedSpan(absY, from, to int, coverage uint8) error {
	if from < 0 {
		from = 0
	}
	if to <= from {
		return nil
	}
	return r.addSpan(absY, r.minEX+from, to-from, coverage)
}

// coverageFromRaw rescales a raw area/cover product into the 0..255
// byte range, branching on fill rule. Non-zero winding saturates;
// even-odd wraps modulo 512 and folds the upper half back to zero.
func coverageFromRaw(raw int, rule basics.FillingRule) uint8 {
	c := raw >> basics.CoverageShift
	c = basics.Abs(c)
	if rule == basics.FillEvenOdd {
		c = c % 512
		if c > 256 {
			c = 0
		} else if c == 256 {
			c = 255
		}
		return uint8(c)
	}
	if c > basics.MaxCoverage {
		c = basics.MaxCoverage
	}
	return uint8(c)
}

// addSpan queues a span for emission, splitting runs longer than 255
// pixels and flushing the batch on a scanline change. Fully transparent
// runs are dropped here rather than delivered: an even-odd fill's
// doubly-wound interior sweeps to coverage zero, and emitting it would
// hand the callback spans that paint nothing.
func (r *Raster) addSpan(y, x, length int, coverage uint8) error {
	if length <= 0 || coverage == 0 {
		return nil
	}
	if y != r.spanY {
		if err := r.flushSpans(); err != nil {
			return err
		}
		r.spanY = y
	}
	for length > 0 {
		chunk := length
		if chunk > 255 {
			chunk = 255
		}
		if err := r.pushSpan(x, chunk, coverage); err != nil {
			return err
		}
		x += chunk
		length -= chunk
	}
	return nil
}

// pushSpan appends one span to the batch, merging it into the previous
// span in place when they are contiguous and share a coverage value.
func (r *Raster) pushSpan(x, length int, coverage uint8) error {
	if r.numSpans > 0 {
		last := &r.spans[r.numSpans-1]
		if last.Coverage == coverage && last.X+last.Len == x && last.Len+length <= 255 {
			last.Len += length
			return nil
		}
	}
	if r.numSpans == spanBatchSize {
		if err := r.flushSpans(); err != nil {
			return err
		}
	}
	r.spans[r.numSpans] = Span{X: x, Len: length, Coverage: coverage}
	r.numSpans++
	return nil
}

// flushSpans delivers the current batch to the caller's SpanFunc and
// resets it. Called on every scanline change, on batch overflow, and
// after the last cell.
func (r *Raster) flushSpans() error {
	if r.numSpans == 0 {
		return nil
	}
	err := r.emit(r.spanY, r.spans[:r.numSpans])
	r.numSpans = 0
	return err
}
