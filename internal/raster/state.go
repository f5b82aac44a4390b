// Package raster is the cell generator, sorter, and sweeper at the core
// of the scan converter. It consumes decomposed and flattened line
// segments and produces sorted, swept coverage spans.
package raster

import (
	"github.com/smoothtype/grays/internal/basics"
	"github.com/smoothtype/grays/internal/outline"
)

// Raster is one scan-conversion run's mutable state. It is borrowed
// mutably for the duration of a single Render call; concurrent renders on
// the same Raster are forbidden, though distinct Rasters with distinct
// Pools may run on separate goroutines.
type Raster struct {
	pool *Pool

	minEX, maxEX, minEY, maxEY int

	x, y int // pen position, subpixel units

	curEX, curEY int
	area, cover  int
	invalid      bool

	conicStack [bezStackDepth]conicArc
	cubicStack [bezStackDepth]cubicArc

	spanY    int
	spans    [spanBatchSize]Span
	numSpans int
	fillRule basics.FillingRule
	emit     SpanFunc
}

const spanBatchSize = 32

// New binds pool as this Raster's backing arena.
func New(pool *Pool) *Raster {
	return &Raster{pool: pool}
}

// Reset rebinds pool, discarding any state left over from a prior
// render.
func (r *Raster) Reset(pool *Pool) {
	*r = Raster{pool: pool}
}

// resetForRender clears the per-call state without touching the pool
// binding, ready for a fresh Render on the same bound pool.
func (r *Raster) resetForRender(minEX, maxEX, minEY, maxEY int, fillRule basics.FillingRule, emit SpanFunc) {
	r.pool.Reset()
	r.minEX, r.maxEX, r.minEY, r.maxEY = minEX, maxEX, minEY, maxEY
	r.x, r.y = 0, 0
	r.curEX, r.curEY = minEX-2, minEY-2 // guaranteed to differ from any real first cell
	r.area, r.cover = 0, 0
	r.invalid = true
	r.spanY = 0
	r.numSpans = 0
	r.fillRule = fillRule
	r.emit = emit
}

// setCell moves the "current cell" pointer to (ex, ey), committing the
// cell being left if its position or validity is about to change.
func (r *Raster) setCell(ex, ey int) error {
	// Cells strictly left of the clip window collapse onto the sentinel
	// column so their cover still reaches the leftmost visible column
	// during the sweep.
	if ex < r.minEX {
		ex = r.minEX - 1
	}

	invalid := ey < r.minEY || ey >= r.maxEY || ex >= r.maxEX

	if ex != r.curEX || ey != r.curEY || invalid != r.invalid {
		if err := r.recordCell(); err != nil {
			return err
		}
	}

	r.curEX, r.curEY = ex, ey
	r.invalid = invalid
	return nil
}

// recordCell commits the live accumulators to the pool if the current
// cell is valid and non-empty, then zeroes them.
func (r *Raster) recordCell() error {
	if !r.invalid && (r.area != 0 || r.cover != 0) {
		if !r.pool.Append(Cell{
			X:     r.curEX - r.minEX,
			Y:     r.curEY - r.minEY,
			Area:  r.area,
			Cover: r.cover,
		}) {
			return ErrPoolOverflow
		}
	}
	r.area, r.cover = 0, 0
	return nil
}

// finish flushes the last active cell. The final segment of the final
// contour never triggers a cell transition of its own, so without this
// the last cell's accumulators would be silently dropped.
func (r *Raster) finish() error {
	return r.recordCell()
}

// MoveTo implements outline.Sink: start a new contour at p.
func (r *Raster) MoveTo(p outline.Point) error {
	x, y := int(p.X), int(p.Y)
	if err := r.setCell(basics.Pixel(x), basics.Pixel(y)); err != nil {
		return err
	}
	r.x, r.y = x, y
	return nil
}

// LineTo implements outline.Sink.
func (r *Raster) LineTo(p outline.Point) error {
	return r.renderLine(int(p.X), int(p.Y))
}
