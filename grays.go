// Package grays provides an analytic anti-aliased scan converter for
// TrueType/CFF/Type1-style outlines: mixed lines and quadratic/cubic
// Beziers in, horizontal gray coverage spans out. The algorithm is the
// exact-coverage cell accumulation scheme popularized by FreeType's gray
// rasterizer: no sampling, no floating point, deterministic output.
//
// The package is a public, dependency-light facade (this file, bitmap.go)
// over focused internal packages that do the real work:
//
//   - internal/outline - the read-only contour data model and decomposer
//   - internal/raster  - the cell generator, sorter, and sweeper
//
// Basic usage:
//
//	pool, _ := grays.NewPool(make([]byte, 16*1024))
//	r := grays.New(pool)
//	bmp := grays.NewBitmap(64, 64)
//	err := r.Render(outlineFromUpstream, bmp.Width(), bmp.Height(), bmp.SpanFunc(), grays.Params{})
package grays

import (
	"github.com/smoothtype/grays/internal/outline"
	"github.com/smoothtype/grays/internal/raster"
)

// Sentinel errors returned across this package's boundary.
var (
	ErrInvalidOutline     = outline.ErrInvalidOutline
	ErrPoolOverflow       = raster.ErrPoolOverflow
	ErrUninitializedPool  = raster.ErrUninitializedPool
	ErrBadParameter       = raster.ErrBadParameter
	ErrInvalidGlyphFormat = outline.ErrInvalidOutline
)

// Outline, Point, and Tag re-export the contour data model so callers
// never need to import internal/outline directly.
type (
	Outline = outline.Outline
	Point   = outline.Point
	Tag     = outline.Tag
)

// Outline point tags.
const (
	TagOnCurve = outline.TagOnCurve
	TagConic   = outline.TagConic
	TagCubic   = outline.TagCubic
)

// Outline flags. Only EvenOddFill changes rasterization
// behavior; the rest are passed through for an upstream hinter's benefit.
const (
	EvenOddFill    = outline.EvenOddFill
	ReverseFill    = outline.ReverseFill
	IgnoreDropouts = outline.IgnoreDropouts
	HighPrecision  = outline.HighPrecision
	SinglePass     = outline.SinglePass
)

// Span and SpanFunc are the sweep's output contract.
type (
	Span     = raster.Span
	SpanFunc = raster.SpanFunc
)

// Pool is the bounded cell arena a Raster renders into.
type Pool = raster.Pool

// NewPool binds buf, at least MinPoolBytes long, as a Raster's backing
// cell storage.
func NewPool(buf []byte) (*Pool, error) { return raster.NewPool(buf) }

// NewPoolWithCapacity allocates a Pool sized for capacity cells.
func NewPoolWithCapacity(capacity int) (*Pool, error) {
	return raster.NewPoolWithCapacity(capacity)
}

// MinPoolBytes is the smallest arena NewPool will accept.
const MinPoolBytes = raster.MinPoolBytes

// Params configures a single Render call.
// The zero value renders anti-aliased; the fill rule comes from the
// outline's Flags (non-zero winding unless EvenOddFill is set).
type Params struct {
	// Direct, when true, skips span batching/merging and delivers each
	// swept run to the callback as soon as it is produced. The default
	// (false) batches up to 32 spans per callback invocation, per the
	// SpanFunc contract.
	//
	// Direct mode is not yet implemented by internal/raster; Render
	// returns ErrBadParameter if it is requested. It is kept here as a
	// stable field so callers can opt in once it lands.
	Direct bool
}

// Raster performs one outline's worth of cell generation, sorting, and
// sweeping per Render call. It is not safe for concurrent use;
// distinct Rasters bound to distinct Pools may run on separate goroutines.
type Raster struct {
	r *raster.Raster
}

// New binds pool as r's backing arena.
func New(pool *Pool) *Raster {
	return &Raster{r: raster.New(pool)}
}

// Reset rebinds pool, discarding any state left over from a prior render.
func (r *Raster) Reset(pool *Pool) { r.r.Reset(pool) }

// Render decomposes, flattens, scan-converts, sorts, and sweeps o, clipped
// to [0, width) x [0, height), delivering coverage spans through emit.
// Render does not touch any bitmap buffer itself; Bitmap's
// SpanFunc is the usual way to turn spans into pixels.
func (r *Raster) Render(o *Outline, width, height int, emit SpanFunc, params Params) error {
	if params.Direct {
		return ErrBadParameter
	}
	return r.r.Render(o, width, height, emit)
}
