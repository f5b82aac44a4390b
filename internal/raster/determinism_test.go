package raster

import (
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/smoothtype/grays/internal/outline"
)

// quickClip is large enough to hold every rectangle testRect.Generate can
// produce, plus the largest shift pixelShift.Generate can produce, without
// ever touching the clip boundary, so none of the properties below need to
// reason about clipping.
const quickClip = 64

// testRect is a small axis-aligned rectangle, font-unit-aligned to a pixel
// grid (64 units/pixel) so its swept coverage is always exactly 0 or 255
// per cell, with no Bézier or sub-pixel rounding to account for.
type testRect struct {
	x0, y0, w, h int32
}

// Generate implements quick.Generator, keeping every field within a range
// that leaves comfortable room for pixelShift's largest shift inside
// quickClip.
func (testRect) Generate(rnd *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(testRect{
		x0: int32(rnd.Intn(10)) * 64,
		y0: int32(rnd.Intn(10)) * 64,
		w:  int32(1+rnd.Intn(10)) * 64,
		h:  int32(1+rnd.Intn(10)) * 64,
	})
}

func (r testRect) outline() *outline.Outline {
	x0, y0, x1, y1 := r.x0, r.y0, r.x0+r.w, r.y0+r.h
	return &outline.Outline{
		Points:   []outline.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}},
		Tags:     []outline.Tag{outline.TagOnCurve, outline.TagOnCurve, outline.TagOnCurve, outline.TagOnCurve},
		Contours: []int{3},
	}
}

// reversedOutline walks the same four corners in the opposite order,
// flipping the contour's winding direction.
func (r testRect) reversedOutline() *outline.Outline {
	x0, y0, x1, y1 := r.x0, r.y0, r.x0+r.w, r.y0+r.h
	return &outline.Outline{
		Points:   []outline.Point{{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}},
		Tags:     []outline.Tag{outline.TagOnCurve, outline.TagOnCurve, outline.TagOnCurve, outline.TagOnCurve},
		Contours: []int{3},
	}
}

// pixelShift is a non-negative whole-pixel translation, generated small
// enough that testRect.Generate's widest rectangle plus the shift still
// fits inside quickClip.
type pixelShift int32

func (pixelShift) Generate(rnd *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(pixelShift(rnd.Intn(10)))
}

func (s pixelShift) translate(r testRect) testRect {
	return testRect{x0: r.x0 + int32(s)*64, y0: r.y0 + int32(s)*64, w: r.w, h: r.h}
}

// scanline is one captured SpanFunc invocation, copied out of the
// callback's slice (which Render is free to reuse across calls).
type scanline struct {
	Y     int
	Spans []Span
}

func renderScanlines(t *testing.T, o *outline.Outline) []scanline {
	t.Helper()
	r := newTestRaster(t, 4096)
	var rows []scanline
	err := r.Render(o, quickClip, quickClip, func(y int, spans []Span) error {
		cp := make([]Span, len(spans))
		copy(cp, spans)
		rows = append(rows, scanline{Y: y, Spans: cp})
		return nil
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return rows
}

// TestRenderIsDeterministic checks that rendering the same outline at
// the same clip produces byte-identical span sequences: this core has no
// floating point and no map iteration in its hot path, so two renders of
// the same input must agree exactly, not just approximately.
func TestRenderIsDeterministic(t *testing.T) {
	prop := func(r testRect) bool {
		first := renderScanlines(t, r.outline())
		second := renderScanlines(t, r.outline())
		return reflect.DeepEqual(first, second)
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Error(err)
	}
}

// TestRenderTranslationShiftsSpansByWholePixels checks that translating
// the outline by a whole number of pixels shifts every emitted span by
// exactly that pixel offset, with coverage values untouched.
func TestRenderTranslationShiftsSpansByWholePixels(t *testing.T) {
	prop := func(r testRect, shift pixelShift) bool {
		base := renderScanlines(t, r.outline())
		moved := renderScanlines(t, shift.translate(r).outline())

		if len(base) != len(moved) {
			return false
		}
		for i := range base {
			if moved[i].Y != base[i].Y+int(shift) {
				return false
			}
			if len(moved[i].Spans) != len(base[i].Spans) {
				return false
			}
			for j := range base[i].Spans {
				want := base[i].Spans[j]
				want.X += int(shift)
				if moved[i].Spans[j] != want {
					return false
				}
			}
		}
		return true
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Error(err)
	}
}

// TestRenderReversedContourProducesSameCoverage checks that reversing a
// contour's point order produces the same coverage for a simple
// (non-self-intersecting) rectangle. coverageFromRaw takes the absolute
// value of the raw area/cover product (sweep.go), so a single simple
// contour needs no reverse-fill flag for this to hold: reversing point
// order only negates every cell's area and cover together, which Abs()
// cancels out identically.
func TestRenderReversedContourProducesSameCoverage(t *testing.T) {
	prop := func(r testRect) bool {
		forward := renderScanlines(t, r.outline())
		reversed := renderScanlines(t, r.reversedOutline())
		return reflect.DeepEqual(forward, reversed)
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Error(err)
	}
}
