package raster

import (
	"errors"
	"testing"

	"github.com/smoothtype/grays/internal/outline"
)

func newTestRaster(t *testing.T, capacity int) *Raster {
	t.Helper()
	pool, err := NewPoolWithCapacity(capacity)
	if err != nil {
		t.Fatalf("NewPoolWithCapacity: %v", err)
	}
	return New(pool)
}

func unitSquare() *outline.Outline {
	return &outline.Outline{
		Points:   []outline.Point{{X: 0, Y: 0}, {X: 64, Y: 0}, {X: 64, Y: 64}, {X: 0, Y: 64}},
		Tags:     []outline.Tag{outline.TagOnCurve, outline.TagOnCurve, outline.TagOnCurve, outline.TagOnCurve},
		Contours: []int{3},
	}
}

// TestRenderUnitSquare: a single-pixel square on a 4x4 clip should
// produce exactly one fully-covered span at (0,0).
func TestRenderUnitSquare(t *testing.T) {
	r := newTestRaster(t, 64)
	var got []Span
	var gotY []int
	err := r.Render(unitSquare(), 4, 4, func(y int, spans []Span) error {
		gotY = append(gotY, y)
		got = append(got, spans...)
		return nil
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("spans = %+v, want exactly one", got)
	}
	if got[0] != (Span{X: 0, Len: 1, Coverage: 255}) {
		t.Errorf("span = %+v, want {X:0 Len:1 Coverage:255}", got[0])
	}
	if gotY[0] != 0 {
		t.Errorf("scanline = %d, want 0", gotY[0])
	}
}

// TestRenderTranslatedSquareUsesAbsoluteCoordinates checks that a unit
// square positioned away from the origin emits a span at its own absolute
// pixel position, not at (0,0): cells are stored clip-relative internally
// but the span callback must see bitmap-absolute coordinates so
// a caller indexing one shared target buffer doesn't need to know the
// clip window's origin.
func TestRenderTranslatedSquareUsesAbsoluteCoordinates(t *testing.T) {
	r := newTestRaster(t, 64)
	o := &outline.Outline{
		Points:   []outline.Point{{X: 128, Y: 192}, {X: 192, Y: 192}, {X: 192, Y: 256}, {X: 128, Y: 256}},
		Tags:     []outline.Tag{outline.TagOnCurve, outline.TagOnCurve, outline.TagOnCurve, outline.TagOnCurve},
		Contours: []int{3},
	}
	var got []Span
	var gotY []int
	err := r.Render(o, 8, 8, func(y int, spans []Span) error {
		gotY = append(gotY, y)
		got = append(got, spans...)
		return nil
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("spans = %+v, want exactly one", got)
	}
	if got[0] != (Span{X: 2, Len: 1, Coverage: 255}) {
		t.Errorf("span = %+v, want {X:2 Len:1 Coverage:255}", got[0])
	}
	if gotY[0] != 3 {
		t.Errorf("scanline = %d, want 3", gotY[0])
	}
}

func TestRenderEmptyOutlineEmitsNoSpans(t *testing.T) {
	r := newTestRaster(t, 64)
	o := &outline.Outline{}
	called := false
	if err := r.Render(o, 4, 4, func(int, []Span) error { called = true; return nil }); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if called {
		t.Error("empty outline should not invoke the span callback")
	}
}

func TestRenderOutlineOutsideClipEmitsNoSpans(t *testing.T) {
	r := newTestRaster(t, 64)
	o := &outline.Outline{
		Points:   []outline.Point{{X: 1000, Y: 1000}, {X: 1064, Y: 1000}, {X: 1064, Y: 1064}, {X: 1000, Y: 1064}},
		Tags:     []outline.Tag{outline.TagOnCurve, outline.TagOnCurve, outline.TagOnCurve, outline.TagOnCurve},
		Contours: []int{3},
	}
	called := false
	if err := r.Render(o, 4, 4, func(int, []Span) error { called = true; return nil }); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if called {
		t.Error("an outline entirely outside the clip should emit no spans")
	}
}

func TestRenderInvalidOutline(t *testing.T) {
	r := newTestRaster(t, 64)
	o := &outline.Outline{
		Points:   []outline.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 20}},
		Tags:     []outline.Tag{outline.TagCubic, outline.TagCubic, outline.TagOnCurve},
		Contours: []int{2},
	}
	if err := r.Render(o, 4, 4, func(int, []Span) error { return nil }); !errors.Is(err, outline.ErrInvalidOutline) {
		t.Errorf("Render with cubic-start contour: got %v, want ErrInvalidOutline", err)
	}
}

// TestRenderPoolOverflow: a pool too small for the outline's cells must
// report overflow rather than truncate silently.
//
// NewPoolWithCapacity rounds up to MinPoolBytes (4 KiB), which already
// holds 128 Cells, so a small requested capacity alone won't provoke an
// overflow: the outline below is a 100x200-pixel axis-aligned rectangle,
// whose grid-aligned left and right edges record exactly two cells per
// row (the same pattern as the unit-square scenario) for 400 cells total,
// comfortably past the floor.
func TestRenderPoolOverflow(t *testing.T) {
	pool, err := NewPoolWithCapacity(1)
	if err != nil {
		t.Fatalf("NewPoolWithCapacity: %v", err)
	}
	r := New(pool)

	o := &outline.Outline{
		Points: []outline.Point{
			{X: 0, Y: 0}, {X: 6400, Y: 0}, {X: 6400, Y: 12800}, {X: 0, Y: 12800},
		},
		Tags:     []outline.Tag{outline.TagOnCurve, outline.TagOnCurve, outline.TagOnCurve, outline.TagOnCurve},
		Contours: []int{3},
	}
	if err := r.Render(o, 256, 256, func(int, []Span) error { return nil }); err != ErrPoolOverflow {
		t.Errorf("Render with a 100x200-pixel rectangle on an undersized pool: got %v, want ErrPoolOverflow", err)
	}
}

func TestRenderRejectsBadParameters(t *testing.T) {
	r := newTestRaster(t, 64)
	o := unitSquare()

	if err := r.Render(o, 0, 4, func(int, []Span) error { return nil }); err != ErrBadParameter {
		t.Errorf("zero width: got %v, want ErrBadParameter", err)
	}
	if err := r.Render(o, 4, 4, nil); err != ErrBadParameter {
		t.Errorf("nil callback: got %v, want ErrBadParameter", err)
	}
}

func TestRenderUninitializedRaster(t *testing.T) {
	r := &Raster{}
	if err := r.Render(unitSquare(), 4, 4, func(int, []Span) error { return nil }); err != ErrUninitializedPool {
		t.Errorf("Render on a Raster with no bound pool: got %v, want ErrUninitializedPool", err)
	}
}
