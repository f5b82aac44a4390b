package grays

import "testing"

func TestRenderIntoBitmap(t *testing.T) {
	pool, err := NewPoolWithCapacity(64)
	if err != nil {
		t.Fatalf("NewPoolWithCapacity: %v", err)
	}
	r := New(pool)

	o := &Outline{
		Points:   []Point{{X: 0, Y: 0}, {X: 64, Y: 0}, {X: 64, Y: 64}, {X: 0, Y: 64}},
		Tags:     []Tag{TagOnCurve, TagOnCurve, TagOnCurve, TagOnCurve},
		Contours: []int{3},
	}

	bmp := NewBitmap(4, 4)
	if err := r.Render(o, bmp.Width(), bmp.Height(), bmp.SpanFunc(), Params{}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := uint8(0)
			if x == 0 && y == 0 {
				want = 255
			}
			if got := bmp.At(x, y); got != want {
				t.Errorf("At(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestRenderDirectModeUnimplemented(t *testing.T) {
	pool, err := NewPoolWithCapacity(64)
	if err != nil {
		t.Fatalf("NewPoolWithCapacity: %v", err)
	}
	r := New(pool)
	o := &Outline{
		Points:   []Point{{X: 0, Y: 0}, {X: 64, Y: 0}, {X: 64, Y: 64}, {X: 0, Y: 64}},
		Tags:     []Tag{TagOnCurve, TagOnCurve, TagOnCurve, TagOnCurve},
		Contours: []int{3},
	}
	bmp := NewBitmap(4, 4)
	if err := r.Render(o, bmp.Width(), bmp.Height(), bmp.SpanFunc(), Params{Direct: true}); err != ErrBadParameter {
		t.Errorf("Render with Direct:true = %v, want ErrBadParameter", err)
	}
}
