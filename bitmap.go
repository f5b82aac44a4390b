package grays

// Bitmap is a single-channel, 8-bit coverage buffer. It owns its own
// storage as one flat Data slice plus width/height rather than a
// [][]byte of rows, and applies spans delivered by a Raster directly
// into it.
type Bitmap struct {
	Data          []uint8
	width, height int
	stride        int
}

// NewBitmap allocates a width x height bitmap, all pixels initially zero
// (uncovered).
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		Data:   make([]uint8, width*height),
		width:  width,
		height: height,
		stride: width,
	}
}

// Width and Height report the bitmap's pixel dimensions.
func (b *Bitmap) Width() int  { return b.width }
func (b *Bitmap) Height() int { return b.height }

// At returns the coverage byte at (x, y), or 0 if out of bounds.
func (b *Bitmap) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0
	}
	return b.Data[y*b.stride+x]
}

// Clear resets every pixel to zero.
func (b *Bitmap) Clear() {
	for i := range b.Data {
		b.Data[i] = 0
	}
}

// SpanFunc returns a SpanFunc that writes swept coverage bytes directly
// into b's buffer, overwriting whatever was there. Coverage lands
// unchanged, 0..255; callers that want blending or gamma supply their
// own callback instead.
func (b *Bitmap) SpanFunc() SpanFunc {
	return func(y int, spans []Span) error {
		if y < 0 || y >= b.height {
			return nil
		}
		row := b.Data[y*b.stride : y*b.stride+b.width]
		for _, s := range spans {
			x, length := s.X, s.Len
			if x < 0 {
				length += x
				x = 0
			}
			if x+length > b.width {
				length = b.width - x
			}
			if length <= 0 {
				continue
			}
			chunk := row[x : x+length]
			for i := range chunk {
				chunk[i] = s.Coverage
			}
		}
		return nil
	}
}
