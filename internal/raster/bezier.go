package raster

import (
	"math/bits"

	"github.com/smoothtype/grays/internal/outline"
)

// bezStackDepth bounds the non-recursive subdivision stack. The flatness
// error roughly halves per level, so 32 levels is always enough headroom
// for 32-bit coordinates.
const bezStackDepth = 32

// bpoint is a subpixel-space point used only by the flattener; it mirrors
// outline.Point but in plain int, since by this point coordinates have
// already been upscaled by Decompose's shift and we want headroom for the
// De Casteljau midpoint arithmetic without worrying about int32 width.
type bpoint struct{ X, Y int }

func bmid(a, b bpoint) bpoint {
	return bpoint{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

type conicArc struct {
	p0, c, p1 bpoint
	level     int
}

type cubicArc struct {
	p0, c1, c2, p1 bpoint
	level          int
}

// ceilLog2 returns the smallest k such that 2^k >= n, for n > 0; 0 for
// n <= 1. bits.Len(n-1) is floor(log2(n-1))+1, which equals that ceiling
// for every n >= 2, exact powers of two included.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	k := bits.Len(uint(n - 1))
	return k
}

// deviation is the L-infinity distance of control point c from the
// midpoint of the chord (p0, p1), doubled. The same metric serves the
// quadratic estimator and, applied to each control independently, the
// cubic one: it halves per midpoint subdivision, which is what the level
// computations count on.
func deviation(p0, c, p1 bpoint) int {
	dx := p0.X + p1.X - 2*c.X
	dy := p0.Y + p1.Y - 2*c.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dy > dx {
		return dy
	}
	return dx
}

func quadraticLevel(p0, c, p1 bpoint) int {
	level := 1 + ceilLog2(deviation(p0, c, p1)/64)
	if level < 1 {
		level = 1
	}
	return level
}

func cubicLevel(p0, c1, c2, p1 bpoint) int {
	l1 := ceilLog2(deviation(p0, c1, p1) / 64)
	l2 := ceilLog2(deviation(p0, c2, p1) / 64)
	level := l1
	if l2 > level {
		level = l2
	}
	level++
	if level < 1 {
		level = 1
	}
	return level
}

// ConicTo implements outline.Sink. The arc is flattened in place via
// non-recursive midpoint subdivision.
func (r *Raster) ConicTo(ctrl, p outline.Point) error {
	p0 := bpoint{r.x, r.y}
	c := bpoint{int(ctrl.X), int(ctrl.Y)}
	p1 := bpoint{int(p.X), int(p.Y)}

	r.conicStack[0] = conicArc{p0: p0, c: c, p1: p1, level: quadraticLevel(p0, c, p1)}
	sp := 0

	for sp >= 0 {
		arc := r.conicStack[sp]
		if arc.level <= 1 || sp == bezStackDepth-1 {
			if err := r.renderLine(arc.p1.X, arc.p1.Y); err != nil {
				return err
			}
			sp--
			continue
		}

		mid01 := bmid(arc.p0, arc.c)
		mid12 := bmid(arc.c, arc.p1)
		midmid := bmid(mid01, mid12)

		r.conicStack[sp] = conicArc{p0: midmid, c: mid12, p1: arc.p1, level: arc.level - 1}
		sp++
		r.conicStack[sp] = conicArc{p0: arc.p0, c: mid01, p1: midmid, level: arc.level - 1}
	}
	return nil
}

// CubicTo implements outline.Sink.
func (r *Raster) CubicTo(ctrl1, ctrl2, p outline.Point) error {
	p0 := bpoint{r.x, r.y}
	c1 := bpoint{int(ctrl1.X), int(ctrl1.Y)}
	c2 := bpoint{int(ctrl2.X), int(ctrl2.Y)}
	p1 := bpoint{int(p.X), int(p.Y)}

	r.cubicStack[0] = cubicArc{p0: p0, c1: c1, c2: c2, p1: p1, level: cubicLevel(p0, c1, c2, p1)}
	sp := 0

	for sp >= 0 {
		arc := r.cubicStack[sp]
		if arc.level <= 1 || sp == bezStackDepth-1 {
			if err := r.renderLine(arc.p1.X, arc.p1.Y); err != nil {
				return err
			}
			sp--
			continue
		}

		mid01 := bmid(arc.p0, arc.c1)
		mid12 := bmid(arc.c1, arc.c2)
		mid23 := bmid(arc.c2, arc.p1)
		midA := bmid(mid01, mid12)
		midC := bmid(mid12, mid23)
		midmid := bmid(midA, midC)

		r.cubicStack[sp] = cubicArc{p0: midmid, c1: midC, c2: mid23, p1: arc.p1, level: arc.level - 1}
		sp++
		r.cubicStack[sp] = cubicArc{p0: arc.p0, c1: mid01, c2: midA, p1: midmid, level: arc.level - 1}
	}
	return nil
}
