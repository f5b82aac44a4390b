package outline

// Sink receives the four decomposition events. Each method returns the
// first error that should abort decomposition; Decompose propagates it
// to its caller unchanged.
type Sink interface {
	MoveTo(p Point) error
	LineTo(p Point) error
	ConicTo(ctrl, p Point) error
	CubicTo(ctrl1, ctrl2, p Point) error
}

type phase int

const (
	phasePoint  phase = iota // previous point was on-curve
	phaseConic               // previous point was a conic (quadratic) control
	phaseCubic               // previous point was the first of a cubic pair
	phaseCubic2              // previous two points were both cubic controls
)

// Decompose walks every contour of o, emitting move/line/conic/cubic
// events to sink. shift and delta implement the per-emitter coordinate
// transform (raw << shift) - delta; pass shift=0, delta={0,0} for a
// pass-through.
//
// Decompose does not call o.Validate itself; callers that skip validation
// still get ErrInvalidOutline from here for any grammar violation the walk
// actually encounters, and for contour ends that are not strictly
// increasing or that index past the last point. A last contour end that
// stops short of the last point is only caught by Validate.
func Decompose(o *Outline, sink Sink, shift int, delta Point) error {
	transform := func(p Point) Point {
		return Point{(p.X << shift) - delta.X, (p.Y << shift) - delta.Y}
	}

	first := 0
	for _, last := range o.Contours {
		if first > last || last >= len(o.Points) {
			return ErrInvalidOutline
		}
		if err := decomposeContour(o, sink, first, last, transform); err != nil {
			return err
		}
		first = last + 1
	}
	return nil
}

func decomposeContour(o *Outline, sink Sink, first, last int, transform func(Point) Point) error {
	vFirst := o.Points[first]
	vLast := o.Points[last]
	vStart := vFirst
	vControl := vFirst
	var vControl2 Point

	startKind := o.Tags[first].Kind()
	if startKind == TagCubic {
		return ErrInvalidOutline
	}

	ph := phasePoint
	if startKind == TagConic {
		if o.Tags[last].Kind() == TagOnCurve {
			vStart = vLast
		} else {
			vStart = Mid(vStart, vLast)
		}
		ph = phaseConic
	}

	if err := sink.MoveTo(transform(vStart)); err != nil {
		return err
	}

	for index := first; index < last; index++ {
		p := o.Points[index+1]
		tag := o.Tags[index+1].Kind()

		switch ph {
		case phasePoint: // previous point was on-curve
			switch tag {
			case TagOnCurve:
				if err := sink.LineTo(transform(p)); err != nil {
					return err
				}
			case TagConic:
				vControl = p
				ph = phaseConic
			default: // cubic
				vControl = p
				ph = phaseCubic
			}

		case phaseConic: // previous point was a conic control
			switch tag {
			case TagOnCurve:
				if err := sink.ConicTo(transform(vControl), transform(p)); err != nil {
					return err
				}
				ph = phasePoint
			case TagConic:
				mid := Mid(vControl, p)
				if err := sink.ConicTo(transform(vControl), transform(mid)); err != nil {
					return err
				}
				vControl = p
			default:
				return ErrInvalidOutline
			}

		case phaseCubic: // previous point was the first cubic control
			if tag != TagCubic {
				return ErrInvalidOutline
			}
			vControl2 = p
			ph = phaseCubic2

		case phaseCubic2: // previous two points were cubic controls
			if tag != TagOnCurve {
				return ErrInvalidOutline
			}
			if err := sink.CubicTo(transform(vControl), transform(vControl2), transform(p)); err != nil {
				return err
			}
			ph = phasePoint
		}
	}

	// Close the contour back to its start vertex.
	switch ph {
	case phasePoint:
		if startKind == TagOnCurve {
			return sink.LineTo(transform(vFirst))
		}
		return nil

	case phaseConic:
		return sink.ConicTo(transform(vControl), transform(vStart))

	case phaseCubic2:
		if startKind != TagOnCurve {
			return ErrInvalidOutline
		}
		return sink.CubicTo(transform(vControl), transform(vControl2), transform(vFirst))

	default: // phaseCubic: a contour cannot end expecting a second cubic control
		return ErrInvalidOutline
	}
}
