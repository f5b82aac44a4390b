package main

import "github.com/smoothtype/grays"

// demoOutline is a hard-coded ring contour, expressed in 26.6 font
// units: an outer square with an inner square cut out via the even-odd
// rule. Supplied in-process rather than loaded from a font file. Shared
// by both the PNG and SDL2 demo mains.
func demoOutline() *grays.Outline {
	pt := func(x, y int32) grays.Point { return grays.Point{X: x, Y: y} }
	return &grays.Outline{
		Points: []grays.Point{
			// outer square, 0..640 font units
			pt(0, 0), pt(640, 0), pt(640, 640), pt(0, 640),
			// inner square hole, 160..480
			pt(160, 160), pt(480, 160), pt(480, 480), pt(160, 480),
		},
		Tags: []grays.Tag{
			grays.TagOnCurve, grays.TagOnCurve, grays.TagOnCurve, grays.TagOnCurve,
			grays.TagOnCurve, grays.TagOnCurve, grays.TagOnCurve, grays.TagOnCurve,
		},
		Contours: []int{3, 7},
		Flags:    grays.EvenOddFill,
	}
}
