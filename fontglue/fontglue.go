// Package fontglue adapts outlines already produced by an upstream
// glyph loader into the outline.Outline this module's rasterizer
// consumes. Nothing in this package parses a font file; it only walks
// structures a real parsing library has already built.
package fontglue

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/golang/freetype/truetype"

	"github.com/smoothtype/grays/internal/outline"
)

// FromTrueType adapts an already-loaded github.com/golang/freetype/truetype
// GlyphBuf into an outline.Outline. g.Points carries the point
// coordinates and a per-point on/off-curve flag (bit 0 of Flags); g.Ends
// holds one-past-the-last point index per contour, so End[i]-1 becomes
// this module's inclusive contour-end index.
func FromTrueType(g *truetype.GlyphBuf) outline.Outline {
	points := make([]outline.Point, len(g.Points))
	tags := make([]outline.Tag, len(g.Points))
	for i, p := range g.Points {
		points[i] = outline.Point{X: int32(p.X), Y: int32(p.Y)}
		if p.Flags&1 != 0 {
			tags[i] = outline.TagOnCurve
		} else {
			tags[i] = outline.TagConic
		}
	}

	contours := make([]int, len(g.Ends))
	for i, end := range g.Ends {
		contours[i] = end - 1
	}

	return outline.Outline{Points: points, Tags: tags, Contours: contours}
}

// FromSFNT walks the segments golang.org/x/image/font/sfnt already decoded
// for one glyph and rebuilds them as an outline.Outline. sfnt reports
// quadratic and cubic arcs directly (no implied off-curve points to
// reconstruct), so each QuadTo/CubicTo segment becomes one conic or cubic
// arc's worth of control points plus its terminating on-curve point.
func FromSFNT(segs sfnt.Segments) outline.Outline {
	var points []outline.Point
	var tags []outline.Tag
	var contours []int

	toPoint := func(p fixed.Point26_6) outline.Point {
		return outline.Point{X: int32(p.X), Y: int32(p.Y)}
	}

	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if len(points) > 0 {
				contours = append(contours, len(points)-1)
			}
			points = append(points, toPoint(seg.Args[0]))
			tags = append(tags, outline.TagOnCurve)
		case sfnt.SegmentOpLineTo:
			points = append(points, toPoint(seg.Args[0]))
			tags = append(tags, outline.TagOnCurve)
		case sfnt.SegmentOpQuadTo:
			points = append(points, toPoint(seg.Args[0]), toPoint(seg.Args[1]))
			tags = append(tags, outline.TagConic, outline.TagOnCurve)
		case sfnt.SegmentOpCubeTo:
			points = append(points, toPoint(seg.Args[0]), toPoint(seg.Args[1]), toPoint(seg.Args[2]))
			tags = append(tags, outline.TagCubic, outline.TagCubic, outline.TagOnCurve)
		}
	}
	if len(points) > 0 {
		contours = append(contours, len(points)-1)
	}

	return outline.Outline{Points: points, Tags: tags, Contours: contours}
}
