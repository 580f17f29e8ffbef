package polyline

import (
	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/lathe"
)

// Proximity thresholds for hit-testing, in distance units of the drawing.
var (
	PointTolerance   = 5.0 // hit on a control point
	SegmentTolerance = 2.5 // hit on the curve body
)

// Hit is the result of a containment query. Index is the control point
// hit, or -1 if the curve body was hit (or nothing at all).
type Hit struct {
	Success bool
	Index   int
}

// Miss is the result of a failed containment query.
var Miss = Hit{Success: false, Index: -1}

// BodyHit is the result of a hit on the curve body.
var BodyHit = Hit{Success: true, Index: -1}

// Contains checks if p is on or near the polyline. Points are tested
// first, in index order, and the first one near p wins. Only if no point
// matches, segments are tested.
func (pl *Polyline) Contains(p lathe.Pair) Hit {
	if h := PointHit(pl.points, p); h.Success {
		return h
	}
	return segmentHit(pl.points, p)
}

// PointHit returns a hit for the first of points within PointTolerance
// of p.
func PointHit(points []lathe.Pair, p lathe.Pair) Hit {
	for i, pt := range points {
		if pt.Near(p, PointTolerance) {
			return Hit{Success: true, Index: i}
		}
	}
	return Miss
}

// segmentHit projects p onto every segment. The fragment of the segment is
// estimated by the distance of p from the segment start, relative to the
// segment length; fragments beyond the segment end are skipped.
func segmentHit(points []lathe.Pair, p lathe.Pair) Hit {
	for i := 1; i < len(points); i++ {
		p1, p2 := points[i-1], points[i]
		direction := p2 - p1
		l := direction.Length()
		if lathe.Is0(l) {
			continue
		}
		fragment := (p1 - p).Length() / l
		if fragment > 1 {
			continue
		}
		if (p1 + direction.Scaled(fragment)).Near(p, SegmentTolerance) {
			tracer().Debugf("hit segment %d at fragment %.4g", i, fragment)
			return BodyHit
		}
	}
	return Miss
}

// MayContain is a quick test: could a containment query for p succeed for
// a curve with bounding box bbox? It is false if p is farther away from the
// box than tolerance in either direction.
func MayContain(bbox polyclip.Rectangle, p lathe.Pair, tolerance float64) bool {
	query := polyclip.Rectangle{
		Min: polyclip.Point{X: p.X() - tolerance, Y: p.Y() - tolerance},
		Max: polyclip.Point{X: p.X() + tolerance, Y: p.Y() + tolerance},
	}
	return bbox.Overlaps(query)
}
