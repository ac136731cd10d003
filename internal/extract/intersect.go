package extract

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/streetlab/roadnet/internal/network"
)

const (
	// parallelEpsilon bounds the intersection denominator below which two
	// segments are treated as parallel or collinear.
	parallelEpsilon = 1e-10

	// connectTolerance is the endpoint-to-junction distance, in pixels,
	// within which a segment counts as connected to an intersection.
	connectTolerance = 10.0
)

// findIntersections computes all pairwise intersections among the given
// segments and classifies each junction.
//
// With fewer than two segments there is nothing to intersect and the
// result is empty; that is a normal outcome, not an error.
//
// Each intersecting pair produces its own Intersection record: a physical
// junction where N segments meet appears as C(N,2) records whose connected-
// segment sets overlap. Records are not deduplicated by location, and
// downstream consumers rely on that cardinality.
func findIntersections(segments []network.RoadSegment) []network.Intersection {
	if len(segments) < 2 {
		return nil
	}

	var intersections []network.Intersection
	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			point, ok := segmentIntersection(
				vec(segments[i].Start), vec(segments[i].End),
				vec(segments[j].Start), vec(segments[j].End),
			)
			if !ok {
				continue
			}

			connected := connectedSegments(point, segments)
			intersections = append(intersections, network.Intersection{
				ID:                fmt.Sprintf("intersection_%d", len(intersections)),
				Center:            network.Point{X: point.X, Y: point.Y},
				Type:              classifyJunction(connected),
				ConnectedSegments: connected,
			})
		}
	}
	return intersections
}

// segmentIntersection returns the intersection point of two finite line
// segments (p1,p2) and (p3,p4), solving the parametric equations for
// scalars t and u along each segment. An intersection exists only when
// both t and u lie in [0,1]. A denominator within parallelEpsilon of zero
// means the segments are parallel or collinear and no point is reported.
func segmentIntersection(p1, p2, p3, p4 r2.Vec) (r2.Vec, bool) {
	denom := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if math.Abs(denom) < parallelEpsilon {
		return r2.Vec{}, false
	}

	t := ((p1.X-p3.X)*(p3.Y-p4.Y) - (p1.Y-p3.Y)*(p3.X-p4.X)) / denom
	u := -((p1.X-p2.X)*(p1.Y-p3.Y) - (p1.Y-p2.Y)*(p1.X-p3.X)) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return r2.Vec{}, false
	}
	return r2.Add(p1, r2.Scale(t, r2.Sub(p2, p1))), true
}

// connectedSegments returns the IDs of segments with an endpoint within
// connectTolerance of the given point. A flat linear scan over segment
// endpoints is deliberate at this input scale; a spatial index would have
// to preserve this exact distance predicate.
func connectedSegments(point r2.Vec, segments []network.RoadSegment) []string {
	var connected []string
	for _, seg := range segments {
		startDist := r2.Norm(r2.Sub(point, vec(seg.Start)))
		endDist := r2.Norm(r2.Sub(point, vec(seg.End)))
		if startDist <= connectTolerance || endDist <= connectTolerance {
			connected = append(connected, seg.ID)
		}
	}
	return connected
}

// classifyJunction maps a connected-segment set to a junction topology.
// Sparse junctions, including the plain two-segment crossing, classify as
// T-junctions.
func classifyJunction(connected []string) network.IntersectionType {
	switch {
	case len(connected) == 3:
		return network.TJunction
	case len(connected) == 4:
		return network.FourWay
	case len(connected) > 4:
		if isRoundabout(connected) {
			return network.Roundabout
		}
		return network.FourWay
	default:
		return network.TJunction
	}
}

// isRoundabout is a simplified circularity test: enough connected arms to
// plausibly form a ring. A proper geometric test would fit the connected
// endpoints to a circle.
func isRoundabout(connected []string) bool {
	return len(connected) >= 4
}

func vec(p network.Point) r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}
