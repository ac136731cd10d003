package extract

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/streetlab/roadnet/internal/network"
)

// generateLanes derives per-lane centerlines for every segment.
//
// Lanes are offset symmetrically about the segment centerline, each one
// lane-width apart, and numbered 0..NumLanes-1 from the most negative
// offset. The lower-numbered half runs forward, the rest backward, which
// models opposing traffic sharing the roadway.
func generateLanes(segments []network.RoadSegment) []network.Lane {
	var lanes []network.Lane
	for _, seg := range segments {
		laneWidth := seg.Width / float64(seg.NumLanes)
		for i := 0; i < seg.NumLanes; i++ {
			start, end := lanePosition(seg, i)

			direction := network.DirectionForward
			if i >= seg.NumLanes/2 {
				direction = network.DirectionBackward
			}

			lanes = append(lanes, network.Lane{
				ID:            fmt.Sprintf("lane_%s_%d", seg.ID, i),
				RoadSegmentID: seg.ID,
				LaneNumber:    i,
				Start:         start,
				End:           end,
				Width:         laneWidth,
				Direction:     direction,
			})
		}
	}
	return lanes
}

// lanePosition computes the endpoints of one lane by displacing the
// segment endpoints along the perpendicular. The offset formula uses the
// integer-division midpoint so even and odd lane counts both come out
// symmetric about the centerline.
//
// A degenerate segment with coincident endpoints has no perpendicular;
// the lane collapses onto the segment endpoints unchanged.
func lanePosition(seg network.RoadSegment, lane int) (network.Point, network.Point) {
	start := vec(seg.Start)
	end := vec(seg.End)

	dir := r2.Sub(end, start)
	length := r2.Norm(dir)
	if length == 0 {
		return seg.Start, seg.End
	}
	perp := r2.Scale(1/length, r2.Vec{X: -dir.Y, Y: dir.X})

	laneWidth := seg.Width / float64(seg.NumLanes)
	offset := (float64(lane) - float64(seg.NumLanes/2) + 0.5) * laneWidth

	laneStart := r2.Add(start, r2.Scale(offset, perp))
	laneEnd := r2.Add(end, r2.Scale(offset, perp))
	return network.Point{X: laneStart.X, Y: laneStart.Y},
		network.Point{X: laneEnd.X, Y: laneEnd.Y}
}
