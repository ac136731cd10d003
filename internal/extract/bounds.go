package extract

import (
	"math"

	"github.com/streetlab/roadnet/internal/network"
)

// fallbackBounds is the well-formed box reported for a network with no
// segments, so consumers never see a degenerate or inverted bounding box.
var fallbackBounds = network.Bounds{
	Min: network.Point{X: 0, Y: 0},
	Max: network.Point{X: 100, Y: 100},
}

// networkBounds returns the tightest axis-aligned box enclosing every
// segment endpoint, or fallbackBounds when there are no segments.
func networkBounds(segments []network.RoadSegment) network.Bounds {
	if len(segments) == 0 {
		return fallbackBounds
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, seg := range segments {
		for _, p := range []network.Point{seg.Start, seg.End} {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	return network.Bounds{
		Min: network.Point{X: minX, Y: minY},
		Max: network.Point{X: maxX, Y: maxY},
	}
}
