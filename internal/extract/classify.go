package extract

import "github.com/streetlab/roadnet/internal/network"

// Road classification is a pure lookup from estimated width. Boundary
// values belong to the smaller class: a width of exactly 80 is arterial,
// not highway.

// classifyRoadType maps an estimated road width in pixels to a road type.
func classifyRoadType(width float64) network.RoadType {
	switch {
	case width > 80:
		return network.RoadHighway
	case width > 60:
		return network.RoadArterial
	case width > 40:
		return network.RoadCollector
	default:
		return network.RoadLocal
	}
}

// lanesForWidth maps an estimated road width in pixels to a lane count.
// The breakpoints mirror classifyRoadType.
func lanesForWidth(width float64) int {
	switch {
	case width > 80:
		return 6
	case width > 60:
		return 4
	case width > 40:
		return 2
	default:
		return 1
	}
}

// speedLimitFor returns the assumed speed limit in km/h for a road type.
// An out-of-range type falls back to 50.
func speedLimitFor(t network.RoadType) float64 {
	switch t {
	case network.RoadHighway:
		return 120
	case network.RoadArterial:
		return 80
	case network.RoadCollector:
		return 60
	case network.RoadLocal:
		return 40
	}
	return 50
}
