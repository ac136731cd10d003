// Package network defines the road-network domain model produced by the
// extraction pipeline.
//
// A RoadNetwork is the sole output artifact of one extraction run. It owns
// the full collections of road segments, intersections, and lanes, plus the
// axis-aligned bounding box enclosing all segment endpoints. All entities
// are constructed once and never mutated afterward, so a network may be
// shared freely across goroutines.
//
// # Coordinate System
//
// All coordinates are in image space:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//   - Units are pixels
//
// # Identity and References
//
// The network ID is unique per extraction run. Entity IDs (segments,
// intersections, lanes) are ordinal within a run and stable for a given
// input, which makes repeated runs over the same image comparable.
// Intersections and lanes reference their segments by ID rather than
// holding them; every referenced ID resolves to a segment in the same
// network.
//
// # Classification
//
// RoadType, IntersectionType, and LaneDirection are closed enumerations.
// Switching over them is exhaustive; the JSON encoding uses their lowercase
// string names ("highway", "t_junction", "forward", ...).
package network
