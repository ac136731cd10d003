package network

// RoadType categorizes a road segment by its physical scale.
type RoadType int

const (
	RoadLocal RoadType = iota
	RoadCollector
	RoadArterial
	RoadHighway
)

// String returns the wire name of the road type.
func (t RoadType) String() string {
	switch t {
	case RoadHighway:
		return "highway"
	case RoadArterial:
		return "arterial"
	case RoadCollector:
		return "collector"
	case RoadLocal:
		return "local"
	}
	return "unknown"
}

// MarshalJSON encodes the road type as its string name.
func (t RoadType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// IntersectionType categorizes junction topology.
type IntersectionType int

const (
	TJunction IntersectionType = iota
	FourWay
	Roundabout
	OnRamp
	OffRamp
)

// String returns the wire name of the intersection type.
func (t IntersectionType) String() string {
	switch t {
	case TJunction:
		return "t_junction"
	case FourWay:
		return "four_way"
	case Roundabout:
		return "roundabout"
	case OnRamp:
		return "on_ramp"
	case OffRamp:
		return "off_ramp"
	}
	return "unknown"
}

// MarshalJSON encodes the intersection type as its string name.
func (t IntersectionType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// LaneDirection is the traffic direction of a lane relative to its
// parent segment's start-to-end orientation.
type LaneDirection int

const (
	DirectionForward LaneDirection = iota
	DirectionBackward
	DirectionBidirectional
)

// String returns the wire name of the lane direction.
func (d LaneDirection) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	case DirectionBidirectional:
		return "bidirectional"
	}
	return "unknown"
}

// MarshalJSON encodes the lane direction as its string name.
func (d LaneDirection) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// Point is a 2-D coordinate in image space (origin top-left, X rightward,
// Y downward, pixel units).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// RoadSegment is a detected straight road element. Segments are immutable
// once constructed; fields are exported for serialization only.
type RoadSegment struct {
	ID         string   `json:"id"`
	Start      Point    `json:"start_point"`
	End        Point    `json:"end_point"`
	Type       RoadType `json:"road_type"`
	NumLanes   int      `json:"num_lanes"`
	SpeedLimit float64  `json:"speed_limit"` // km/h
	Width      float64  `json:"width"`       // pixels
	Length     float64  `json:"length"`      // pixels
}

// CenterLine returns the segment's centerline endpoints.
func (s RoadSegment) CenterLine() [2]Point {
	return [2]Point{s.Start, s.End}
}

// Intersection is a point where two or more segments meet.
// ConnectedSegments holds non-owning references by segment ID; every ID
// must resolve to a segment in the same network.
type Intersection struct {
	ID                string           `json:"id"`
	Center            Point            `json:"center_point"`
	Type              IntersectionType `json:"intersection_type"`
	ConnectedSegments []string         `json:"connected_segments"`
	TrafficSignals    []string         `json:"traffic_signals,omitempty"`
	Radius            float64          `json:"radius"` // roundabouts only
}

// Lane is one directional traffic channel within a road segment.
// RoadSegmentID is a back-reference, not ownership.
type Lane struct {
	ID            string        `json:"id"`
	RoadSegmentID string        `json:"road_segment_id"`
	LaneNumber    int           `json:"lane_number"` // 0-based
	Start         Point         `json:"start_point"`
	End           Point         `json:"end_point"`
	Width         float64       `json:"width"`
	Direction     LaneDirection `json:"direction"`
}

// RoadNetwork is the complete extracted road network. It owns its segment,
// intersection, and lane collections; slice order is detection order and
// carries no semantic meaning. Networks are constructed once per extraction
// run and never mutated afterward.
type RoadNetwork struct {
	ID            string         `json:"id"`
	Segments      []RoadSegment  `json:"segments"`
	Intersections []Intersection `json:"intersections"`
	Lanes         []Lane         `json:"lanes"`
	Bounds        Bounds         `json:"bounds"`
}

// SegmentByID looks up a segment by its ID.
func (n *RoadNetwork) SegmentByID(id string) (RoadSegment, bool) {
	for _, s := range n.Segments {
		if s.ID == id {
			return s, true
		}
	}
	return RoadSegment{}, false
}

// IntersectionByID looks up an intersection by its ID.
func (n *RoadNetwork) IntersectionByID(id string) (Intersection, bool) {
	for _, in := range n.Intersections {
		if in.ID == id {
			return in, true
		}
	}
	return Intersection{}, false
}

// LanesForSegment returns all lanes belonging to the given segment,
// in lane-number order.
func (n *RoadNetwork) LanesForSegment(segmentID string) []Lane {
	var lanes []Lane
	for _, l := range n.Lanes {
		if l.RoadSegmentID == segmentID {
			lanes = append(lanes, l)
		}
	}
	return lanes
}

// Metrics summarizes a network for reporting.
type Metrics struct {
	TotalLengthKm    float64 `json:"total_length_km"`
	TotalLanes       int     `json:"total_lanes"`
	AvgSpeedLimitKmh float64 `json:"avg_speed_limit_kmh"`
	NumSegments      int     `json:"num_segments"`
	NumIntersections int     `json:"num_intersections"`
}

// Metrics computes basic aggregate statistics over the network.
// An empty network reports zero averages rather than NaN.
func (n *RoadNetwork) Metrics() Metrics {
	m := Metrics{
		NumSegments:      len(n.Segments),
		NumIntersections: len(n.Intersections),
	}
	var totalLength, totalSpeed float64
	for _, s := range n.Segments {
		totalLength += s.Length
		totalSpeed += s.SpeedLimit
		m.TotalLanes += s.NumLanes
	}
	m.TotalLengthKm = totalLength / 1000
	if len(n.Segments) > 0 {
		m.AvgSpeedLimitKmh = totalSpeed / float64(len(n.Segments))
	}
	return m
}
