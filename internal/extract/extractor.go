package extract

import (
	"fmt"
	"image"

	"github.com/google/uuid"

	"github.com/streetlab/roadnet/internal/detection"
	"github.com/streetlab/roadnet/internal/imaging"
	"github.com/streetlab/roadnet/internal/network"
)

// Canny thresholds for the segment-detection stage.
const (
	cannyLow  = 50
	cannyHigh = 150
)

// Extractor converts road-infrastructure images into road networks.
//
// An Extractor holds only its immutable Config, so a single instance may
// run any number of extractions concurrently.
type Extractor struct {
	cfg Config
}

// New returns an Extractor using the given thresholds.
func New(cfg Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// Extract runs the full pipeline on a decoded image: grayscale conversion,
// preprocessing into a binary mask, segment detection, intersection
// finding, lane generation, and bounds calculation.
//
// It either returns a complete, internally consistent network (possibly
// with zero segments) or an error; never a partial result. A nil image is
// the caller's load failure surfacing late and reports as unreadable
// input.
func (e *Extractor) Extract(img image.Image) (*network.RoadNetwork, error) {
	if img == nil {
		return nil, fmt.Errorf("extract: %w", imaging.ErrUnreadableImage)
	}
	mask := imaging.Preprocess(imaging.ToGray(img))
	return e.ExtractMask(mask)
}

// ExtractMask runs extraction on an already-binarized road mask, skipping
// the preprocessing stage. Callers with their own binarization use this
// directly; Extract funnels into it.
func (e *Extractor) ExtractMask(mask *image.Gray) (*network.RoadNetwork, error) {
	if mask == nil {
		return nil, fmt.Errorf("extract: %w", imaging.ErrUnreadableImage)
	}

	segments := e.detectSegments(mask)

	return &network.RoadNetwork{
		ID:            "network_" + uuid.NewString(),
		Segments:      segments,
		Intersections: findIntersections(segments),
		Lanes:         generateLanes(segments),
		Bounds:        networkBounds(segments),
	}, nil
}

// detectSegments extracts line candidates from the mask and filters them
// into classified road segments.
//
// Candidates keep their detection-order index in the segment ID even when
// earlier candidates were rejected, so IDs identify the underlying
// candidate, not the position in the accepted list.
func (e *Extractor) detectSegments(mask *image.Gray) []network.RoadSegment {
	edges := detection.CannyEdges(mask, cannyLow, cannyHigh)
	candidates := detection.HoughSegments(edges, detection.DefaultHoughParams())

	var segments []network.RoadSegment
	for i, c := range candidates {
		width := detection.EstimateWidth(mask, c.Start, c.End)
		if width < e.cfg.MinRoadWidth || width > e.cfg.MaxRoadWidth {
			continue
		}

		roadType := classifyRoadType(width)
		segments = append(segments, network.RoadSegment{
			ID:         fmt.Sprintf("segment_%d", i),
			Start:      network.Point{X: c.Start.X, Y: c.Start.Y},
			End:        network.Point{X: c.End.X, Y: c.End.Y},
			Type:       roadType,
			NumLanes:   lanesForWidth(width),
			SpeedLimit: speedLimitFor(roadType),
			Width:      width,
			Length:     c.Length,
		})
	}
	return segments
}
