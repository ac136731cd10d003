package detection

import (
	"image"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// widthSampleReach bounds perpendicular sampling to +/- 20 pixels from
	// the line's start point, in steps of widthSampleStep.
	widthSampleReach = 20
	widthSampleStep  = 2

	// roadIntensity is the mask intensity below which a sample counts as
	// road-colored.
	roadIntensity = 128

	// DefaultRoadWidth is reported when no perpendicular sample qualifies
	// as road, so a candidate with no width signal still degrades to a
	// usable value instead of failing.
	DefaultRoadWidth = 30.0
)

// EstimateWidth estimates the physical width of a road under a candidate
// line by sampling the binary mask perpendicular to the line's direction.
//
// Samples are taken at offsets t ∈ {-20, -18, ..., 20} pixels along the
// perpendicular from the start point; offsets whose mask pixel is
// road-colored (intensity < 128) are recorded, and the width is the spread
// between the largest and smallest recorded offset. Samples outside the
// mask are ignored.
//
// Degenerate lines with coincident endpoints have no defined perpendicular
// and return 0; the width-band filter downstream rejects them.
func EstimateWidth(mask *image.Gray, start, end r2.Vec) float64 {
	dir := r2.Sub(end, start)
	length := r2.Norm(dir)
	if length == 0 {
		return 0
	}
	perp := r2.Scale(1/length, r2.Vec{X: -dir.Y, Y: dir.X})

	bounds := mask.Bounds()
	var minT, maxT int
	found := false

	for t := -widthSampleReach; t <= widthSampleReach; t += widthSampleStep {
		x := int(start.X + float64(t)*perp.X)
		y := int(start.Y + float64(t)*perp.Y)
		if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		if mask.GrayAt(x, y).Y < roadIntensity {
			if !found {
				minT = t
				found = true
			}
			maxT = t
		}
	}

	if !found {
		return DefaultRoadWidth
	}
	return float64(maxT - minT)
}
