package detection

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// LineCandidate is a raw straight-line segment extracted from an edge mask,
// before any road-specific filtering or classification.
type LineCandidate struct {
	Start  r2.Vec
	End    r2.Vec
	Length float64
}

// HoughParams tunes the line extractor.
type HoughParams struct {
	// VoteThreshold is the minimum accumulator vote count for a line to be
	// considered at all.
	VoteThreshold int

	// MinLineLength discards runs shorter than this many pixels.
	MinLineLength float64

	// MaxLineGap is the largest break, in pixels along the line, across
	// which two collinear runs are still merged into one segment.
	MaxLineGap float64
}

// DefaultHoughParams returns the extractor's standard parameters.
func DefaultHoughParams() HoughParams {
	return HoughParams{
		VoteThreshold: 50,
		MinLineLength: 50,
		MaxLineGap:    10,
	}
}

// collinearTolerance is the maximum perpendicular distance, in pixels, for
// an edge pixel to count as lying on a candidate line.
const collinearTolerance = 2.0

// maxCandidates caps the number of emitted segments per image.
const maxCandidates = 50

// HoughSegments extracts straight line segments from an edge mask.
//
// The algorithm is a deterministic equivalent of the probabilistic Hough
// line transform:
//
//  1. Every edge pixel votes in (rho, theta) space with 1-pixel rho bins
//     and 1-degree theta bins.
//  2. Accumulator cells at or above VoteThreshold that are local maxima in
//     a 5x5 neighborhood become candidate lines, processed strongest first.
//  3. For each candidate line, unclaimed edge pixels within
//     collinearTolerance of the line are gathered, ordered by their
//     position along it, and split into runs wherever consecutive pixels
//     are more than MaxLineGap apart.
//  4. Each run at least MinLineLength long is emitted as a segment and its
//     pixels are claimed, so overlapping accumulator peaks do not emit the
//     same edge twice.
//
// Unlike the classical probabilistic variant there is no random pixel
// sampling: pixels are visited in scan order and ties between equally
// strong peaks break on (rho, theta), so the output is reproducible for a
// given mask.
func HoughSegments(edges [][]bool, params HoughParams) []LineCandidate {
	height := len(edges)
	if height == 0 {
		return nil
	}
	width := len(edges[0])

	maxDist := int(math.Sqrt(float64(width*width + height*height)))
	numAngles := 180
	accumulator := make([][]int, maxDist*2)
	for i := range accumulator {
		accumulator[i] = make([]int, numAngles)
	}

	// Vote in Hough space.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !edges[y][x] {
				continue
			}
			for theta := 0; theta < numAngles; theta++ {
				angle := float64(theta) * math.Pi / 180.0
				rho := float64(x)*math.Cos(angle) + float64(y)*math.Sin(angle)
				rhoIdx := int(rho) + maxDist
				if rhoIdx >= 0 && rhoIdx < maxDist*2 {
					accumulator[rhoIdx][theta]++
				}
			}
		}
	}

	// Find peaks in the accumulator.
	type peak struct {
		rho   int
		theta int
		votes int
	}
	peaks := make([]peak, 0)

	for rhoIdx := 0; rhoIdx < maxDist*2; rhoIdx++ {
		for theta := 0; theta < numAngles; theta++ {
			if accumulator[rhoIdx][theta] < params.VoteThreshold {
				continue
			}
			// Check if local maximum.
			isMax := true
			for dr := -2; dr <= 2 && isMax; dr++ {
				for dt := -2; dt <= 2 && isMax; dt++ {
					if dr == 0 && dt == 0 {
						continue
					}
					nr := rhoIdx + dr
					nt := (theta + dt + numAngles) % numAngles
					if nr >= 0 && nr < maxDist*2 {
						if accumulator[nr][nt] > accumulator[rhoIdx][theta] {
							isMax = false
						}
					}
				}
			}
			if isMax {
				peaks = append(peaks, peak{
					rho:   rhoIdx - maxDist,
					theta: theta,
					votes: accumulator[rhoIdx][theta],
				})
			}
		}
	}

	// Strongest peaks first; ties break on (rho, theta) so ordering does
	// not depend on map or sort instability.
	sort.Slice(peaks, func(i, j int) bool {
		if peaks[i].votes != peaks[j].votes {
			return peaks[i].votes > peaks[j].votes
		}
		if peaks[i].rho != peaks[j].rho {
			return peaks[i].rho < peaks[j].rho
		}
		return peaks[i].theta < peaks[j].theta
	})

	used := make([][]bool, height)
	for y := range used {
		used[y] = make([]bool, width)
	}

	type linePoint struct {
		x, y int
		t    float64 // position along the line direction
	}

	candidates := make([]LineCandidate, 0)

	for _, pk := range peaks {
		if len(candidates) >= maxCandidates {
			break
		}

		angle := float64(pk.theta) * math.Pi / 180.0
		rho := float64(pk.rho)
		cosA := math.Cos(angle)
		sinA := math.Sin(angle)

		// Gather unclaimed edge pixels on this line. The line direction is
		// (-sin, cos); t is the scalar position along it.
		points := make([]linePoint, 0)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if !edges[y][x] || used[y][x] {
					continue
				}
				dist := math.Abs(float64(x)*cosA + float64(y)*sinA - rho)
				if dist < collinearTolerance {
					t := -float64(x)*sinA + float64(y)*cosA
					points = append(points, linePoint{x: x, y: y, t: t})
				}
			}
		}
		if len(points) < 2 {
			continue
		}

		sort.Slice(points, func(i, j int) bool { return points[i].t < points[j].t })

		// Split into runs at gaps wider than MaxLineGap, emit long runs.
		runStart := 0
		for i := 1; i <= len(points); i++ {
			if i < len(points) && points[i].t-points[i-1].t <= params.MaxLineGap {
				continue
			}

			first := points[runStart]
			last := points[i-1]
			dx := float64(last.x - first.x)
			dy := float64(last.y - first.y)
			length := math.Sqrt(dx*dx + dy*dy)

			if length >= params.MinLineLength {
				candidates = append(candidates, LineCandidate{
					Start:  r2.Vec{X: float64(first.x), Y: float64(first.y)},
					End:    r2.Vec{X: float64(last.x), Y: float64(last.y)},
					Length: length,
				})
				for _, p := range points[runStart:i] {
					used[p.y][p.x] = true
				}
				if len(candidates) >= maxCandidates {
					break
				}
			}
			runStart = i
		}
	}

	return candidates
}
