package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
)

// Preprocessing parameters. These are fixed: the pipeline's reproducibility
// contract depends on every run binarizing the same way.
const (
	// blurRadius of 2 gives bild a 5x5 Gaussian kernel.
	blurRadius = 2.0

	// adaptiveBlock is the side length of the local-threshold neighborhood.
	adaptiveBlock = 11

	// adaptiveBias is subtracted from the local weighted mean; pixels above
	// (mean - bias) binarize to white.
	adaptiveBias = 2.0
)

// Preprocess converts a grayscale image into a binary road/non-road mask.
//
// Three steps, in order:
//
//  1. Gaussian smoothing (5x5 kernel) to suppress noise
//  2. Adaptive binarization: each pixel is thresholded against the
//     Gaussian-weighted mean of its 11x11 neighborhood minus a small bias,
//     so uneven lighting across the photograph does not shift the cut
//  3. Morphological closing then opening with a 3x3 structuring element
//     to remove speckle and fill small gaps
//
// The output has the same dimensions as the input, with every pixel either
// 0 or 255. Road-colored (dark) features come out as 0.
func Preprocess(src *image.Gray) *image.Gray {
	blurred := ToGray(blur.Gaussian(src, blurRadius))
	mask := adaptiveThreshold(blurred, adaptiveBlock, adaptiveBias)

	closed := ToGray(effect.Erode(effect.Dilate(mask, 1), 1))
	opened := ToGray(effect.Dilate(effect.Erode(closed, 1), 1))
	return opened
}

// adaptiveThreshold binarizes src against a Gaussian-weighted local mean.
//
// The neighborhood is block x block pixels with sigma derived from the block
// size (0.3*((block-1)*0.5 - 1) + 0.8, the conventional kernel-size rule).
// The weighted mean is computed separably: one horizontal pass, one
// vertical. Border pixels use clamped (replicated) edge values.
func adaptiveThreshold(src *image.Gray, block int, bias float64) *image.Gray {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	half := block / 2

	sigma := 0.3*(float64(block-1)*0.5-1) + 0.8
	kernel := make([]float64, block)
	var kernelSum float64
	for i := range kernel {
		d := float64(i - half)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		kernelSum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= kernelSum
	}

	// Horizontal pass.
	rowMean := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var acc float64
			for k := -half; k <= half; k++ {
				px := clamp(x+k, 0, width-1)
				acc += float64(src.GrayAt(px+bounds.Min.X, y+bounds.Min.Y).Y) * kernel[k+half]
			}
			rowMean[y*width+x] = acc
		}
	}

	// Vertical pass and threshold.
	out := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var mean float64
			for k := -half; k <= half; k++ {
				py := clamp(y+k, 0, height-1)
				mean += rowMean[py*width+x] * kernel[k+half]
			}
			v := float64(src.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y)
			if v > mean-bias {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return out
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
