// Package imaging handles image input for road-network extraction.
//
// It covers two concerns:
//
//   - Loading: decoding PNG/JPEG/GIF input from files, readers, or byte
//     slices and converting it to a single-channel intensity image. Input
//     that cannot be decoded is the pipeline's only hard failure and is
//     reported as an error wrapping ErrUnreadableImage.
//
//   - Preprocessing: turning the intensity image into a binary road mask
//     via Gaussian smoothing, adaptive local thresholding, and 3x3
//     morphological cleanup. Preprocessing has no failure modes; it always
//     produces a mask with the input's dimensions.
//
// All operations are pure with respect to their inputs and hold no shared
// state, so concurrent extraction runs need no coordination.
package imaging
