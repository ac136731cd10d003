// Package detection extracts geometric road features from binarized images.
//
// It provides the three low-level stages of road-segment detection:
//
//   - CannyEdges: edge detection on the preprocessed road mask
//   - HoughSegments: straight-line extraction from the edge mask
//   - EstimateWidth: perpendicular-sampling road width estimation
//
// Callers feed CannyEdges output into HoughSegments, then estimate a width
// for each candidate; filtering candidates into road segments and
// classifying them is the extraction layer's concern.
//
// # Coordinate System
//
// All coordinates use the standard image convention: origin (0, 0) at
// top-left, X increasing rightward, Y increasing downward.
//
// # Determinism
//
// Every function in this package is a pure computation over its inputs.
// Line extraction visits pixels in scan order and breaks accumulator ties
// on fixed keys, so identical masks always yield identical candidates.
//
// # Performance Considerations
//
// The Hough transform iterates every edge pixel over 180 angle bins and is
// the dominant cost for large images. Inputs at photograph scale (around
// 1000x1000) complete in well under a second; callers needing a wall-clock
// budget should impose it externally, as no stage blocks or suspends.
package detection
