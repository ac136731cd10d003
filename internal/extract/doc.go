// Package extract assembles road networks from images.
//
// Extractor is the pipeline entry point. One Extract call runs, in order:
//
//  1. Grayscale conversion and preprocessing into a binary road mask
//  2. Edge detection and straight-line extraction (internal/detection)
//  3. Width estimation, width-band filtering, and road classification
//  4. Pairwise intersection finding and junction classification
//  5. Per-segment lane generation
//  6. Bounding-box calculation and network assembly
//
// The result is a single immutable network value. The pipeline is a pure,
// synchronous computation: it never blocks, shares no mutable state
// between runs, and given the same image and Config always produces the
// same network content.
//
// # Failure Contract
//
// Only unreadable input surfaces as an error. Geometric edge cases inside
// the pipeline degrade to safe defaults: a candidate with no width signal
// gets a default width, a degenerate zero-length candidate gets width 0
// and falls out of the width band, parallel segment pairs simply report no
// intersection, and fewer than two detected segments yields an empty
// intersection list. The returned network is always well formed, possibly
// sparse, never partial.
//
// # Intersection Cardinality
//
// Intersections come from pairwise segment testing without positional
// deduplication: a physical junction of N arms yields one record per
// intersecting pair. Consumers that want one record per location must
// cluster by center point themselves.
package extract
