// Package layout reconstructs price grids from positioned text tokens.
//
// The pipeline is split → cluster → detect → build:
//
//   - Splitter partitions a page into left and right regions.
//   - ClusterRows groups tokens into rows by quantized vertical position.
//   - MonotonicDetector finds the first dense, non-decreasing integer row,
//     which becomes the width header.
//   - BuildGrid aligns each following row into a drop and its prices.
//
// Extras and Rules read the text around the grids: priced add-on lines and
// surcharge notes.
//
// Engine ties the steps together for one Layout. Every step is
// deterministic: the same tokens always produce the same grid.
package layout
