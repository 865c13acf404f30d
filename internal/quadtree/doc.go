// Package quadtree builds a variable-resolution approximation of a raster image.
//
// The image is recursively split into four quadrants. Every region carries a
// quantized average color and a distortion error; subdivision stops where the
// error falls below a threshold or a maximum depth is reached. The finished
// tree can be queried at any level of detail to reconstruct an approximate
// image or to emit a flat record of regions.
//
// # Coordinate System
//
// Boxes are (X, Y, W, H) in pixels with the origin at the top-left corner.
// The subdivision rule gives all four children the same size, ceil(W/2) by
// ceil(H/2), so for odd dimensions the right and bottom children extend one
// pixel past their parent. Pixels outside the source are never sampled.
//
// # Pixel Sources
//
// The package never touches files. Callers supply a PixelSource; the
// internal/imaging package adapts any decoded image.Image.
//
// # Level of Detail
//
// Leaves(depth), Render, Flat and Summarize all share one pre-order traversal
// (children visited top-left, top-right, bottom-left, bottom-right) that stops
// at a true leaf or at the requested depth, whichever comes first.
//
// # Thread Safety
//
// A Tree is immutable once Build returns and may be read from several
// goroutines. Build itself is single-threaded.
package quadtree
