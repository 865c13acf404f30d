// Package imaging connects quadtree approximation to image files.
//
// It decodes images (PNG, JPEG, GIF, BMP, TIFF, WebP) into a cache, adapts
// them to quadtree.PixelSource, and encodes results: PNG renders, animated
// GIFs that step through every level of detail, and hex colors.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner.
// RasterSource rebases images whose bounds do not start at the origin.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The remaining functions are
// stateless.
//
// # Performance Considerations
//
// Large images may consume significant memory when cached. Use Evict() or
// Clear() to manage memory for long-running processes.
package imaging
