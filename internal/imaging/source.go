package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// RasterSource adapts a decoded image to quadtree.PixelSource.
//
// The image is normalized once to non-premultiplied RGBA with its origin at
// (0,0); lookups then index the pixel buffer directly by offset and stride.
// Alpha is ignored.
type RasterSource struct {
	pix *image.NRGBA
}

// NewPixelSource copies img into a RasterSource.
func NewPixelSource(img image.Image) *RasterSource {
	return &RasterSource{pix: imaging.Clone(img)}
}

// Width returns the image width in pixels.
func (s *RasterSource) Width() int { return s.pix.Rect.Dx() }

// Height returns the image height in pixels.
func (s *RasterSource) Height() int { return s.pix.Rect.Dy() }

// RGB returns the 8-bit color components at (x, y).
func (s *RasterSource) RGB(x, y int) (r, g, b uint8) {
	i := y*s.pix.Stride + x*4
	p := s.pix.Pix[i : i+3 : i+3]
	return p[0], p[1], p[2]
}
