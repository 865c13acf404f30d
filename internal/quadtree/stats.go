package quadtree

import "math"

// Luma weights used to fold per-channel errors into one scalar.
const (
	LumaR = 0.2989
	LumaG = 0.5870
	LumaB = 0.1140
)

// PixelSource is the raster a tree is built from.
//
// RGB is only called with 0 <= x < Width() and 0 <= y < Height().
type PixelSource interface {
	Width() int
	Height() int
	RGB(x, y int) (r, g, b uint8)
}

// Color is an 8-bit RGB triple. It implements color.Color as fully opaque.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Stats is the average color and distortion error of a region.
type Stats struct {
	Color Color   `json:"color"`
	Error float64 `json:"error"`
}

// histogram counts channel values; index 0 is red, 1 green, 2 blue.
type histogram [3][256]int

// RegionStats computes the statistics of box over src.
//
// Each channel mean is truncated to an integer first and the error is the
// population RMS deviation around that truncated mean. Channel errors are
// combined with the luma weights. Pixels of box lying outside src are
// skipped; a region with no pixels has black color and zero error.
func RegionStats(src PixelSource, box Box) Stats {
	var hist histogram

	x0, y0 := max(box.X, 0), max(box.Y, 0)
	x1, y1 := min(box.X+box.W, src.Width()), min(box.Y+box.H, src.Height())

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r, g, b := src.RGB(x, y)
			hist[0][r]++
			hist[1][g]++
			hist[2][b]++
		}
	}

	r, re := weightedAverage(&hist[0])
	g, ge := weightedAverage(&hist[1])
	b, be := weightedAverage(&hist[2])

	return Stats{
		Color: Color{R: r, G: g, B: b},
		Error: re*LumaR + ge*LumaG + be*LumaB,
	}
}

// weightedAverage returns the truncated mean of a channel histogram and the
// RMS deviation of the samples around it.
func weightedAverage(hist *[256]int) (uint8, float64) {
	total, sum := 0, 0
	for i, n := range hist {
		total += n
		sum += i * n
	}
	if total == 0 {
		return 0, 0
	}

	mean := sum / total

	var sq float64
	for i, n := range hist {
		if n == 0 {
			continue
		}
		d := float64(mean - i)
		sq += float64(n) * d * d
	}
	return uint8(mean), math.Sqrt(sq / float64(total))
}
