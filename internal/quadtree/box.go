package quadtree

import "image"

// Box is a rectangular region in pixel coordinates.
type Box struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"width"`
	H int `json:"height"`
}

// Subdividable reports whether the box covers more than one pixel.
func (b Box) Subdividable() bool {
	return b.W*b.H > 1
}

// Empty reports whether the box covers no pixels.
func (b Box) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Rect converts the box to an image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H)
}

// Quadrants returns the four candidate child boxes in the order top-left,
// top-right, bottom-left, bottom-right.
//
// Every child gets the same size, ceil(W/2) x ceil(H/2), even when W or H is
// odd. The right and bottom children then overshoot the parent by one pixel.
func (b Box) Quadrants() [4]Box {
	midW := (b.W + 1) / 2
	midH := (b.H + 1) / 2
	midX := b.X + midW
	midY := b.Y + midH

	return [4]Box{
		{X: b.X, Y: b.Y, W: midW, H: midH},
		{X: midX, Y: b.Y, W: midW, H: midH},
		{X: b.X, Y: midY, W: midW, H: midH},
		{X: midX, Y: midY, W: midW, H: midH},
	}
}
