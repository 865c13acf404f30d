package imaging

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HexColor formats c as "#rrggbb", ignoring alpha. Fully transparent colors
// format as black.
func HexColor(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}
