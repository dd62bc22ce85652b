package draw

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	ColorBlack = color.NRGBA{A: 255}
	ColorWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// ContrastText picks black or white, whichever reads better on bg.
func ContrastText(bg color.NRGBA) color.NRGBA {
	c, ok := colorful.MakeColor(bg)
	if !ok {
		return ColorBlack
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return ColorBlack
	}
	return ColorWhite
}

// Hex formats c as #rrggbb, ignoring alpha.
func Hex(c color.NRGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// textColor returns fg, or the contrast color on bg when fg is unset.
func textColor(fg, bg color.NRGBA) color.NRGBA {
	if fg.A == 0 {
		return ContrastText(bg)
	}
	return fg
}
