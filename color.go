package mandelbrot

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	mcolor "github.com/gogpu/mandelbrot/internal/color"
)

// ErrUnknownColor is returned by ParseColor for names it does not know and
// malformed hex strings.
var ErrUnknownColor = errors.New("mandelbrot: unknown color")

// Color is an opaque-or-not 8-bit sRGB color, the unit stored in a Gradient
// and written to a Canvas.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA implements color.Color. Channels are straight alpha, so they are
// premultiplied here as the interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// String formats the color as #rrggbb, or #rrggbbaa when not opaque.
func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Lerp interpolates per channel on the 8-bit sRGB values, rounding to the
// nearest byte. t is clamped to [0, 1]; both ends are exact.
func (c Color) Lerp(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	return Color{
		R: lerp8(c.R, other.R, t),
		G: lerp8(c.G, other.G, t),
		B: lerp8(c.B, other.B, t),
		A: lerp8(c.A, other.A, t),
	}
}

// LerpLinear interpolates in linear light: RGB channels are decoded with the
// sRGB transfer curve, mixed, and encoded again. Alpha is mixed directly.
func (c Color) LerpLinear(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	return Color{
		R: mcolor.LerpLinear(c.R, other.R, t),
		G: mcolor.LerpLinear(c.G, other.G, t),
		B: mcolor.LerpLinear(c.B, other.B, t),
		A: lerp8(c.A, other.A, t),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Common colors
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
)

var namedColors = map[string]Color{
	"black":   Black,
	"white":   White,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"yellow":  Yellow,
	"cyan":    Cyan,
	"magenta": Magenta,
}

// ParseColor accepts a color name (black, white, red, green, blue, yellow,
// cyan, magenta; case-insensitive) or a hex string "#rgb" / "#rrggbb"
// (the leading '#' is optional).
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[name]; ok {
		return c, nil
	}
	if name == "" {
		return Color{}, fmt.Errorf("%w: empty string", ErrUnknownColor)
	}
	if name[0] != '#' {
		name = "#" + name
	}
	hc, err := colorful.Hex(name)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	r, g, b := hc.RGB255()
	return RGB(r, g, b), nil
}
