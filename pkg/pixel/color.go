// Package pixel holds the colour values and raster buffers produced by a
// render.
package pixel

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque colour with R, G and B in [0, 1].
type Color struct {
	R, G, B float64
}

func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// RGB8 builds a Color from 8-bit channels.
func RGB8(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Common colors
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(1, 1, 1)
	Red     = RGB(1, 0, 0)
	Green   = RGB(0, 1, 0)
	Blue    = RGB(0, 0, 1)
	Yellow  = RGB(1, 1, 0)
	Magenta = RGB(1, 0, 1)
)

// HSB builds a Color from hue in degrees and saturation and brightness in
// [0, 1]. Hue wraps around 360.
func HSB(hue, saturation, brightness float64) (Color, error) {
	if saturation < 0 || saturation > 1 || brightness < 0 || brightness > 1 {
		return Color{}, fmt.Errorf("pixel: invalid HSB values: %g %g %g", hue, saturation, brightness)
	}

	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}

	c := colorful.Hsv(hue, saturation, brightness)
	return Color{R: c.R, G: c.G, B: c.B}, nil
}

// ParseHex reads "#rrggbb" or "#rgb"; the leading '#' is optional.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("pixel: parse color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B}, nil
}

// ParseHexList reads a comma separated list of hex colours.
func ParseHexList(s string) ([]Color, error) {
	var colors []Color
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ParseHex(part)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// Lerp interpolates each channel linearly; t = 0 is c and t = 1 is other.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
}

// RGB255 rounds each channel to 8 bits.
func (c Color) RGB255() (r, g, b uint8) {
	return c.colorful().RGB255()
}

// RGBA converts to an opaque 8-bit color.RGBA.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// RGBA64 converts to an opaque 16-bit color.RGBA64.
func (c Color) RGBA64() color.RGBA64 {
	cc := c.colorful()
	return color.RGBA64{
		R: uint16(cc.R*0xffff + 0.5),
		G: uint16(cc.G*0xffff + 0.5),
		B: uint16(cc.B*0xffff + 0.5),
		A: 0xffff,
	}
}

// Hex formats the colour as "#rrggbb".
func (c Color) Hex() string {
	return c.colorful().Hex()
}

func (c Color) String() string {
	return c.Hex()
}
