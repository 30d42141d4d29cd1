package pixel

import (
	"image"
	"image/color"
)

// Pixel is one rendered point of the image.
type Pixel struct {
	X, Y  int
	Color Color
}

// Buffer is a complete render in raster order: all x for y = 0, then y = 1...
//
// Buffer implements image.Image so it can be handed to any encoder directly.
type Buffer struct {
	Width, Height int
	Pixels        []Pixel
}

// NewBuffer allocates a buffer and fills in each pixel's coordinates.
func NewBuffer(width, height int) Buffer {
	pixels := make([]Pixel, width*height)
	for i := range pixels {
		pixels[i].X = i % width
		pixels[i].Y = i / width
	}
	return Buffer{Width: width, Height: height, Pixels: pixels}
}

// Row is the slice of pixels with the given y.
func (b Buffer) Row(y int) []Pixel {
	return b.Pixels[y*b.Width : (y+1)*b.Width]
}

func (b Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

func (b Buffer) ColorModel() color.Model {
	return color.RGBAModel
}

func (b Buffer) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return color.RGBA{}
	}
	return b.Pixels[y*b.Width+x].Color.RGBA()
}

// RGBA copies the buffer into an *image.RGBA.
func (b Buffer) RGBA() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	for _, p := range b.Pixels {
		img.SetRGBA(p.X, p.Y, p.Color.RGBA())
	}
	return img
}

// RGBA64 copies the buffer into an *image.RGBA64 keeping 16 bits per channel.
func (b Buffer) RGBA64() *image.RGBA64 {
	img := image.NewRGBA64(b.Bounds())
	for _, p := range b.Pixels {
		img.SetRGBA64(p.X, p.Y, p.Color.RGBA64())
	}
	return img
}

// Bytes flattens the buffer into R, G, B, A bytes per pixel in raster order.
func (b Buffer) Bytes() []byte {
	out := make([]byte, 0, 4*len(b.Pixels))
	for _, p := range b.Pixels {
		r, g, bb := p.Color.RGB255()
		out = append(out, r, g, bb, 0xff)
	}
	return out
}
