package output

import (
	"bufio"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// JPEGQuality is the quality Encode uses for JPEG output.
const JPEGQuality = 95

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case PNG:
		err = png.Encode(w, img)
	case GIF:
		err = gif.Encode(w, img, &gif.Options{NumColors: 256, Drawer: draw.FloydSteinberg})
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case BMP:
		err = bmp.Encode(w, img)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("output: encoding %s: %w", format, err)
	}
	return nil
}

// EncodeAnimation writes frames to w as a looping animated GIF. Each frame is
// dithered onto the Plan 9 palette and shown for delay hundredths of a
// second.
func EncodeAnimation(w io.Writer, frames []image.Image, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("output: animation has no frames")
	}

	anim := &gif.GIF{
		Image: make([]*image.Paletted, len(frames)),
		Delay: make([]int, len(frames)),
	}
	for i, frame := range frames {
		bounds := frame.Bounds()
		p := image.NewPaletted(bounds, palette.Plan9)
		draw.FloydSteinberg.Draw(p, bounds, frame, bounds.Min)

		anim.Image[i] = p
		anim.Delay[i] = delay
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("output: encoding animation: %w", err)
	}
	return nil
}

// WriteFile encodes img into a new file at path.
func WriteFile(path string, img image.Image, format Format) error {
	return writeFile(path, func(w io.Writer) error {
		return Encode(w, img, format)
	})
}

// WriteAnimation encodes frames into a new GIF file at path.
func WriteAnimation(path string, frames []image.Image, delay int) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeAnimation(w, frames, delay)
	})
}

func writeFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	bw := bufio.NewWriter(f)
	if err = encode(bw); err != nil {
		return err
	}
	return bw.Flush()
}
