package output

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// Downsample shrinks img by an integer factor in each dimension with a
// Catmull-Rom filter. Rendering at factor times the size and downsampling
// gives a supersampled image. A factor of 1 returns img unchanged.
func Downsample(img image.Image, factor int) (image.Image, error) {
	if factor < 1 {
		return nil, fmt.Errorf("output: downsample factor %d must be at least 1", factor)
	}
	if factor == 1 {
		return img, nil
	}

	src := img.Bounds()
	w, h := src.Dx()/factor, src.Dy()/factor
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("output: %dx%d image is smaller than downsample factor %d", src.Dx(), src.Dy(), factor)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, image.Rect(src.Min.X, src.Min.Y, src.Min.X+w*factor, src.Min.Y+h*factor), xdraw.Src, nil)
	return dst, nil
}
