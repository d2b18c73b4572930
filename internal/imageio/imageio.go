// Package imageio loads images from disk and turns them into the flat RGBA
// buffers consumed by the asciify package.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrUnknownFormat = errors.New("unknown image format")

// Decode reads any registered image format and returns the image with its
// format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)

	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", ErrUnknownFormat
		}

		return nil, "", err
	}

	return img, format, nil
}

func Open(path string) (image.Image, string, error) {
	f, err := os.Open(path)

	if err != nil {
		return nil, "", err
	}

	defer f.Close()

	img, format, err := Decode(f)

	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	return img, format, nil
}

// Resize scales img to exactly width x height with bilinear filtering.
func Resize(img image.Image, width, height int) *image.NRGBA {
	output := image.NewNRGBA(image.Rect(0, 0, width, height))

	xdraw.BiLinear.Scale(output, output.Rect, img, img.Bounds(), xdraw.Src, nil)

	return output
}

// Pixels returns the row-major R, G, B, A bytes of img, 4 per pixel with no
// row padding.
func Pixels(img image.Image) []byte {
	nrgba, ok := img.(*image.NRGBA)

	if !ok || nrgba.Rect.Min != (image.Point{}) || nrgba.Stride != 4*nrgba.Rect.Dx() {
		b := img.Bounds()
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

		draw.Draw(nrgba, nrgba.Rect, img, b.Min, draw.Src)
	}

	return nrgba.Pix[:4*nrgba.Rect.Dx()*nrgba.Rect.Dy()]
}
