package asciify

import (
	"errors"
	"fmt"
)

const (
	channels = 4

	// alphaBaseline is subtracted from the channel sum so a fully opaque
	// black pixel reduces to 0.
	alphaBaseline = 255
)

var ErrInvalidBuffer = errors.New("invalid pixel buffer")

// Reduce turns the RGBA pixel starting at offset into one brightness byte:
// (r + g + b + a - 255) / 4, clamped at 0 when the sum is below the alpha
// baseline.
func Reduce(pix []byte, offset int) uint8 {
	sum := 0

	for _, c := range pix[offset : offset+channels] {
		sum += int(c)
	}

	sum -= alphaBaseline

	if sum < 0 {
		return 0
	}

	return uint8(sum / channels)
}

// ReduceAll reduces every pixel of a row-major RGBA buffer of width*height
// pixels. The buffer is not modified.
func ReduceAll(pix []byte, width, height int) ([]uint8, error) {
	if err := checkBuffer(pix, width, height); err != nil {
		return nil, err
	}

	out := make([]uint8, len(pix)/channels)

	for i := range out {
		out[i] = Reduce(pix, i*channels)
	}

	return out, nil
}

func checkBuffer(pix []byte, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidBuffer, width, height)
	}

	if len(pix)%channels != 0 {
		return fmt.Errorf("%w: length %d is not a multiple of %d", ErrInvalidBuffer, len(pix), channels)
	}

	if want := width * height * channels; len(pix) != want {
		return fmt.Errorf("%w: length %d, want %d for %dx%d", ErrInvalidBuffer, len(pix), want, width, height)
	}

	return nil
}
