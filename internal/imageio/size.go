package imageio

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// ParseResize parses a "WxH" value. An empty value keeps the size of img.
func ParseResize(value string, img image.Image) (int, int, error) {
	if len(value) < 1 {
		size := img.Bounds().Size()

		return size.X, size.Y, nil
	}

	split := strings.SplitN(value, "x", 2)

	if len(split) < 2 {
		return 0, 0, fmt.Errorf("invalid resize value: %s", value)
	}

	width, err := strconv.ParseUint(split[0], 10, 32)

	if err != nil {
		return 0, 0, fmt.Errorf("invalid resize width: %w", err)
	}

	height, err := strconv.ParseUint(split[1], 10, 32)

	if err != nil {
		return 0, 0, fmt.Errorf("invalid resize height: %w", err)
	}

	if width == 0 || height == 0 {
		return 0, 0, fmt.Errorf("invalid resize value: %s", value)
	}

	return int(width), int(height), nil
}

// Dimensions picks the output grid for img. A non-zero scale factor wins
// over value and preserves the aspect ratio.
func Dimensions(value string, scale float64, img image.Image) (int, int, error) {
	if scale == 0 {
		return ParseResize(value, img)
	}

	if scale < 0 {
		return 0, 0, fmt.Errorf("invalid scale: %g", scale)
	}

	size := img.Bounds().Size()

	ow := int(float64(size.X) * scale)
	oh := int(float64(size.Y) * scale)

	if ow < 1 {
		ow = 1
	}

	if oh < 1 {
		oh = 1
	}

	return ow, oh, nil
}
