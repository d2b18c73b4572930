// Package render prints glyph sequences as a grid.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrInvalidWidth = errors.New("grid width must be positive")

// Write prints glyphs to w, breaking the line after every width-th glyph.
func Write(w io.Writer, glyphs []rune, width int) error {
	if width <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidWidth, width)
	}

	bw := bufio.NewWriter(w)

	for i, r := range glyphs {
		if _, err := bw.WriteRune(r); err != nil {
			return err
		}

		if (i+1)%width == 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

func String(glyphs []rune, width int) (string, error) {
	result := &strings.Builder{}

	if err := Write(result, glyphs, width); err != nil {
		return "", err
	}

	return result.String(), nil
}
