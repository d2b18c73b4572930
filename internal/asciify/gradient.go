package asciify

import (
	"errors"
	"fmt"
	"sort"
)

var ErrEmptyGradient = errors.New("gradient needs at least 2 characters")

// Gradient is an ordered table of glyphs. Index 0 is used for the lowest
// brightness in the active scale, the last index for the highest.
type Gradient []rune

// DefaultGradient is Paul Bourke's 70 level ramp with the duplicate '|'
// removed, densest glyph first.
var DefaultGradient = Gradient("$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,^`'. ")

var Charsets = map[string]string{
	"bourke": string(DefaultGradient),
	"ascii":  ".'`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$",
	"blocks": "█▓▒░ ",
	"simple": "@%#*+=-:. ",
}

func NewGradient(chars string) (Gradient, error) {
	g := Gradient(chars)

	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// Charset looks up a named gradient from Charsets.
func Charset(name string) (Gradient, error) {
	chars, ok := Charsets[name]

	if !ok {
		return nil, fmt.Errorf("unknown character set: %s", name)
	}

	return NewGradient(chars)
}

// CharsetNames returns the names of Charsets in sorted order.
func CharsetNames() []string {
	names := make([]string, 0, len(Charsets))

	for name := range Charsets {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (g Gradient) Validate() error {
	if len(g) < 2 {
		return fmt.Errorf("%w (got %d)", ErrEmptyGradient, len(g))
	}

	return nil
}

// Reverse returns a copy of g with the direction inverted.
func (g Gradient) Reverse() Gradient {
	out := make(Gradient, len(g))

	for i, r := range g {
		out[len(g)-1-i] = r
	}

	return out
}

func (g Gradient) String() string {
	return string(g)
}
