package asciify

import "sync"

// minChunk is the smallest number of values handed to a single worker.
const minChunk = 4096

// Mapper maps brightness values onto a Gradient.
type Mapper struct {
	Gradient Gradient

	// UseObservedRange stretches the image's own min/max brightness over
	// the whole gradient instead of the fixed 0-255 range.
	UseObservedRange bool

	// Workers splits the mapping pass across goroutines when > 1.
	Workers int
}

func NewMapper(gradient Gradient, useObservedRange bool) *Mapper {
	return &Mapper{
		Gradient:         gradient,
		UseObservedRange: useObservedRange,
		Workers:          1,
	}
}

func (m *Mapper) Scale(seq []uint8) Scale {
	if m.UseObservedRange {
		return ObservedScale(seq)
	}

	return FullScale()
}

// Index maps v from the range s onto 0..n-1 by truncating integer scaling.
// Values outside s are clamped to it and a degenerate scale maps to 0.
func Index(v uint8, s Scale, n int) int {
	if s.Degenerate() || n < 2 {
		return 0
	}

	if v < s.Low {
		v = s.Low
	} else if v > s.High {
		v = s.High
	}

	idx := int(v-s.Low) * (n - 1) / int(s.High-s.Low)

	if idx < 0 {
		return 0
	} else if idx > n-1 {
		return n - 1
	}

	return idx
}

// Map converts a brightness sequence into glyphs, one per value, in order.
func (m *Mapper) Map(seq []uint8) ([]rune, error) {
	if err := m.Gradient.Validate(); err != nil {
		return nil, err
	}

	s := m.Scale(seq)
	out := make([]rune, len(seq))

	workers := m.Workers
	if limit := len(seq) / minChunk; workers > limit {
		workers = limit
	}

	if workers <= 1 {
		m.mapRange(seq, out, s)

		return out, nil
	}

	chunk := (len(seq) + workers - 1) / workers

	var wg sync.WaitGroup

	for start := 0; start < len(seq); start += chunk {
		end := start + chunk
		if end > len(seq) {
			end = len(seq)
		}

		wg.Add(1)

		go func(start, end int) {
			defer wg.Done()

			m.mapRange(seq[start:end], out[start:end], s)
		}(start, end)
	}

	wg.Wait()

	return out, nil
}

func (m *Mapper) mapRange(seq []uint8, out []rune, s Scale) {
	n := len(m.Gradient)

	for i, v := range seq {
		out[i] = m.Gradient[Index(v, s, n)]
	}
}

// Convert reduces a row-major RGBA buffer and maps it to glyphs.
func (m *Mapper) Convert(pix []byte, width, height int) ([]rune, error) {
	if err := m.Gradient.Validate(); err != nil {
		return nil, err
	}

	seq, err := ReduceAll(pix, width, height)

	if err != nil {
		return nil, err
	}

	return m.Map(seq)
}
