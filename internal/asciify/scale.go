package asciify

import "fmt"

// Scale is the active brightness range of a conversion. Low <= High.
type Scale struct {
	Low  uint8
	High uint8
}

func FullScale() Scale {
	return Scale{Low: 0, High: 255}
}

// ObservedScale returns the minimum and maximum of seq. An empty sequence
// has no observed range and falls back to FullScale.
func ObservedScale(seq []uint8) Scale {
	if len(seq) == 0 {
		return FullScale()
	}

	s := Scale{Low: 255, High: 0}

	for _, v := range seq {
		if v < s.Low {
			s.Low = v
		}

		if v > s.High {
			s.High = v
		}
	}

	return s
}

// Degenerate reports whether the range is a single value.
func (s Scale) Degenerate() bool {
	return s.Low == s.High
}

func (s Scale) String() string {
	return fmt.Sprintf("%d-%d", s.Low, s.High)
}
