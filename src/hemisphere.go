package oo

import (
	"fmt"

	"github.com/tzneal/coordconv"
)

// Hemisphere is which side of the equator a coordinate sits on.
type Hemisphere int

const (
	HemisphereNorth Hemisphere = iota
	HemisphereSouth
)

// HemisphereFromRune reads an 'N' or 'S'.
func HemisphereFromRune(r rune) (Hemisphere, error) {
	switch r {
	case 'N':
		return HemisphereNorth, nil
	case 'S':
		return HemisphereSouth, nil
	default:
		return HemisphereNorth, fmt.Errorf("%w: expected a hemisphere (N or S) but got %q", ErrBadInput, r)
	}
}

// HemisphereFromSign classifies by sign: South iff v < 0. Zero, NaN, and
// +Inf all come out North. v is usually a latitude, but the MGS decode also
// feeds it a signed grid offset, which has the same sign as the latitude it
// implies.
func HemisphereFromSign(v float64) Hemisphere {
	if v < 0 {
		return HemisphereSouth
	}
	return HemisphereNorth
}

func (h Hemisphere) String() string {
	if h == HemisphereSouth {
		return "S"
	}
	return "N"
}

// Coordconv maps to the projection library's hemisphere type.
func (h Hemisphere) Coordconv() coordconv.Hemisphere {
	if h == HemisphereSouth {
		return coordconv.HemisphereSouth
	}
	return coordconv.HemisphereNorth
}

// HemisphereFromCoordconv maps back from the projection library's type.
func HemisphereFromCoordconv(h coordconv.Hemisphere) Hemisphere {
	if h == coordconv.HemisphereSouth {
		return HemisphereSouth
	}
	return HemisphereNorth
}
