package oo

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMGS reads a cell reference like "42/012301230123": a zone in 1..60,
// a slash, and exactly 12 base-4 digits.
func ParseMGS(s string) (MGSCoord, error) {
	zs, ks, ok := strings.Cut(s, "/")
	if !ok {
		return MGSCoord{}, fmt.Errorf("%w: expected an MGS tile like 42/012301230123, with the slash, but got %q", ErrBadInput, s)
	}

	zone, err := parseZoneNumber(zs)
	if err != nil {
		return MGSCoord{}, err
	}

	if len(ks) != mgsLevels {
		return MGSCoord{}, fmt.Errorf("%w: expected a quadkey of length %d but got %q (length %d)", ErrBadInput, mgsLevels, ks, len(ks))
	}

	var key [mgsLevels]uint8
	for i := 0; i < mgsLevels; i++ {
		if ks[i] < '0' || ks[i] > '3' {
			return MGSCoord{}, fmt.Errorf("%w: quadkey digit %q not in 0..3", ErrBadInput, rune(ks[i]))
		}
		key[i] = ks[i] - '0'
	}

	return MGSCoord{Zone: zone, Key: key}, nil
}

// ParseUTMZone reads a zone token like "1", "23N", or "42S". A bare zone
// number defaults to the northern hemisphere. Zones outside 1..60 are
// rejected here rather than left for the projection library to trip over.
func ParseUTMZone(s string) (uint8, Hemisphere, error) {
	if len(s) < 1 || len(s) > 3 {
		return 0, HemisphereNorth, fmt.Errorf("%w: expected a UTM zone like 1, 23N, or 42S, but got %q", ErrBadInput, s)
	}

	last := rune(s[len(s)-1])
	if last == 'N' || last == 'S' {
		hemi, _ := HemisphereFromRune(last) // infallible given the check above
		zone, err := parseZoneNumber(s[:len(s)-1])
		return zone, hemi, err
	}

	zone, err := parseZoneNumber(s)
	return zone, HemisphereNorth, err
}

func parseZoneNumber(s string) (uint8, error) {
	z, err := strconv.ParseUint(s, 10, 8)
	if err != nil || z < 1 || z > 60 {
		return 0, fmt.Errorf("%w: expected a UTM zone in 1..60 but got %q", ErrBadInput, s)
	}
	return uint8(z), nil
}
