package oo

import "fmt"

// MGS cells are read and written only at level 12: a zone-wide grid of
// 4096x4096 cells, each 5 km square, addressed by a quadkey path from the
// coarsest quadrant down.
const mgsLevels = 12
const mgsCellSize = 5_000.0
const mgsHalfGrid = 2048 // grid index of the zone's projected origin

// MGSCoord is an MGS grid cell: a UTM zone number plus a quadkey of exactly
// mgsLevels base-4 digits, most significant level first. The fixed-size
// array keeps the length invariant structural.
type MGSCoord struct {
	Zone uint8
	Key  [mgsLevels]uint8
}

func (m MGSCoord) String() string {
	var digits [mgsLevels]byte
	for i, d := range m.Key {
		digits[i] = '0' + d
	}
	return fmt.Sprintf("%d/%s", m.Zone, digits[:])
}

// MGSFromUTM quantizes a UTM coordinate to its 5 km grid cell. Pure integer
// and bit work after the initial float-to-cell cast; no projection involved.
func MGSFromUTM(u UTMCoord) MGSCoord {
	// Knock off the false easting and northing so x and y are meters from
	// the zone's projected origin.
	x := u.Easting - falseEasting
	y := u.Northing
	if u.Hemi == HemisphereSouth {
		y -= falseNorthing
	}

	// Grid cells, on a 4096-wide grid with (2048, 2048) at the origin.
	// Grid y grows southward even though northing grows northward.
	x /= mgsCellSize
	y /= mgsCellSize
	ix := int16(x + mgsHalfGrid)
	iy := int16(mgsHalfGrid - y)

	// Interleave one bit of each axis per level, coarsest first.
	var key [mgsLevels]uint8
	for z := range key {
		mask := int16(1) << (mgsLevels - 1 - z)
		if ix&mask > 0 {
			key[z] += 1
		}
		if iy&mask > 0 {
			key[z] += 2
		}
	}

	return MGSCoord{Zone: u.Zone, Key: key}
}

// UTMFromMGS is the inverse: it rebuilds the cell's reference point in UTM
// terms. The quantization is lossy, so this is the cell, not whatever point
// originally produced it. A digit outside 0..3 means the key was built
// without going through ParseMGS and is rejected rather than masked into a
// wrong cell.
func UTMFromMGS(m MGSCoord) (UTMCoord, error) {
	var ix, iy int16
	for z, d := range m.Key {
		mask := int16(1) << (mgsLevels - 1 - z)
		switch d {
		case 0:
		case 1:
			ix |= mask
		case 2:
			iy |= mask
		case 3:
			ix |= mask
			iy |= mask
		default:
			return UTMCoord{}, fmt.Errorf("%w: quadkey digit %d not in 0..3", ErrConversion, d)
		}
	}

	// Back from grid indexes to signed cell offsets from the zone origin.
	x := float64(ix) - mgsHalfGrid
	y := mgsHalfGrid - float64(iy)

	// Not really a latitude, but it has the same sign as one.
	hemi := HemisphereFromSign(y)

	// Scale to meters and re-apply the false offsets.
	x *= mgsCellSize
	y *= mgsCellSize
	x += falseEasting
	if y < 0 {
		y += falseNorthing
	}

	return UTMCoord{Zone: m.Zone, Hemi: hemi, Easting: x, Northing: y}, nil
}
