package oo

import "fmt"

// Message renders the full block for a point: the two-line geographic form,
// then the UTM and MGS forms derived from it. UTM and MGS always come out in
// the canonical zone for the longitude, whatever zone any input carried.
func Message(ll LonLat) (string, error) {
	utm, err := UTMFromLonLat(ll)
	if err != nil {
		return "", err
	}
	mgs := MGSFromUTM(utm)

	return fmt.Sprintf("%s\n%s\n%s", ll.DeluxeString(), utm, mgs), nil
}

// MessageFromUTM takes UTM input through lon/lat and back before rendering.
//
// That round trip is deliberate. UTM (and MGS on top of it) can address a
// point from a neighboring zone's grid, and around zone edges that is
// sometimes even useful. But we don't know the user's intent, so we silently
// canonicalize: the input's zone is dropped and the point is re-addressed
// from its true longitude. Two things to understand about that choice:
//
//  1. The grids of different zones don't line up. A non-canonical MGS cell
//     re-addressed this way lands in a different cell whose centerpoint can
//     sit a couple of kilometers away — cell 47/122021022203 comes back as
//     48/033131022202, about 2.9 km off. This is cell -> point -> different
//     cell, not two names for one cell.
//  2. Wildly non-canonical input (zone 1 addressing a point in zone 47) is
//     far more likely a typo than intent, and it gets canonicalized without
//     so much as a warning.
//
// Anyone building on this should decide whether that tradeoff is the right
// one for them; it is the behavior wanted here.
func MessageFromUTM(u UTMCoord) (string, error) {
	ll, err := LonLatFromUTM(u)
	if err != nil {
		return "", err
	}
	return Message(ll)
}

// MessageFromMGS reads the cell as its reference point and canonicalizes the
// same way.
func MessageFromMGS(m MGSCoord) (string, error) {
	u, err := UTMFromMGS(m)
	if err != nil {
		return "", err
	}
	return MessageFromUTM(u)
}
