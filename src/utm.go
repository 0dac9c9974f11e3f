package oo

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"
)

const falseEasting = 500_000.0
const falseNorthing = 10_000_000.0

// ZoneForLongitude maps a longitude to its canonical UTM zone. Valid for
// lon in [-180, 180]; it does not re-check the range, so out-of-range input
// gives a nonsensical zone. (lon exactly 180 gives 61, which the projection
// library then rejects.)
func ZoneForLongitude(lon float64) uint8 {
	return uint8(math.Floor((lon+180)/6) + 1)
}

// UTMCoord is a UTM coordinate with the standard false offsets applied:
// easting is origin-relative plus 500 km, and southern-hemisphere northing
// carries a 10,000 km offset so both stay non-negative within a zone.
type UTMCoord struct {
	Zone     uint8
	Hemi     Hemisphere
	Easting  float64
	Northing float64
}

// String truncates to integer meters.
func (u UTMCoord) String() string {
	return fmt.Sprintf("%d%s %d %d", u.Zone, u.Hemi, uint64(u.Easting), uint64(u.Northing))
}

// UTMFromLonLat projects into the zone the longitude implies. The zone is
// passed to the projection library as an override so that it cannot pick a
// different one (it has special cases around Norway and Svalbard, all within
// one zone of the derived answer, which is as far as the override reaches).
func UTMFromLonLat(ll LonLat) (UTMCoord, error) {
	zone := ZoneForLongitude(ll.Lon())

	geo := s2.LatLngFromDegrees(ll.Lat(), ll.Lon())
	uc, err := coordconv.DefaultUTMConverter.ConvertFromGeodetic(geo, int(zone))
	if err != nil {
		return UTMCoord{}, fmt.Errorf("%w: projecting (%s) into UTM zone %d: %v", ErrConversion, ll, zone, err)
	}

	// The hemisphere comes from the converter's result, not the input
	// latitude's sign: the library snaps latitudes a hair south of the
	// equator to 0 and projects them in the north with no false northing,
	// and the hemisphere has to agree with the northing it sits next to.
	return UTMCoord{Zone: zone, Hemi: HemisphereFromCoordconv(uc.Hemisphere), Easting: uc.Easting, Northing: uc.Northing}, nil
}

// LonLatFromUTM unprojects. A valid UTM coordinate cannot land outside
// geographic bounds, so an out-of-range result is a conversion fault, not a
// validation error.
func LonLatFromUTM(u UTMCoord) (LonLat, error) {
	uc := coordconv.UTMCoord{
		Zone:       int(u.Zone),
		Hemisphere: u.Hemi.Coordconv(),
		Easting:    u.Easting,
		Northing:   u.Northing,
	}

	geo, err := coordconv.DefaultUTMConverter.ConvertToGeodetic(uc)
	if err != nil {
		return LonLat{}, fmt.Errorf("%w: unprojecting %s: %v", ErrConversion, u, err)
	}

	ll, err := NewLonLat(geo.Lng.Degrees(), geo.Lat.Degrees())
	if err != nil {
		return LonLat{}, fmt.Errorf("%w: %s unprojected to an impossible point: %v", ErrConversion, u, err)
	}
	return ll, nil
}
