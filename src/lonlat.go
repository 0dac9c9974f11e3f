package oo

import "fmt"

// LonLat is a WGS84 geographic coordinate. Construct with NewLonLat; a
// LonLat that exists is in range.
type LonLat struct {
	lon float64
	lat float64
}

// NewLonLat validates the ranges, both bounds inclusive. NaN fails.
func NewLonLat(lon, lat float64) (LonLat, error) {
	if !(lon >= -180 && lon <= 180) || !(lat >= -90 && lat <= 90) {
		return LonLat{}, fmt.Errorf("%w: expected lon and lat in ranges (-180..180, -90..90) but got (%v, %v)", ErrBadInput, lon, lat)
	}
	return LonLat{lon: lon, lat: lat}, nil
}

func (ll LonLat) Lon() float64 { return ll.lon }
func (ll LonLat) Lat() float64 { return ll.lat }

func (ll LonLat) String() string {
	return fmt.Sprintf("%.5f, %.5f", ll.lon, ll.lat)
}

// DeluxeString gives the point in both orderings, because half of all
// software wants the other one. Five decimals is roughly a meter.
func (ll LonLat) DeluxeString() string {
	tidyLon := fmt.Sprintf("%.5f", ll.lon)
	tidyLat := fmt.Sprintf("%.5f", ll.lat)

	return fmt.Sprintf("Lon, lat: %s, %s\nLat/lon: %s/%s", tidyLon, tidyLat, tidyLat, tidyLon)
}
