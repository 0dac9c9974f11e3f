// Package oo converts between the three coordinate forms used when working
// with Maxar ARD imagery: WGS84 lon/lat, UTM, and MGS grid cells (a 12-level
// quadkey over a zone-wide grid of 5 km cells).
//
// Whatever form a coordinate arrives in, it is reduced to lon/lat and the
// UTM and MGS forms are derived fresh from that. So the zone written out is
// always the canonical zone for the point's longitude, never the zone the
// input happened to arrive in. Near zone boundaries this silently moves a
// non-canonical cell reference into the neighboring zone's grid, shifting
// its centerpoint by up to about half a cell width, with no warning. See
// MessageFromUTM for the longer discussion.
package oo
