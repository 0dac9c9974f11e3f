package oo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewLonLat_validation(t *testing.T) {
	var cases = []struct {
		lon, lat float64
		ok       bool
	}{
		{0, 0, true},
		{-180, -90, true},
		{180, 90, true},
		{200, 0, false},
		{-180.0001, 0, false},
		{0, 90.0001, false},
		{0, -91, false},
		{math.NaN(), 0, false},
		{0, math.NaN(), false},
		{math.Inf(1), 0, false},
	}

	for _, tc := range cases {
		var _, err = NewLonLat(tc.lon, tc.lat)
		if tc.ok {
			assert.NoErrorf(t, err, "(%v, %v) should be in range", tc.lon, tc.lat)
		} else {
			assert.ErrorIsf(t, err, ErrBadInput, "(%v, %v) should be out of range", tc.lon, tc.lat)
		}
	}
}

func Test_LonLat_DeluxeString(t *testing.T) {
	var ll, err = NewLonLat(-99.09357951534054, 19.29675919163688)
	require.NoError(t, err)

	assert.Equal(t, "Lon, lat: -99.09358, 19.29676\nLat/lon: 19.29676/-99.09358", ll.DeluxeString())
	assert.Equal(t, "-99.09358, 19.29676", ll.String())
}
