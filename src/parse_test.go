package oo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseMGS(t *testing.T) {
	var mgs, err = ParseMGS("14/033113131312")
	require.NoError(t, err)

	assert.Equal(t, uint8(14), mgs.Zone)
	assert.Equal(t, [mgsLevels]uint8{0, 3, 3, 1, 1, 3, 1, 3, 1, 3, 1, 2}, mgs.Key)
	assert.Equal(t, "14/033113131312", mgs.String())
}

func Test_ParseMGS_rejects(t *testing.T) {
	var bad = []string{
		"14033113131312",   // no slash
		"14/03311313131",   // 11 digits
		"14/0331131313122", // 13 digits
		"14/033113131314",  // digit out of base 4
		"14/0331131313ab",  // not digits at all
		"0/033113131312",   // zone below range
		"61/033113131312",  // zone above range
		"x/033113131312",
		"/033113131312",
	}

	for _, s := range bad {
		var _, err = ParseMGS(s)
		assert.ErrorIsf(t, err, ErrBadInput, "%q should not parse", s)
	}
}

func Test_ParseUTMZone(t *testing.T) {
	var zone, hemi, err = ParseUTMZone("23N")
	require.NoError(t, err)
	assert.Equal(t, uint8(23), zone)
	assert.Equal(t, HemisphereNorth, hemi)

	zone, hemi, err = ParseUTMZone("42S")
	require.NoError(t, err)
	assert.Equal(t, uint8(42), zone)
	assert.Equal(t, HemisphereSouth, hemi)

	// A bare zone defaults to the north
	zone, hemi, err = ParseUTMZone("1")
	require.NoError(t, err)
	assert.Equal(t, uint8(1), zone)
	assert.Equal(t, HemisphereNorth, hemi)
}

func Test_ParseUTMZone_rejects(t *testing.T) {
	var bad = []string{"", "1234", "99N", "0S", "61", "N", "abc", "14X"}

	for _, s := range bad {
		var _, _, err = ParseUTMZone(s)
		assert.ErrorIsf(t, err, ErrBadInput, "%q should not parse", s)
	}
}
