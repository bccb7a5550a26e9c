package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "In Progress", "Resolved"} {
		s, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, Status(valid), s)
	}

	for _, invalid := range []string{"", "pending", "Done", "InProgress", "resolved "} {
		_, err := ParseStatus(invalid)
		assert.Error(t, err, "expected %q to be rejected", invalid)
	}
}

func TestValidateCoordinates(t *testing.T) {
	valid := [][2]float64{
		{0, 0},
		{-90, -180},
		{90, 180},
		{18.5204, 73.8567},
		{-45.5, 120.25},
	}
	for _, c := range valid {
		assert.NoError(t, ValidateCoordinates(c[0], c[1]), "(%v, %v)", c[0], c[1])
	}

	invalid := [][2]float64{
		{90.0001, 0},
		{-91, 0},
		{0, 180.5},
		{0, -181},
		{120, 200},
	}
	for _, c := range invalid {
		assert.Error(t, ValidateCoordinates(c[0], c[1]), "(%v, %v)", c[0], c[1])
	}
}
