package distance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourplan/distance"
	"github.com/katalvlaran/tourplan/tsp"
)

func TestNormalize(t *testing.T) {
	cases := map[string]tsp.Location{
		"nairobi":            "Nairobi",
		"  NAKURU  ":         "Nakuru",
		"kisumu\t  town":     "Kisumu Town",
		"eldoret":            "Eldoret",
		"   ":                "",
		"":                   "",
		"mombasa old  TOWN ": "Mombasa Old Town",
	}
	for in, want := range cases {
		require.Equal(t, want, distance.Normalize(in), "input %q", in)
	}
}

func TestNormalizeAll(t *testing.T) {
	got, err := distance.NormalizeAll([]string{" nairobi", "NAKURU", "kisumu"})
	require.NoError(t, err)
	require.Equal(t, []tsp.Location{"Nairobi", "Nakuru", "Kisumu"}, got)

	_, err = distance.NormalizeAll([]string{"Kisumu", "kisumu "})
	require.ErrorIs(t, err, distance.ErrDuplicateName)

	_, err = distance.NormalizeAll([]string{"Kisumu", "  "})
	require.ErrorIs(t, err, distance.ErrEmptyName)
}
