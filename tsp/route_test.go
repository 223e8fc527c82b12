package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourplan/tsp"
)

func TestValidateRoute(t *testing.T) {
	locs := []tsp.Location{"A", "B", "C"}

	cases := []struct {
		name  string
		route tsp.Route
		start tsp.Location
		want  error
	}{
		{"valid", tsp.Route{"A", "C", "B", "A"}, "A", nil},
		{"too short", tsp.Route{"A", "B", "A"}, "A", tsp.ErrInvalidRoute},
		{"not closed", tsp.Route{"A", "B", "C", "B"}, "A", tsp.ErrInvalidRoute},
		{"wrong start", tsp.Route{"B", "A", "C", "B"}, "A", tsp.ErrInvalidRoute},
		{"revisit", tsp.Route{"A", "B", "B", "A"}, "A", tsp.ErrInvalidRoute},
		{"unknown", tsp.Route{"A", "B", "Z", "A"}, "A", tsp.ErrInvalidRoute},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tsp.ValidateRoute(tc.route, tc.start, locs)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}

	require.ErrorIs(t, tsp.ValidateRoute(tsp.Route{"A", "A"}, "A", []tsp.Location{"A"}), tsp.ErrInvalidInput)
}

func TestRouteCost(t *testing.T) {
	locs := []tsp.Location{"A", "B"}
	g := newGrid(locs, [][]float64{{0, 5}, {7, 0}})

	cost, err := tsp.RouteCost(tsp.Route{"A", "B", "A"}, g)
	require.NoError(t, err)
	require.Equal(t, 12.0, cost)

	_, err = tsp.RouteCost(tsp.Route{"A", "Z", "A"}, g)
	require.ErrorIs(t, err, tsp.ErrIncompleteDistanceData)

	_, err = tsp.RouteCost(tsp.Route{"A"}, g)
	require.ErrorIs(t, err, tsp.ErrInvalidRoute)

	_, err = tsp.RouteCost(tsp.Route{"A", "B"}, nil)
	require.ErrorIs(t, err, tsp.ErrInvalidInput)
}

func TestRoute_String(t *testing.T) {
	require.Equal(t, "A -> B -> A", tsp.Route{"A", "B", "A"}.String())
	require.Equal(t, "", tsp.Route(nil).String())
}
