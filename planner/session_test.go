package planner_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/travelplanner/core"
	"github.com/katalvlaran/travelplanner/dijkstra"
	"github.com/katalvlaran/travelplanner/planner"
)

const prompts = "Enter number of cities: " +
	"Enter number of routes: " +
	"Enter routes (City1 City2 Distance):\n" +
	"Enter source city: " +
	"Enter destination city: "

func run(t *testing.T, input string, cfg planner.Config) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := planner.Run(strings.NewReader(input), &out, cfg)

	return out.String(), err
}

// TestRun_Transcripts pins the full interactive output of the reference scenarios.
func TestRun_Transcripts(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "four cities",
			input: "4\n5\n0 1 4\n0 2 1\n2 1 2\n1 3 1\n2 3 5\n0\n3\n",
			want: prompts +
				"\nShortest Distance from City 0 to City 3: 4 km\n" +
				"Path: 0 -> 2 -> 1 -> 3\n",
		},
		{
			name:  "single city",
			input: "1 0 0 0",
			want: prompts +
				"\nShortest Distance from City 0 to City 0: 0 km\n" +
				"Path: 0\n",
		},
		{
			name:  "path totals the largest distance",
			input: "3 2  0 1 9223372036854775806  1 2 1  0 2",
			want: prompts +
				"\nShortest Distance from City 0 to City 2: 9223372036854775807 km\n" +
				"Path: 0 -> 1 -> 2\n",
		},
		{
			name:  "disconnected destination",
			input: "4 2\n0 1 2\n2 3 1\n0 3\n",
			want:  prompts + "\nNo path exists from City 0 to City 3\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.input, planner.DefaultConfig())
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestRun_Quiet(t *testing.T) {
	cfg := planner.DefaultConfig()
	cfg.Quiet = true

	out, err := run(t, "3 2  0 1 5  1 2 5  2 0", cfg)
	require.NoError(t, err)
	assert.Equal(t, "\nShortest Distance from City 2 to City 0: 10 km\nPath: 2 -> 1 -> 0\n", out)
}

// TestRun_Errors covers every input-validation failure at the boundary.
func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		cfg   planner.Config
		want  error
	}{
		{"empty input", "", planner.DefaultConfig(), planner.ErrMalformedInput},
		{"non-integer city count", "four", planner.DefaultConfig(), planner.ErrMalformedInput},
		{"truncated routes", "3 2 0 1 4", planner.DefaultConfig(), planner.ErrMalformedInput},
		{"bad distance", "2 1 0 1 far", planner.DefaultConfig(), planner.ErrMalformedInput},
		{"missing destination", "2 1 0 1 4 0", planner.DefaultConfig(), planner.ErrMalformedInput},
		{"zero cities", "0", planner.DefaultConfig(), core.ErrInvalidCityCount},
		{"too many cities", "11", planner.DefaultConfig(), core.ErrCapacityExceeded},
		{"custom capacity", "5", planner.Config{MaxCities: 4}, core.ErrCapacityExceeded},
		{"negative routes", "2 -1", planner.DefaultConfig(), planner.ErrNegativeRoutes},
		{"route city out of range", "2 1 0 2 4", planner.DefaultConfig(), core.ErrInvalidCity},
		{"negative distance", "2 1 0 1 -4", planner.DefaultConfig(), core.ErrInvalidWeight},
		{"bad source", "2 1 0 1 4 7 0", planner.DefaultConfig(), dijkstra.ErrInvalidSource},
		{"bad destination", "2 1 0 1 4 0 -1", planner.DefaultConfig(), dijkstra.ErrInvalidDestination},
		{"distance overflow", "3 2 0 1 9223372036854775807 1 2 1 0 2", planner.DefaultConfig(), dijkstra.ErrDistanceOverflow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.input, tc.cfg)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRun_RouteErrorNamesLine(t *testing.T) {
	_, err := run(t, "3 2 0 1 1 1 9 1", planner.DefaultConfig())
	require.ErrorIs(t, err, core.ErrInvalidCity)
	assert.Contains(t, err.Error(), "route 2")
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRun_WriteError(t *testing.T) {
	err := planner.Run(strings.NewReader("1 0 0 0"), failingWriter{}, planner.DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestSession_Steps(t *testing.T) {
	var out bytes.Buffer
	s := planner.NewSession(strings.NewReader("3 1 0 2 6 2 0"), &out, planner.Config{Quiet: true})

	g, err := s.ReadGraph()
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumCities())
	assert.Equal(t, 1, g.NumRoads())

	from, to, err := s.ReadQuery()
	require.NoError(t, err)
	assert.Equal(t, core.City(2), from)
	assert.Equal(t, core.City(0), to)

	require.NoError(t, s.Report(g, from, to))
	assert.Equal(t, "\nShortest Distance from City 2 to City 0: 6 km\nPath: 2 -> 0\n", out.String())
}
