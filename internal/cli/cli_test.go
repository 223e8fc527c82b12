package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourplan/distance"
	"github.com/katalvlaran/tourplan/tsp"
)

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "towns.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// run parses args and executes them, returning exit code and stdout.
func run(t *testing.T, ctx context.Context, args ...string) (int, string, string) {
	t.Helper()
	inv, err := ParseInvocation(args, io.Discard)
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	code := Execute(ctx, inv, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestParseInvocation_Errors(t *testing.T) {
	cases := map[string][]string{
		"no source":          {},
		"two sources":        {"--input", "a.json", "--random", "4"},
		"matrix without db":  {"--matrix", "kenya"},
		"save without db":    {"--random", "3", "--save", "x"},
		"random of one":      {"--random", "1"},
		"history without db": {"--history", "3"},
		"stray argument":     {"--random", "3", "extra"},
		"unknown flag":       {"--bogus"},
		"bad workers":        {"--random", "3", "--workers", "0"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseInvocation(args, io.Discard)
			var invErr *InvocationError
			require.True(t, errors.As(err, &invErr), "got %v", err)
			require.Equal(t, ExitInvalidInvocation, invErr.ExitCode)
		})
	}

	_, err := ParseInvocation([]string{"--help"}, io.Discard)
	require.ErrorIs(t, err, ErrHelp)
}

func TestExecute_InputDocument(t *testing.T) {
	path := writeDoc(t, `{"locations": ["a", "b"], "distances": [[0, 5], [7, 0]]}`)

	code, out, _ := run(t, context.Background(), "--input", path, "--log-level", "error")
	require.Equal(t, ExitSuccess, code)
	require.Contains(t, out, "Optimal route: A -> B -> A")
	require.Contains(t, out, "Total distance: 12.00 km")
}

func TestExecute_StartOverride(t *testing.T) {
	path := writeDoc(t, `{
	  "units": "mi",
	  "locations": ["A", "B", "C"],
	  "pairs": {"A": {"B": 1, "C": 10}, "B": {"A": 10, "C": 1}, "C": {"A": 1, "B": 10}}
	}`)

	code, out, _ := run(t, context.Background(), "-i", path, "--start", " c ", "--workers", "1", "--log-level", "error")
	require.Equal(t, ExitSuccess, code)
	require.Contains(t, out, "Optimal route: C -> A -> B -> C")
	require.Contains(t, out, "Total distance: 3.00 mi")
}

func TestExecute_InputErrors(t *testing.T) {
	cases := map[string]string{
		"missing pair":  `{"locations": ["a", "b", "c"], "distances": [[0, 1, 1], [1, 0, null], [1, 1, 0]]}`,
		"single town":   `{"locations": ["a"], "distances": [[0]]}`,
		"unknown start": `{"start": "z", "locations": ["a", "b"], "distances": [[0, 1], [1, 0]]}`,
		"bad document":  `{"locations": `,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			code, out, logs := run(t, context.Background(), "--input", writeDoc(t, body), "--log-format", "json")
			require.Equal(t, ExitInvalidInvocation, code)
			require.Empty(t, out)
			require.Contains(t, logs, "tourplan failed")
		})
	}

	code, _, _ := run(t, context.Background(), "--input", filepath.Join(t.TempDir(), "absent.json"))
	require.Equal(t, ExitInvalidInvocation, code)
}

func TestExecute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, out, _ := run(t, ctx, "--random", "6", "--log-level", "error")
	require.Equal(t, ExitFailure, code)
	require.Empty(t, out)
}

func TestExecute_StoreSaveReplayHistory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "plans.db")
	ctx := context.Background()

	code, first, _ := run(t, ctx, "--db", db, "--random", "6", "--seed", "3", "--save", "demo", "--log-level", "error")
	require.Equal(t, ExitSuccess, code)
	require.Contains(t, first, "Optimal route: Site 01 -> ")

	code, replay, _ := run(t, ctx, "--db", db, "--matrix", "demo", "--workers", "3", "--log-level", "error")
	require.Equal(t, ExitSuccess, code)
	require.Equal(t, first, replay)

	code, _, _ = run(t, ctx, "--db", db, "--matrix", "absent", "--log-level", "error")
	require.Equal(t, ExitInvalidInvocation, code)

	code, history, _ := run(t, ctx, "--db", db, "--history", "5")
	require.Equal(t, ExitSuccess, code)
	lines := strings.Split(strings.TrimSpace(history), "\n")
	require.Len(t, lines, 2)
}

func TestExecute_Export(t *testing.T) {
	out := filepath.Join(t.TempDir(), "export.json")

	code, printed, _ := run(t, context.Background(), "--random", "4", "--seed", "9", "--symmetric", "--export", out, "--log-level", "error")
	require.Equal(t, ExitSuccess, code)

	doc, err := distance.LoadFile(out)
	require.NoError(t, err)
	m, err := doc.Matrix()
	require.NoError(t, err)
	start, err := doc.StartLocation()
	require.NoError(t, err)
	require.Equal(t, tsp.Location("Site 01"), start)

	sol, err := tsp.Solve(start, m.Names(), m)
	require.NoError(t, err)
	require.Contains(t, printed, "Optimal route: "+sol.Route.String())
}
