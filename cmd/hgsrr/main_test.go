package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var distanceLineRe = regexp.MustCompile(`distance (\d+\.\d+)`)

const trivial2Instance = `
NAME : trivial-2
CAPACITY : 2
NODE_COORD_SECTION
1 0 0
2 1 0
3 -1 0
DEMAND_SECTION
1 0
2 1
3 1
DEPOT_SECTION
1
-1
EOF
`

func writeInstance(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "instance.vrp")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestRun_SolvesTrivial2WithinOneSecond exercises spec.md §8's "Trivial-2"
// boundary scenario end to end (CLI -> instance parsing -> genetic search),
// not just that Split alone decodes it correctly: depot at the origin, two
// customers at distance 1 on either side, capacity 2 (both fit one route).
// The optimal penalised cost is 4 regardless of whether the search settles
// on one combined route or two depot round-trips, so the emitted total
// distance must be exactly 4.00.
func TestRun_SolvesTrivial2WithinOneSecond(t *testing.T) {
	path := writeInstance(t, trivial2Instance)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-t", "1", "-r", "--deterministic", "--seed", "1", path}, &stdout, &stderr)

	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "route")

	m := distanceLineRe.FindStringSubmatch(stdout.String())
	require.NotNil(t, m, "expected a \"distance %%.2f\" line in output, got:\n%s", stdout.String())
	require.Equal(t, "4.00", m[1])
}

func TestRun_UsageErrorOnMissingArgument(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)

	require.Equal(t, 2, code)
	require.Contains(t, stderr.String(), "usage")
}

func TestRun_InstanceErrorOnMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-t", "1", "/no/such/file.vrp"}, &stdout, &stderr)

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "instance error")
}
