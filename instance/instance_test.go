package instance_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/hgsrr/instance"
	"github.com/stretchr/testify/require"
)

const trivial2 = `
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

func TestLoad_ParsesTrivial2(t *testing.T) {
	p, err := instance.Load(strings.NewReader(trivial2))
	require.NoError(t, err)

	require.Equal(t, 2, p.N())
	require.Equal(t, 2, p.Capacity())
	require.Equal(t, 1, p.Demand(1))
	require.Equal(t, 1, p.Demand(2))
	require.Equal(t, 0, p.Demand(0))
}

func TestLoad_DefaultsDepotToSmallestID(t *testing.T) {
	src := `
CAPACITY : 5
NODE_COORD_SECTION
1 0 0
2 3 4
DEMAND_SECTION
2 1
`
	p, err := instance.Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 1, p.N())
	require.Equal(t, 0.0, p.Coord(0).X)
	require.Equal(t, 0.0, p.Coord(0).Y)
}

func TestLoad_MissingCapacity(t *testing.T) {
	src := `
NODE_COORD_SECTION
1 0 0
2 1 0
`
	_, err := instance.Load(strings.NewReader(src))
	require.ErrorIs(t, err, instance.ErrMissingCapacity)
}

func TestLoad_NoNodes(t *testing.T) {
	src := `
CAPACITY : 5
`
	_, err := instance.Load(strings.NewReader(src))
	require.ErrorIs(t, err, instance.ErrNoNodes)
}

func TestLoad_MalformedNodeLine(t *testing.T) {
	src := `
CAPACITY : 5
NODE_COORD_SECTION
1 0
`
	_, err := instance.Load(strings.NewReader(src))
	require.ErrorIs(t, err, instance.ErrMalformedLine)
}
