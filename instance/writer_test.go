package instance_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sepline/core"
	"github.com/katalvlaran/sepline/instance"
	"github.com/katalvlaran/sepline/lines"
)

func TestOutputName(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"instance01", "greedy_solution01"},
		{"instance7.txt", "greedy_solution07"},
		{"data/run3/instance12", "greedy_solution12"},
		{"in1st2", "greedy_solution12"},
		{"instance123", "greedy_solution123"},
		{"points.txt", "greedy_solution00"},
		{"instance007", "greedy_solution07"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, instance.OutputName(instance.DefaultPrefix, tc.path))
		})
	}
}

func TestWrite(t *testing.T) {
	ls := []lines.Line{
		{Axis: core.X, Coord: 1},
		{Axis: core.Y, Coord: 0.5},
		{Axis: core.X, Coord: -2.5},
	}
	cases := []struct {
		name      string
		precision int
		want      string
	}{
		{"Default", -1, "3\nv 1.0\nh 0.5\nv -2.5\n"},
		{"One", 1, "3\nv 1.0\nh 0.5\nv -2.5\n"},
		{"Six", 6, "3\nv 1.000000\nh 0.500000\nv -2.500000\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, instance.Write(&buf, ls, tc.precision))
			assert.Equal(t, tc.want, buf.String())
		})
	}

	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, nil, 1))
	assert.Equal(t, "0\n", buf.String())
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path, err := instance.WriteFile(dir, "greedy_solution03", []lines.Line{{Axis: core.Y, Coord: 2.5}}, 1)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "greedy_solution03"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1\nh 2.5\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file left behind")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, instance.FileMode, info.Mode().Perm(), "solutions are readable by others")

	// Overwriting keeps the same mode.
	_, err = instance.WriteFile(dir, "greedy_solution03", nil, 1)
	require.NoError(t, err)
	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	_, err = instance.WriteFile(filepath.Join(dir, "missing"), "x", nil, 1)
	require.Error(t, err)
}

func TestWritePoints_ReadBack(t *testing.T) {
	pts := []core.Point{{ID: 0, X: -1, Y: 4}, {ID: 1, X: 3, Y: 0}}
	var buf bytes.Buffer
	require.NoError(t, instance.WritePoints(&buf, pts))
	assert.Equal(t, "2\n-1 4\n3 0\n", buf.String())

	got, err := instance.Read(&buf, 0)
	require.NoError(t, err)
	assert.Equal(t, pts, got)
}
