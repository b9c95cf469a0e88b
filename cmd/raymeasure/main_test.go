package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint(" -0.5, 0.25")
	require.NoError(t, err)
	assert.Equal(t, [2]float64{-0.5, 0.25}, p)

	for _, bad := range []string{"", "1", "1,2,3", "a,0", "0,1.5"} {
		_, err := parsePoint(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("640X480")
	require.NoError(t, err)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)

	for _, bad := range []string{"640", "x480", "640x", "0x10", "-1x10"} {
		_, _, err := parseSize(bad)
		assert.Error(t, err, bad)
	}
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"view", "gui", "measure", "info", "edges", "config"} {
		assert.True(t, names[want], want)
	}
}

func TestEdgesRejectsNegativeCount(t *testing.T) {
	old := edgesCount
	t.Cleanup(func() { edgesCount = old })

	edgesCount = -1
	err := runEdges(edgesCmd, []string{"does-not-matter.stl"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--count")
}
