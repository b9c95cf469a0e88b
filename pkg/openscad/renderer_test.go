package openscad

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestResolveDependencies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.scad"), `
use <lib/parts.scad>
include <./common.scad>
// use <commented.scad>
include <missing.scad>
cube(10);
`)
	writeFile(t, filepath.Join(dir, "lib", "parts.scad"), "include <../common.scad>\n")
	writeFile(t, filepath.Join(dir, "common.scad"), "use <lib/parts.scad>\n")

	r := NewRenderer(dir)
	deps, err := r.ResolveDependencies("main.scad")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "main.scad"),
		filepath.Join(dir, "lib", "parts.scad"),
		filepath.Join(dir, "common.scad"),
	}, deps)
}

func TestResolveDependenciesMissingRoot(t *testing.T) {
	r := NewRenderer(t.TempDir())
	_, err := r.ResolveDependencies("nope.scad")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRenderWithoutBinary(t *testing.T) {
	r := NewRenderer(t.TempDir())
	r.Binary = "raymeasure-no-such-openscad"

	_, err := r.RenderTemp(context.Background(), "main.scad")
	assert.ErrorIs(t, err, ErrNotInstalled)
}
