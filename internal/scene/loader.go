// Package scene loads a model from disk into everything the viewers need:
// the triangle model, its pickable surfaces and the files to watch.
package scene

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/raymeasure/pkg/openscad"
	"github.com/philipparndt/raymeasure/pkg/pick"
	"github.com/philipparndt/raymeasure/pkg/stl"
)

// Scene is a loaded model
type Scene struct {
	Source   string
	Model    *stl.Model
	Surfaces *pick.SurfaceSet
	// Sources are the files whose change invalidates the scene
	Sources []string

	tempFile string
}

// Load reads an .stl file or renders an .scad file
func Load(ctx context.Context, path string) (*Scene, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".stl":
		return loadSTL(path)
	case ".scad":
		return loadSCAD(ctx, path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s (expected .stl or .scad)", ext)
	}
}

func loadSTL(path string) (*Scene, error) {
	model, err := stl.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse STL file: %w", err)
	}
	return newScene(path, model, []string{path}, ""), nil
}

func loadSCAD(ctx context.Context, path string) (*Scene, error) {
	renderer := openscad.NewRenderer(filepath.Dir(path))

	deps, err := renderer.ResolveDependencies(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
	}

	fmt.Printf("Rendering OpenSCAD file: %s\n", path)
	tempFile, err := renderer.RenderTemp(ctx, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to render OpenSCAD file: %w", err)
	}

	model, err := stl.Parse(tempFile)
	if err != nil {
		os.Remove(tempFile)
		return nil, fmt.Errorf("failed to parse rendered STL: %w", err)
	}
	if model.Name == "" {
		model.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return newScene(path, model, deps, tempFile), nil
}

func newScene(source string, model *stl.Model, sources []string, tempFile string) *Scene {
	return &Scene{
		Source:   source,
		Model:    model,
		Surfaces: pick.FromModel(model),
		Sources:  sources,
		tempFile: tempFile,
	}
}

// Close removes the temporary STL of a rendered scene
func (s *Scene) Close() error {
	if s == nil || s.tempFile == "" {
		return nil
	}
	tempFile := s.tempFile
	s.tempFile = ""
	if err := os.Remove(tempFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", tempFile, err)
	}
	return nil
}
