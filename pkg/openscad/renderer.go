// Package openscad renders .scad sources to STL with the openscad binary and
// resolves the files a source depends on.
package openscad

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrNotInstalled is returned when the openscad binary cannot be found
var ErrNotInstalled = errors.New("openscad not found in PATH, install it from https://openscad.org/")

// dependencyPattern matches `use <file>` and `include <file>` statements
var dependencyPattern = regexp.MustCompile(`^\s*(?:use|include)\s*<([^>]+)>`)

// Renderer renders OpenSCAD files relative to a working directory
type Renderer struct {
	workDir string
	// Binary is the openscad executable, looked up in PATH
	Binary string
}

// NewRenderer creates a new OpenSCAD renderer
func NewRenderer(workDir string) *Renderer {
	return &Renderer{
		workDir: workDir,
		Binary:  "openscad",
	}
}

// RenderToSTL renders scadFile into outputFile
func (r *Renderer) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	binary, err := exec.LookPath(r.Binary)
	if err != nil {
		return ErrNotInstalled
	}

	cmd := exec.CommandContext(ctx, binary, "-o", outputFile, r.abs(scadFile))
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var msg strings.Builder
		if stderr.Len() > 0 {
			msg.WriteString("\nstderr: ")
			msg.WriteString(strings.TrimSpace(stderr.String()))
		}
		if stdout.Len() > 0 {
			msg.WriteString("\nstdout: ")
			msg.WriteString(strings.TrimSpace(stdout.String()))
		}
		return fmt.Errorf("failed to render %s: %w%s", scadFile, err, msg.String())
	}
	return nil
}

// RenderTemp renders scadFile to a new temporary STL and returns its path.
// The caller removes the file.
func (r *Renderer) RenderTemp(ctx context.Context, scadFile string) (string, error) {
	tmp, err := os.CreateTemp("", "raymeasure_*.stl")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := tmp.Name()
	tmp.Close()

	if err := r.RenderToSTL(ctx, scadFile, path); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// ResolveDependencies returns scadFile followed by every file it pulls in
// through use/include, transitively. Paths are absolute; cycles are cut.
func (r *Renderer) ResolveDependencies(scadFile string) ([]string, error) {
	visited := make(map[string]bool)
	var deps []string

	var visit func(file string, root bool) error
	visit = func(file string, root bool) error {
		if visited[file] {
			return nil
		}
		visited[file] = true

		refs, err := r.parseDependencies(file)
		if err != nil {
			if !root && errors.Is(err, os.ErrNotExist) {
				// openscad reports missing libraries itself
				return nil
			}
			return err
		}
		deps = append(deps, file)

		for _, ref := range refs {
			if err := visit(ref, false); err != nil {
				return err
			}
		}
		return nil
	}

	if err := visit(r.abs(scadFile), true); err != nil {
		return nil, err
	}
	return deps, nil
}

func (r *Renderer) parseDependencies(scadFile string) ([]string, error) {
	file, err := os.Open(scadFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", scadFile, err)
	}
	defer file.Close()

	var deps []string
	scadDir := filepath.Dir(scadFile)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		if m := dependencyPattern.FindStringSubmatch(line); m != nil {
			deps = append(deps, r.resolveDepPath(strings.TrimSpace(m[1]), scadDir))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", scadFile, err)
	}
	return deps, nil
}

// resolveDepPath tries the including file's directory, then the work dir
func (r *Renderer) resolveDepPath(depPath, currentDir string) string {
	if filepath.IsAbs(depPath) {
		return filepath.Clean(depPath)
	}

	local := filepath.Join(currentDir, depPath)
	if strings.HasPrefix(depPath, "./") || strings.HasPrefix(depPath, "../") {
		return filepath.Clean(local)
	}
	if _, err := os.Stat(local); err == nil {
		return filepath.Clean(local)
	}
	return filepath.Clean(filepath.Join(r.workDir, depPath))
}

func (r *Renderer) abs(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	if abs, err := filepath.Abs(filepath.Join(r.workDir, file)); err == nil {
		return abs
	}
	return filepath.Join(r.workDir, file)
}
