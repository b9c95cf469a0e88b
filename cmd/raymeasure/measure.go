package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/raymeasure/internal/measurement"
	"github.com/philipparndt/raymeasure/internal/scene"
	"github.com/philipparndt/raymeasure/pkg/analysis"
	"github.com/philipparndt/raymeasure/pkg/geometry"
	"github.com/philipparndt/raymeasure/pkg/pick"
	"github.com/philipparndt/raymeasure/pkg/viewer"
)

var (
	measureFrom  string
	measureTo    string
	measureMoves []string
	measurePNG   string
	measureSize  string
)

var measureCmd = &cobra.Command{
	Use:   "measure [file]",
	Short: "Measure between two pointer positions without opening a window",
	Long: `Replay a measurement gesture against the default view of a model.
Pointer positions are normalized device coordinates "x,y" in [-1, 1] with y up.
The measure key is pressed, --from is clicked, the pointer travels over every
--move and --to is clicked before the key is released.`,
	Args: cobra.ExactArgs(1),
	RunE: runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().StringVar(&measureFrom, "from", "", "first pointer position x,y")
	measureCmd.Flags().StringVar(&measureTo, "to", "", "second pointer position x,y")
	measureCmd.Flags().StringArrayVar(&measureMoves, "move", nil, "intermediate pointer position x,y (repeatable)")
	measureCmd.Flags().StringVar(&measurePNG, "png", "", "write a snapshot of the result to this file")
	measureCmd.Flags().StringVar(&measureSize, "size", "", "snapshot size WxH (default from config)")

	_ = measureCmd.MarkFlagRequired("from")
	_ = measureCmd.MarkFlagRequired("to")
}

func runMeasure(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	from, err := parsePoint(measureFrom)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	to, err := parsePoint(measureTo)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}
	moves := make([][2]float64, 0, len(measureMoves))
	for _, m := range measureMoves {
		p, err := parsePoint(m)
		if err != nil {
			return fmt.Errorf("--move: %w", err)
		}
		moves = append(moves, p)
	}

	width, height := cfg.Snapshot.Width, cfg.Snapshot.Height
	if measureSize != "" {
		if width, height, err = parseSize(measureSize); err != nil {
			return fmt.Errorf("--size: %w", err)
		}
	}

	s, err := scene.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer s.Close()

	camera := viewer.NewCamera(s.Model.BoundingBox(), float64(width), float64(height))
	provider := pick.NewProvider(camera, s.Surfaces)
	session := measurement.NewSession(provider, camera, nil)
	dispatcher := measurement.NewDispatcher()
	dispatcher.Bind(session, cfg.Measure.Modifier)
	overlay := measurement.NewOverlay()

	if verbose {
		for _, p := range []struct {
			flag  string
			point [2]float64
		}{{"--from", from}, {"--to", to}} {
			if hit, ok := provider.Pick(p.point[0], p.point[1]); ok {
				fmt.Printf("%-6s hits solid %q triangle %d at %s\n",
					p.flag, hit.Surface, hit.Triangle, analysis.FormatVector(hit.Point))
			}
		}
	}

	path := make([]measurement.Pointer, 0, len(moves))
	for _, m := range moves {
		path = append(path, measurement.Pointer{X: m[0], Y: m[1]})
	}
	_, err = measurement.Replay(dispatcher, session, cfg.Measure.Modifier,
		measurement.Pointer{X: from[0], Y: from[1]}, path, measurement.Pointer{X: to[0], Y: to[1]},
		func(ev measurement.Event) {
			overlay.Sync(session.Store())
			if verbose {
				fmt.Printf("%-12s state=%s\n", ev.Type, session.State())
			}
		})
	switch {
	case errors.Is(err, measurement.ErrStartMissed):
		return fmt.Errorf("no surface under --from %s", measureFrom)
	case errors.Is(err, measurement.ErrEndMissed):
		return fmt.Errorf("no surface under --to %s", measureTo)
	case err != nil:
		return err
	}

	measurements := session.Store().List()

	fmt.Println("Measurements")
	fmt.Println("============")
	for _, m := range measurements {
		fmt.Printf("#%d %s -> %s  %s\n",
			m.ID, analysis.FormatVector(m.Start), analysis.FormatVector(m.End), m.Label.Text)
		printNearest(s, m)
	}

	summary := analysis.Summarize(measurements)
	fmt.Printf("\nCompleted: %d of %d\n", summary.Completed, summary.Count)
	if summary.Completed > 0 {
		fmt.Printf("Total: %s\n", measurement.FormatDistance(summary.Distances.Sum))
	}

	if measurePNG != "" {
		img := viewer.Snapshot(s.Model, camera, overlay)
		if err := viewer.WritePNG(measurePNG, img); err != nil {
			return err
		}
		fmt.Printf("Snapshot written to %s\n", measurePNG)
	}
	return nil
}

// printNearest shows how far each endpoint is from the closest model vertex
func printNearest(s *scene.Scene, m measurement.Measurement) {
	for _, end := range []struct {
		name  string
		point geometry.Vector3
	}{{"start", m.Start}, {"end", m.End}} {
		vertex, dist := analysis.FindNearestVertex(s.Model, end.point)
		if dist > 0 {
			fmt.Printf("   %-5s nearest vertex %s (%.6f away)\n", end.name, analysis.FormatVector(vertex), dist)
		}
	}
}

func parsePoint(value string) ([2]float64, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return [2]float64{}, fmt.Errorf("expected x,y, got %q", value)
	}
	var p [2]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return [2]float64{}, fmt.Errorf("invalid coordinate %q: %w", part, err)
		}
		if v < -1 || v > 1 {
			return [2]float64{}, fmt.Errorf("coordinate %v outside [-1, 1]", v)
		}
		p[i] = v
	}
	return p, nil
}

func parseSize(value string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(value), "x")
	if !ok {
		return 0, 0, fmt.Errorf("expected WxH, got %q", value)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width %q", w)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height %q", h)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("size must be positive, got %dx%d", width, height)
	}
	return width, height, nil
}
