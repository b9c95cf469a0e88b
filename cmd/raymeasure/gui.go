package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/cobra"

	"github.com/philipparndt/raymeasure/internal/measurement"
	"github.com/philipparndt/raymeasure/internal/scene"
	"github.com/philipparndt/raymeasure/pkg/analysis"
	"github.com/philipparndt/raymeasure/pkg/viewer"
)

var guiCmd = &cobra.Command{
	Use:   "gui [file]",
	Short: "Open a model in the fyne measurement viewer",
	Long:  "Same interaction as view, rendered in software inside a fyne window.",
	Args:  cobra.ExactArgs(1),
	RunE:  runGUI,
}

func init() {
	rootCmd.AddCommand(guiCmd)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	current, err := scene.Load(ctx, args[0])
	if err != nil {
		return err
	}
	defer func() { current.Close() }()

	a := fyneapp.NewWithID("io.github.philipparndt.raymeasure")
	w := a.NewWindow("raymeasure - " + filepath.Base(args[0]))

	view := viewer.NewMeasureView(current.Model, current.Surfaces, cfg.Measure.Modifier, float32(cfg.Label.FontSize))
	status := widget.NewLabel(statusText(view.Session()))
	view.OnChange = func() {
		status.SetText(statusText(view.Session()))
	}

	if dc, ok := w.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(view.KeyDown)
		dc.SetOnKeyUp(view.KeyUp)
	} else {
		log.Printf("Warning: no desktop keyboard, measurement mode is unavailable")
	}
	w.Canvas().SetOnTypedKey(view.TypedKey)

	w.SetContent(container.NewBorder(nil, status, nil, nil, view))
	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	w.SetOnClosed(cancel)

	if cfg.Watch.Enabled {
		reloader, err := scene.NewReloader(current, cfg.Watch.Debounce)
		if err != nil {
			log.Printf("Warning: Failed to set up file watching: %v", err)
		} else {
			defer reloader.Close()
			go pollReload(ctx, reloader, func(s *scene.Scene) {
				old := current
				current = s
				view.SetModel(s.Model, s.Surfaces)
				old.Close()
			})
		}
	}

	w.ShowAndRun()
	return nil
}

// pollReload polls the reloader on the fyne thread until ctx ends
func pollReload(ctx context.Context, reloader *scene.Reloader, apply func(*scene.Scene)) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fyne.Do(func() {
				res, ok := reloader.Poll(ctx)
				if !ok {
					return
				}
				if res.Err != nil {
					log.Printf("Error reloading model: %v", res.Err)
					return
				}
				apply(res.Scene)
				fmt.Printf("Model reloaded successfully in %.2fs!\n", res.Elapsed.Seconds())
			})
		}
	}
}

func statusText(session *measurement.Session) string {
	mode := "navigate"
	if session.InMeasurementMode() {
		mode = "measure (" + session.State().String() + ")"
	}

	summary := analysis.Summarize(session.Store().List())
	if summary.Completed == 0 {
		return fmt.Sprintf("Mode: %s | no measurements", mode)
	}
	return fmt.Sprintf("Mode: %s | %d measurement(s), total %s, longest #%d %s",
		mode, summary.Completed,
		measurement.FormatDistance(summary.Distances.Sum),
		summary.Longest.ID, summary.Longest.Label.Text)
}
