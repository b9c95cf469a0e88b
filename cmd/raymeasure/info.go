package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/raymeasure/internal/scene"
	"github.com/philipparndt/raymeasure/pkg/analysis"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a model",
	Long:  "Show dimensions, triangle count, surface area, and edge and facet statistics of an .stl or .scad file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	s, err := scene.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer s.Close()

	model := s.Model
	result := analysis.AnalyzeModel(model)

	fmt.Println("Model Information")
	fmt.Println("=================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n", s.Source)
	if len(s.Sources) > 1 {
		fmt.Printf("Dependencies: %d\n", len(s.Sources)-1)
	}
	fmt.Println()

	fmt.Println("Model Statistics:")
	fmt.Printf("  Solids: %d\n", result.SolidCount)
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n", result.BoundingBox.Diagonal())
	fmt.Printf("  Volume: %.6f cubic units\n\n", result.Volume)

	printStats("Edge Lengths", "units", result.Edges)
	fmt.Println()
	printStats("Facet Areas", "square units", result.Areas)
	return nil
}

func printStats(title, unit string, stats analysis.Stats) {
	fmt.Printf("%s:\n", title)
	fmt.Printf("  Minimum: %.6f %s\n", stats.Min, unit)
	fmt.Printf("  Maximum: %.6f %s\n", stats.Max, unit)
	fmt.Printf("  Average: %.6f %s\n", stats.Mean, unit)
	fmt.Printf("  Std Dev: %.6f %s\n", stats.StdDev, unit)
}
