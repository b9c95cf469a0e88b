package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/raymeasure/internal/scene"
	"github.com/philipparndt/raymeasure/pkg/analysis"
)

var (
	edgesCount     int
	edgesLongest   bool
	edgesShortest  bool
	edgesMinLength float64
	edgesMaxLength float64
)

var edgesCmd = &cobra.Command{
	Use:   "edges [file]",
	Short: "List model edges by length",
	Long:  "List triangle edges of a model: the longest, the shortest, or those within a length range.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesLongest, "longest", "l", false, "Show longest edges")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest edges")
	edgesCmd.Flags().Float64Var(&edgesMinLength, "min", 0.0, "Minimum edge length filter")
	edgesCmd.Flags().Float64Var(&edgesMaxLength, "max", 0.0, "Maximum edge length filter")
}

func runEdges(cmd *cobra.Command, args []string) error {
	if edgesCount < 0 {
		return fmt.Errorf("--count must not be negative, got %d", edgesCount)
	}
	if edgesLongest && edgesShortest {
		return fmt.Errorf("--longest and --shortest are mutually exclusive")
	}
	if edgesMaxLength > 0 && edgesMaxLength < edgesMinLength {
		return fmt.Errorf("--max %.6f is below --min %.6f", edgesMaxLength, edgesMinLength)
	}

	s, err := scene.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer s.Close()

	result := analysis.AnalyzeModel(s.Model)

	var edges []analysis.EdgeInfo
	var title string

	switch {
	case edgesLongest:
		edges = analysis.FindLongestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	case edgesShortest:
		edges = analysis.FindShortestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	case edgesMaxLength > 0:
		edges = analysis.FindEdgesByLength(result, edgesMinLength, edgesMaxLength)
		title = fmt.Sprintf("Edges between %.6f and %.6f units (found %d)", edgesMinLength, edgesMaxLength, len(edges))
		if len(edges) > edgesCount {
			edges = edges[:edgesCount]
		}
	default:
		edges = result.AllEdges
		title = fmt.Sprintf("All Edges (showing first %d of %d)", min(edgesCount, len(edges)), len(edges))
		if len(edges) > edgesCount {
			edges = edges[:edgesCount]
		}
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Total edges in model: %d\n", result.EdgeCount)
	fmt.Printf("Min edge length: %.6f units\n", result.Edges.Min)
	fmt.Printf("Max edge length: %.6f units\n", result.Edges.Max)
	fmt.Printf("Avg edge length: %.6f units\n\n", result.Edges.Mean)

	if len(edges) > 0 {
		fmt.Printf("%-6s %-35s %-35s %-15s\n", "Index", "Start", "End", "Length")
		fmt.Println("-----------------------------------------------------------------------------------------------------------")
		for i, edge := range edges {
			fmt.Printf("%-6d %-35s %-35s %-15.6f\n",
				i+1,
				analysis.FormatVector(edge.Start),
				analysis.FormatVector(edge.End),
				edge.Length)
		}
	} else {
		fmt.Println("No edges found matching the criteria.")
	}
	return nil
}
