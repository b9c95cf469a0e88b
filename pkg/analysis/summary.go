package analysis

import (
	"github.com/philipparndt/raymeasure/internal/measurement"
)

// Summary describes a set of measurements
type Summary struct {
	Count     int
	Completed int
	Distances Stats // over completed measurements only
	Longest   measurement.Measurement
}

// Summarize aggregates the completed distances of a measurement list
func Summarize(measurements []measurement.Measurement) Summary {
	summary := Summary{Count: len(measurements)}

	var distances []float64
	for _, m := range measurements {
		if !m.Completed {
			continue
		}
		summary.Completed++
		distances = append(distances, m.Distance)
		if summary.Completed == 1 || m.Distance > summary.Longest.Distance {
			summary.Longest = m
		}
	}
	summary.Distances = Describe(distances)
	return summary
}
