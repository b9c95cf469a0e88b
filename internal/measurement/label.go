package measurement

import (
	"fmt"

	"github.com/philipparndt/raymeasure/pkg/geometry"
)

// initialLabelText is shown when a measurement starts, before the first move
const initialLabelText = "0.0m"

// Label is the text shown for a measurement, anchored in world space.
// The display layer projects Anchor to the screen every frame.
type Label struct {
	Anchor geometry.Vector3
	Text   string
}

// FormatDistance renders a distance the way labels show it
func FormatDistance(distance float64) string {
	return fmt.Sprintf("%.2fm", distance)
}

// labelFor places the label halfway between start and end
func labelFor(start, end geometry.Vector3, distance float64) Label {
	return Label{
		Anchor: start.Lerp(end, 0.5),
		Text:   FormatDistance(distance),
	}
}
