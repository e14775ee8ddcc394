package ui

import (
	"fmt"
	"math"

	"github.com/pthm-cable/rockets/game"
	"github.com/pthm-cable/rockets/vector"
)

// InspectedRocket is the selected rocket and the impulse it is flying.
type InspectedRocket struct {
	Index   int
	View    game.RocketView
	Impulse vector.Vector2
}

// impulseRange matches the initial gene distribution. Bred genes never leave it.
var impulseRange = FieldRange{Min: -1.0 / 6, Max: 1.0 / 6}

var inspectorSections = []SectionDescriptor[InspectedRocket]{
	{
		Fields: []FieldDescriptor[InspectedRocket]{
			{Label: "Status", Widget: WidgetText, Text: func(d InspectedRocket) string {
				if d.View.Landed {
					return d.View.Status.String() + " (on target)"
				}
				return d.View.Status.String()
			}},
			{Label: "Fitness", Widget: WidgetText, Format: "%.2f", Value: func(d InspectedRocket) float32 { return float32(d.View.Fitness) }},
			{Label: "Position", Widget: WidgetText, Text: func(d InspectedRocket) string {
				return fmt.Sprintf("%.0f, %.0f", d.View.Position.X, d.View.Position.Y)
			}},
			{Label: "Heading", Widget: WidgetText, Text: func(d InspectedRocket) string {
				return fmt.Sprintf("%.0f deg", d.View.Heading*180/math.Pi)
			}},
		},
	},
	{
		Title: "Impulse",
		Fields: []FieldDescriptor[InspectedRocket]{
			{Label: "X", Widget: WidgetCenteredBar, Range: impulseRange, Value: func(d InspectedRocket) float32 { return float32(d.Impulse.X) }},
			{Label: "Y", Widget: WidgetCenteredBar, Range: impulseRange, Value: func(d InspectedRocket) float32 { return float32(d.Impulse.Y) }},
		},
	},
}

// Inspector shows the selected rocket on the right side of the screen.
type Inspector struct {
	renderer *Renderer
	width    int32
}

// NewInspector creates an inspector panel of the given width.
func NewInspector(width int32) *Inspector {
	return &Inspector{renderer: NewRenderer(), width: width}
}

// Width returns the panel width.
func (i *Inspector) Width() int32 {
	return i.width
}

// Draw renders the panel with its top-left corner at (x, y).
func (i *Inspector) Draw(x, y int32, data InspectedRocket) {
	r := i.renderer
	pad := r.Theme.Padding

	height := pad*2 + r.Theme.LineHeight
	for _, s := range inspectorSections {
		height += SectionHeight(r, s, data)
	}
	r.DrawPanel(x, y, i.width, height)

	cy := r.DrawSectionHeader(x+pad, y+pad, fmt.Sprintf("Rocket #%d", data.Index))
	for _, s := range inspectorSections {
		cy = DrawSection(r, x+pad, cy, s, data, i.width-pad*2)
	}
}
