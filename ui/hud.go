package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rockets/game"
	"github.com/pthm-cable/rockets/telemetry"
)

// HUDData is everything the heads-up display shows.
type HUDData struct {
	Frame   *game.Frame
	Perf    telemetry.PerfStats
	Last    telemetry.GenerationStats
	HasLast bool
	Reseeds int
}

var hudSections = []SectionDescriptor[HUDData]{
	{
		Title: "Generation",
		Fields: []FieldDescriptor[HUDData]{
			{Label: "Gen", Widget: WidgetText, Format: "%.0f", Value: func(d HUDData) float32 { return float32(d.Frame.Generation) }},
			{Label: "Tick", Widget: WidgetText, Text: func(d HUDData) string { return fmt.Sprintf("%d", d.Frame.Tick) }},
			{Label: "Impulse", Widget: WidgetText, Text: func(d HUDData) string {
				return fmt.Sprintf("%d / %d", d.Frame.ImpulseIndex+1, d.Frame.GenomeSize)
			}},
			{Label: "Alive", Widget: WidgetText, Format: "%.0f", Value: func(d HUDData) float32 { return float32(d.Frame.Alive) }},
			{Label: "Dead", Widget: WidgetText, Format: "%.0f", Value: func(d HUDData) float32 { return float32(d.Frame.Dead) }},
			{Label: "Succeeded", Widget: WidgetText, Format: "%.0f", Value: func(d HUDData) float32 { return float32(d.Frame.Succeeded) }},
			{Label: "Best", Widget: WidgetText, Format: "%.1f", Value: func(d HUDData) float32 { return float32(d.Frame.BestFitness) }},
		},
	},
	{
		Title: "Last Generation",
		Fields: []FieldDescriptor[HUDData]{
			{Label: "Success", Widget: WidgetBar, Range: FieldRange{Max: 100}, Visible: hasLast,
				Value: func(d HUDData) float32 { return float32(d.Last.SuccessRate() * 100) }},
			{Label: "Mean", Widget: WidgetText, Format: "%.1f", Visible: hasLast,
				Value: func(d HUDData) float32 { return float32(d.Last.FitnessMean) }},
			{Label: "Max", Widget: WidgetText, Format: "%.1f", Visible: hasLast,
				Value: func(d HUDData) float32 { return float32(d.Last.FitnessMax) }},
			{Label: "Closest", Widget: WidgetText, Format: "%.1f", Visible: hasLast,
				Value: func(d HUDData) float32 { return float32(d.Last.BestDistance) }},
			{Label: "Reseeds", Widget: WidgetText, Format: "%.0f", Visible: func(d HUDData) bool { return d.Reseeds > 0 },
				Value: func(d HUDData) float32 { return float32(d.Reseeds) }},
		},
	},
	{
		Title: "Performance",
		Fields: []FieldDescriptor[HUDData]{
			{Label: "FPS", Widget: WidgetText, Format: "%.0f", Value: func(d HUDData) float32 { return float32(d.Perf.FPS) }},
			{Label: "Tick", Widget: WidgetText, Text: func(d HUDData) string {
				return fmt.Sprintf("%dus", d.Perf.AvgTickDuration.Microseconds())
			}},
			{Label: "Speed", Widget: WidgetText, Text: func(d HUDData) string {
				if d.Frame.Paused {
					return "paused"
				}
				return fmt.Sprintf("%dx", d.Frame.Speed)
			}},
		},
	},
}

func hasLast(d HUDData) bool { return d.HasLast }

// HUD draws the generation summary in the top-left corner.
type HUD struct {
	renderer *Renderer
	width    int32
}

// NewHUD creates a HUD of the given width.
func NewHUD(width int32) *HUD {
	return &HUD{renderer: NewRenderer(), width: width}
}

// Draw renders the HUD at (x, y) and returns its bottom edge.
func (h *HUD) Draw(x, y int32, data HUDData) int32 {
	if data.Frame == nil {
		return y
	}
	r := h.renderer
	pad := r.Theme.Padding

	height := pad*2 + r.Theme.BarHeight + 6
	for _, s := range hudSections {
		height += SectionHeight(r, s, data)
	}
	r.DrawPanel(x, y, h.width, height)

	cy := y + pad
	inner := h.width - pad*2
	if data.Frame.GenomeSize > 0 {
		frac := float32(data.Frame.ImpulseIndex) / float32(data.Frame.GenomeSize)
		rl.DrawRectangle(x+pad, cy, inner, r.Theme.BarHeight, r.Theme.BarBg)
		rl.DrawRectangle(x+pad, cy, int32(float32(inner)*frac), r.Theme.BarHeight, r.Theme.BarFill)
	}
	cy += r.Theme.BarHeight + 6

	for _, s := range hudSections {
		cy = DrawSection(r, x+pad, cy, s, data, inner)
	}
	return y + height
}
