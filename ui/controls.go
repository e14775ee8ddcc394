package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlActions reports which controls were used this frame.
type ControlActions struct {
	Paused      bool // requested pause state
	ResetCamera bool
	Speed       int // requested speed, equal to the current one when unchanged
}

// ControlsPanel is a raygui panel with playback buttons and overlay toggles.
type ControlsPanel struct {
	renderer *Renderer
	width    int32
}

// NewControlsPanel creates a panel of the given width.
func NewControlsPanel(width int32) *ControlsPanel {
	return &ControlsPanel{renderer: NewRenderer(), width: width}
}

// Height returns the panel height for the given registry.
func (c *ControlsPanel) Height(overlays *OverlayRegistry) int32 {
	t := c.renderer.Theme
	return t.Padding*2 + t.LineHeight + 2*(rowHeight+4) + int32(len(overlays.All()))*(rowHeight+2)
}

const rowHeight = 20

// Draw renders the panel at (x, y). Overlay checkboxes write straight into
// the registry; playback requests are returned for the caller to apply.
func (c *ControlsPanel) Draw(x, y int32, paused bool, speed, minSpeed, maxSpeed int, overlays *OverlayRegistry) ControlActions {
	r := c.renderer
	pad := r.Theme.Padding
	r.DrawPanel(x, y, c.width, c.Height(overlays))

	act := ControlActions{Paused: paused, Speed: speed}
	fx := float32(x + pad)
	fy := float32(r.DrawSectionHeader(x+pad, y+pad, "Controls"))
	inner := float32(c.width - pad*2)

	label := "Pause"
	if paused {
		label = "Resume"
	}
	half := (inner - 4) / 2
	if gui.Button(rl.Rectangle{X: fx, Y: fy, Width: half, Height: rowHeight}, label) {
		act.Paused = !paused
	}
	if gui.Button(rl.Rectangle{X: fx + half + 4, Y: fy, Width: half, Height: rowHeight}, "Reset View") {
		act.ResetCamera = true
	}
	fy += rowHeight + 4

	v := gui.SliderBar(
		rl.Rectangle{X: fx + 40, Y: fy, Width: inner - 80, Height: rowHeight},
		"Speed", fmt.Sprintf("%dx", speed),
		float32(speed), float32(minSpeed), float32(maxSpeed),
	)
	act.Speed = int(v + 0.5)
	fy += rowHeight + 4

	for _, d := range overlays.All() {
		text := d.Name
		if d.KeyLabel != "" {
			text = fmt.Sprintf("%s [%s]", d.Name, d.KeyLabel)
		}
		on := gui.CheckBox(rl.Rectangle{X: fx, Y: fy + 3, Width: 14, Height: 14}, text, overlays.IsEnabled(d.ID))
		overlays.SetEnabled(d.ID, on)
		fy += rowHeight + 2
	}
	return act
}
