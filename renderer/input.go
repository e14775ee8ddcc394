package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rockets/components"
)

// pickSlop widens the click target so thin rockets are easy to select.
const pickSlop = 4

func (a *App) handleInput() {
	a.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.game.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyComma) {
		a.game.SetSpeed(a.game.Speed() - 1)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		a.game.SetSpeed(a.game.Speed() + 1)
	}

	a.overlays.HandleKeys()
	a.handleCameraInput()
	a.handleSelection()
}

func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == a.screenWidth && h == a.screenHeight {
		return
	}
	a.screenWidth, a.screenHeight = w, h
	a.camera.Resize(w, h)
}

func (a *App) handleCameraInput() {
	panSpeed := float32(8.0) / a.camera.Zoom

	if rl.IsKeyDown(rl.KeyRight) {
		a.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		a.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		a.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		a.camera.Pan(0, -panSpeed)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.camera.ZoomBy(1 + wheel*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		a.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		a.camera.ZoomBy(0.8)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		a.camera.Reset()
	}
}

// handleSelection picks the rocket under a left click. Right click or Escape
// clears the selection.
func (a *App) handleSelection() {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) || rl.IsKeyPressed(rl.KeyEscape) {
		a.selected = -1
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	mouse := rl.GetMousePosition()
	if a.overPanel(mouse) {
		return
	}
	wx, wy := a.camera.ScreenToWorld(mouse.X, mouse.Y)
	slop := pickSlop / float64(a.camera.Zoom)
	probe := components.Rect{X: float64(wx), Y: float64(wy)}

	a.selected = -1
	// Later rockets are drawn on top, so search from the end.
	for i := len(a.frame.Rockets) - 1; i >= 0; i-- {
		b := a.frame.Rockets[i].Bounds
		hit := components.Rect{X: b.X - slop, Y: b.Y - slop, W: b.W + 2*slop, H: b.H + 2*slop}
		if hit.Contains(probe) {
			a.selected = i
			return
		}
	}
}

// overPanel reports whether p lies on the controls panel, whose clicks
// belong to raygui.
func (a *App) overPanel(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, a.controlsRect)
}
