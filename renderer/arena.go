package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rockets/components"
)

var (
	obstacleColor = rl.Fade(rl.Black, 0.4)
	targetColor   = rl.Fade(rl.Blue, 0.6)
	boundsColor   = rl.Fade(rl.Magenta, 0.7)
	headingColor  = rl.Orange
	lineColor     = rl.Fade(rl.SkyBlue, 0.25)
	selectColor   = rl.Gold
)

// statusColor is the body color of a rocket in each state. A rocket that
// crashed on the target is drawn as a success.
func statusColor(s components.Status, landed bool) rl.Color {
	if landed {
		return rl.Green
	}
	switch s {
	case components.StatusDead:
		return rl.Red
	case components.StatusSucceeded:
		return rl.Green
	default:
		return rl.Black
	}
}

// screenRect converts a world rectangle to screen space.
func (a *App) screenRect(r components.Rect) rl.Rectangle {
	x, y := a.camera.WorldToScreen(float32(r.X), float32(r.Y))
	z := a.camera.Zoom
	return rl.Rectangle{X: x, Y: y, Width: float32(r.W) * z, Height: float32(r.H) * z}
}

func (a *App) drawArena() {
	sc := a.game.Scenario()
	arena := a.screenRect(components.Rect{W: sc.Width(), H: sc.Height()})
	rl.DrawRectangleRec(arena, rl.White)
	rl.DrawRectangleLinesEx(arena, 1, rl.LightGray)

	for _, o := range sc.Obstacles() {
		rl.DrawRectangleRec(a.screenRect(o), obstacleColor)
	}
	rl.DrawRectangleRec(a.screenRect(sc.Target()), targetColor)
}

func (a *App) drawRockets() {
	z := a.camera.Zoom
	for i := range a.frame.Rockets {
		r := &a.frame.Rockets[i]
		cx, cy := r.Bounds.Center()
		if !a.camera.IsVisible(float32(cx), float32(cy), float32(r.Bounds.W)) {
			continue
		}
		sx, sy := a.camera.WorldToScreen(float32(cx), float32(cy))
		w := float32(r.Bounds.W) * z
		h := float32(r.Bounds.H) * z
		rl.DrawRectanglePro(
			rl.Rectangle{X: sx, Y: sy, Width: w, Height: h},
			rl.Vector2{X: w / 2, Y: h / 2},
			float32(-r.Heading*180/math.Pi),
			statusColor(r.Status, r.Landed),
		)
	}
}

func (a *App) drawTrails() {
	z := a.camera.Zoom
	radius := max(1.5*z, 1)
	a.trails.Each(func(pos components.Position, t components.Trail) {
		if !a.camera.IsVisible(pos.X, pos.Y, 2) {
			return
		}
		sx, sy := a.camera.WorldToScreen(pos.X, pos.Y)
		c := rl.Gray
		if t.Status != components.StatusAlive {
			c = statusColor(t.Status, false)
		}
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, radius, rl.Fade(c, 0.5*t.Fade()))
	})
}

func (a *App) drawBounds() {
	for i := range a.frame.Rockets {
		rl.DrawRectangleLinesEx(a.screenRect(a.frame.Rockets[i].Bounds), 1, boundsColor)
	}
}

func (a *App) drawHeadings() {
	length := float32(15) * a.camera.Zoom
	for i := range a.frame.Rockets {
		r := &a.frame.Rockets[i]
		if !r.Status.Alive() {
			continue
		}
		cx, cy := r.Bounds.Center()
		sx, sy := a.camera.WorldToScreen(float32(cx), float32(cy))
		dx := float32(math.Cos(r.Heading)) * length
		dy := -float32(math.Sin(r.Heading)) * length
		rl.DrawLineV(rl.Vector2{X: sx, Y: sy}, rl.Vector2{X: sx + dx, Y: sy + dy}, headingColor)
	}
}

// drawTargetLines connects each flying rocket to the point its fitness
// distance is measured to.
func (a *App) drawTargetLines() {
	t := a.game.Scenario().TargetPosition()
	tx, ty := a.camera.WorldToScreen(float32(t.X), float32(t.Y))
	for i := range a.frame.Rockets {
		r := &a.frame.Rockets[i]
		if !r.Status.Alive() {
			continue
		}
		sx, sy := a.camera.WorldToScreen(float32(r.Position.X), float32(r.Position.Y))
		rl.DrawLineV(rl.Vector2{X: sx, Y: sy}, rl.Vector2{X: tx, Y: ty}, lineColor)
	}
}

func (a *App) drawSelection() {
	if a.selected < 0 || a.selected >= len(a.frame.Rockets) {
		return
	}
	r := a.screenRect(a.frame.Rockets[a.selected].Bounds)
	const pad = 6
	rl.DrawRectangleLinesEx(rl.Rectangle{X: r.X - pad, Y: r.Y - pad, Width: r.Width + 2*pad, Height: r.Height + 2*pad}, 2, selectColor)
}
