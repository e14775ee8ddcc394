// Package renderer runs the interactive raylib view of a game: input,
// camera, exhaust trails and the UI panels. It only reads simulation state;
// every change goes through the game's control methods.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rockets/camera"
	"github.com/pthm-cable/rockets/game"
	"github.com/pthm-cable/rockets/systems"
	"github.com/pthm-cable/rockets/ui"
)

const (
	hudWidth       = 200
	inspectorWidth = 220
	controlsWidth  = 200
	panelMargin    = 10
)

// App is the graphical front end of a Game.
type App struct {
	game   *game.Game
	frame  game.Frame
	camera *camera.Camera
	trails *systems.TrailSystem

	overlays  *ui.OverlayRegistry
	hud       *ui.HUD
	inspector *ui.Inspector
	controls  *ui.ControlsPanel

	selected     int // rocket index, -1 = none
	controlsRect rl.Rectangle

	screenWidth, screenHeight float32
}

// NewApp creates the front end. The raylib window must already be open.
func NewApp(g *game.Game) *App {
	cfg := g.Config()
	sc := g.Scenario()
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())

	a := &App{
		game:         g,
		camera:       camera.New(w, h, float32(sc.Width()), float32(sc.Height())),
		trails:       systems.NewTrailSystem(cfg.Render.TrailLife, cfg.Render.TrailEvery),
		overlays:     ui.NewOverlayRegistry(),
		hud:          ui.NewHUD(hudWidth),
		inspector:    ui.NewInspector(inspectorWidth),
		controls:     ui.NewControlsPanel(controlsWidth),
		selected:     -1,
		screenWidth:  w,
		screenHeight: h,
	}
	g.FrameInto(&a.frame)
	return a
}

// Update handles input, advances the simulation and refreshes the frame.
func (a *App) Update() error {
	a.game.RecordFrame()
	a.handleInput()

	if err := a.game.Advance(); err != nil {
		return err
	}
	prevGen := a.frame.Generation
	a.game.FrameInto(&a.frame)
	if a.frame.Generation != prevGen {
		a.selected = -1
	}
	if !a.frame.Paused {
		a.trails.Update(&a.frame)
	}
	return nil
}

// Draw renders one frame. It must be called between BeginDrawing and
// EndDrawing.
func (a *App) Draw() {
	rl.ClearBackground(rl.RayWhite)

	a.drawArena()
	if a.overlays.IsEnabled(ui.OverlayTrails) {
		a.drawTrails()
	}
	if a.overlays.IsEnabled(ui.OverlayTarget) {
		a.drawTargetLines()
	}
	a.drawRockets()
	if a.overlays.IsEnabled(ui.OverlayBounds) {
		a.drawBounds()
	}
	if a.overlays.IsEnabled(ui.OverlayHeading) {
		a.drawHeadings()
	}
	a.drawSelection()

	a.drawPanels()
}

func (a *App) drawPanels() {
	bottom := int32(panelMargin)
	if a.overlays.IsEnabled(ui.OverlayHUD) {
		last, ok := a.game.LastGeneration()
		bottom = a.hud.Draw(panelMargin, panelMargin, ui.HUDData{
			Frame:   &a.frame,
			Perf:    a.game.Perf(),
			Last:    last,
			HasLast: ok,
			Reseeds: a.game.Reseeds(),
		}) + panelMargin
	}

	a.controlsRect = rl.Rectangle{}
	if a.overlays.IsEnabled(ui.OverlayControls) {
		a.controlsRect = rl.Rectangle{
			X: panelMargin, Y: float32(bottom),
			Width: controlsWidth, Height: float32(a.controls.Height(a.overlays)),
		}
		act := a.controls.Draw(panelMargin, bottom, a.frame.Paused, a.frame.Speed, game.MinSpeed, game.MaxSpeed, a.overlays)
		a.applyControls(act)
	}

	if data, ok := a.inspected(); ok {
		a.inspector.Draw(int32(a.screenWidth)-inspectorWidth-panelMargin, panelMargin, data)
	}
}

func (a *App) applyControls(act ui.ControlActions) {
	if act.Paused != a.frame.Paused {
		a.game.SetPaused(act.Paused)
	}
	if act.ResetCamera {
		a.camera.Reset()
	}
	if act.Speed != a.frame.Speed {
		a.game.SetSpeed(act.Speed)
	}
}

// inspected returns the selected rocket with the impulse it is currently flying.
func (a *App) inspected() (ui.InspectedRocket, bool) {
	if a.selected < 0 || a.selected >= len(a.frame.Rockets) {
		return ui.InspectedRocket{}, false
	}
	data := ui.InspectedRocket{Index: a.selected, View: a.frame.Rockets[a.selected]}
	rockets := a.game.Population().Rockets()
	if a.selected < len(rockets) {
		if g := rockets[a.selected].Genome(); a.frame.ImpulseIndex < g.Len() {
			data.Impulse = g.At(a.frame.ImpulseIndex)
		}
	}
	return data, true
}
