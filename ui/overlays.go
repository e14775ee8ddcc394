package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Arena overlays.
const (
	OverlayTrails   OverlayID = "trails"
	OverlayBounds   OverlayID = "bounds"
	OverlayHeading  OverlayID = "heading"
	OverlayTarget   OverlayID = "target_lines"
	OverlayHUD      OverlayID = "hud"
	OverlayControls OverlayID = "controls"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID       OverlayID
	Name     string
	Key      int32  // 0 = no key
	KeyLabel string // e.g. "T"
	Default  bool
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with the arena overlays.
func NewOverlayRegistry() *OverlayRegistry {
	r := &OverlayRegistry{enabled: make(map[OverlayID]bool)}
	r.Register(OverlayDescriptor{ID: OverlayTrails, Name: "Exhaust Trails", Key: rl.KeyT, KeyLabel: "T", Default: true})
	r.Register(OverlayDescriptor{ID: OverlayBounds, Name: "Bounding Boxes", Key: rl.KeyB, KeyLabel: "B"})
	r.Register(OverlayDescriptor{ID: OverlayHeading, Name: "Heading", Key: rl.KeyV, KeyLabel: "V"})
	r.Register(OverlayDescriptor{ID: OverlayTarget, Name: "Target Lines", Key: rl.KeyL, KeyLabel: "L"})
	r.Register(OverlayDescriptor{ID: OverlayHUD, Name: "HUD", Key: rl.KeyH, KeyLabel: "H", Default: true})
	r.Register(OverlayDescriptor{ID: OverlayControls, Name: "Controls", Key: rl.KeyTab, KeyLabel: "Tab", Default: true})
	return r
}

// Register adds an overlay in its default state.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.enabled[desc.ID] = desc.Default
}

// Toggle switches an overlay and returns the new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.enabled[id]; !ok {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// SetEnabled explicitly sets an overlay's state. Unknown IDs are ignored.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	if _, ok := r.enabled[id]; ok {
		r.enabled[id] = enabled
	}
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// All returns all registered overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// HandleKeys toggles every overlay whose key was pressed this frame.
func (r *OverlayRegistry) HandleKeys() {
	for _, d := range r.descriptors {
		if d.Key != 0 && rl.IsKeyPressed(d.Key) {
			r.Toggle(d.ID)
		}
	}
}
