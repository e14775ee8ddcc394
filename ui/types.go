// Package ui draws panels and widgets on top of the arena. Panels are built
// from descriptors so new fields do not need new layout code.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// WidgetType specifies how a field should be rendered.
type WidgetType int

const (
	WidgetText        WidgetType = iota // Plain text with format string
	WidgetBar                           // Progress bar over Range
	WidgetCenteredBar                   // Bar growing from zero in either direction
	WidgetSection                       // Section header
	WidgetSpacer                        // Vertical spacing
)

// FieldRange defines the value range for bar widgets.
type FieldRange struct {
	Min, Max float32
}

// FieldDescriptor defines how to display a single value of T.
type FieldDescriptor[T any] struct {
	Label  string
	Widget WidgetType
	Format string // Printf format for numeric text fields
	Range  FieldRange

	Visible func(T) bool    // nil = always visible
	Value   func(T) float32 // numeric fields
	Text    func(T) string  // text fields; takes precedence over Value
}

// SectionDescriptor groups fields under a header.
type SectionDescriptor[T any] struct {
	Title  string
	Fields []FieldDescriptor[T]
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	BarBg         rl.Color
	BarFill       rl.Color
	BarNegative   rl.Color
	BarPositive   rl.Color

	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns a light theme that reads well over the white arena.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:       rl.Color{R: 245, G: 245, B: 245, A: 230},
		PanelBorder:   rl.Color{R: 120, G: 120, B: 120, A: 255},
		SectionHeader: rl.DarkBlue,
		LabelColor:    rl.DarkGray,
		ValueColor:    rl.Black,
		BarBg:         rl.Color{R: 210, G: 210, B: 210, A: 255},
		BarFill:       rl.Color{R: 70, G: 120, B: 200, A: 255},
		BarNegative:   rl.Color{R: 200, G: 90, B: 90, A: 255},
		BarPositive:   rl.Color{R: 90, G: 170, B: 90, A: 255},

		Padding:        10,
		LineHeight:     16,
		LabelWidth:     80,
		BarHeight:      10,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
