package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// barGeometry returns where the bar of a field line starts and how wide it is.
func (r *Renderer) barGeometry(x, width int32) (barX, barW int32) {
	barX = x + r.Theme.LabelWidth
	barW = width - r.Theme.LabelWidth - 50
	return barX, max(barW, 10)
}

// DrawBar draws value as the filled fraction of [rng.Min, rng.Max].
func (r *Renderer) DrawBar(x, y int32, label string, value float32, rng FieldRange, width int32) int32 {
	frac := float32(0)
	if rng.Max > rng.Min {
		frac = min(max((value-rng.Min)/(rng.Max-rng.Min), 0), 1)
	}
	barX, barW := r.barGeometry(x, width)

	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawRectangle(barX, y+2, barW, r.Theme.BarHeight, r.Theme.BarBg)
	rl.DrawRectangle(barX, y+2, int32(float32(barW)*frac), r.Theme.BarHeight, r.Theme.BarFill)
	rl.DrawText(fmt.Sprintf("%.0f", value), barX+barW+5, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight + 2
}

// DrawCenteredBar draws a bar growing from the middle, scaled so that
// ±max(|rng.Min|, |rng.Max|) fills one half.
func (r *Renderer) DrawCenteredBar(x, y int32, label string, value float32, rng FieldRange, width int32) int32 {
	barX, barW := r.barGeometry(x, width)
	centerX := barX + barW/2

	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawRectangle(barX, y+2, barW, r.Theme.BarHeight, r.Theme.BarBg)
	rl.DrawLine(centerX, y+2, centerX, y+2+r.Theme.BarHeight, r.Theme.PanelBorder)

	limit := max(absf(rng.Min), absf(rng.Max))
	if limit > 0 {
		fill := int32(float32(barW/2) * min(absf(value)/limit, 1))
		if value < 0 {
			rl.DrawRectangle(centerX-fill, y+2, fill, r.Theme.BarHeight, r.Theme.BarNegative)
		} else {
			rl.DrawRectangle(centerX, y+2, fill, r.Theme.BarHeight, r.Theme.BarPositive)
		}
	}
	rl.DrawText(fmt.Sprintf("%+.3f", value), barX+barW+5, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight + 2
}

// DrawField renders one field of data and returns the new Y position.
func DrawField[T any](r *Renderer, x, y int32, fd FieldDescriptor[T], data T, width int32) int32 {
	if fd.Visible != nil && !fd.Visible(data) {
		return y
	}
	var value float32
	if fd.Value != nil {
		value = fd.Value(data)
	}

	switch fd.Widget {
	case WidgetText:
		text := fmt.Sprintf(fd.Format, value)
		if fd.Text != nil {
			text = fd.Text(data)
		}
		return r.DrawLabelValue(x, y, fd.Label, text)
	case WidgetBar:
		return r.DrawBar(x, y, fd.Label, value, fd.Range, width)
	case WidgetCenteredBar:
		return r.DrawCenteredBar(x, y, fd.Label, value, fd.Range, width)
	case WidgetSection:
		return r.DrawSectionHeader(x, y, fd.Label)
	case WidgetSpacer:
		return y + 6
	}
	return y
}

// DrawSection renders a section with header and fields.
func DrawSection[T any](r *Renderer, x, y int32, sd SectionDescriptor[T], data T, width int32) int32 {
	if sd.Title != "" {
		y = r.DrawSectionHeader(x, y, sd.Title)
	}
	for _, fd := range sd.Fields {
		y = DrawField(r, x, y, fd, data, width)
	}
	return y + 4
}

// SectionHeight returns the height DrawSection would use, for sizing panels.
func SectionHeight[T any](r *Renderer, sd SectionDescriptor[T], data T) int32 {
	h := int32(4)
	if sd.Title != "" {
		h += r.Theme.LineHeight
	}
	for _, fd := range sd.Fields {
		if fd.Visible != nil && !fd.Visible(data) {
			continue
		}
		switch fd.Widget {
		case WidgetBar, WidgetCenteredBar:
			h += r.Theme.LineHeight + 2
		case WidgetSpacer:
			h += 6
		default:
			h += r.Theme.LineHeight
		}
	}
	return h
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
