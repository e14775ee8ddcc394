package ui

import "testing"

func TestOverlayDefaults(t *testing.T) {
	r := NewOverlayRegistry()
	tests := []struct {
		id   OverlayID
		want bool
	}{
		{OverlayTrails, true},
		{OverlayBounds, false},
		{OverlayHeading, false},
		{OverlayTarget, false},
		{OverlayHUD, true},
		{OverlayControls, true},
	}
	for _, tt := range tests {
		if got := r.IsEnabled(tt.id); got != tt.want {
			t.Errorf("IsEnabled(%s) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestOverlayToggle(t *testing.T) {
	r := NewOverlayRegistry()
	if !r.Toggle(OverlayBounds) {
		t.Fatal("first toggle should enable")
	}
	if r.Toggle(OverlayBounds) {
		t.Fatal("second toggle should disable")
	}
	if r.Toggle("missing") {
		t.Error("unknown overlay toggled on")
	}
	r.SetEnabled("missing", true)
	if r.IsEnabled("missing") {
		t.Error("SetEnabled registered an unknown overlay")
	}
}

func TestSectionHeightSkipsHidden(t *testing.T) {
	r := NewRenderer()
	sd := SectionDescriptor[int]{
		Title: "T",
		Fields: []FieldDescriptor[int]{
			{Label: "a", Widget: WidgetText},
			{Label: "b", Widget: WidgetBar, Visible: func(v int) bool { return v > 0 }},
			{Widget: WidgetSpacer},
		},
	}
	lh := r.Theme.LineHeight
	if got, want := SectionHeight(r, sd, 0), 4+lh+lh+6; got != want {
		t.Errorf("hidden bar: height = %d, want %d", got, want)
	}
	if got, want := SectionHeight(r, sd, 1), 4+lh+lh+lh+2+6; got != want {
		t.Errorf("visible bar: height = %d, want %d", got, want)
	}
}
