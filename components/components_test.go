package components

import "testing"

func TestRectOverlaps(t *testing.T) {
	target := Rect{X: 100, Y: 100, W: 50, H: 50}

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", Rect{X: 110, Y: 110, W: 20, H: 5}, true},
		{"partial", Rect{X: 90, Y: 90, W: 20, H: 20}, true},
		{"left of", Rect{X: 10, Y: 110, W: 20, H: 5}, false},
		{"touching edge", Rect{X: 80, Y: 110, W: 20, H: 5}, false},
		{"touching corner", Rect{X: 150, Y: 150, W: 10, H: 10}, false},
		{"enclosing", Rect{X: 0, Y: 0, W: 500, H: 500}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Overlaps(target); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := target.Overlaps(tt.r); got != tt.want {
				t.Errorf("symmetric Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	outer := Rect{X: 0, Y: 0, W: 100, H: 100}
	if !outer.Contains(Rect{X: 10, Y: 10, W: 20, H: 5}) {
		t.Error("expected inner rect to be contained")
	}
	if outer.Contains(Rect{X: 90, Y: 10, W: 20, H: 5}) {
		t.Error("rect crossing the edge should not be contained")
	}
}

func TestBodyAt(t *testing.T) {
	b := Body{Width: 20, Height: 5}
	r := b.At(30, 450)
	if r != (Rect{X: 30, Y: 450, W: 20, H: 5}) {
		t.Errorf("Body.At = %+v", r)
	}
}

func TestStatusString(t *testing.T) {
	for s, want := range map[Status]string{
		StatusAlive:     "alive",
		StatusDead:      "dead",
		StatusSucceeded: "succeeded",
		Status(42):      "unknown",
	} {
		if s.String() != want {
			t.Errorf("Status(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
}

func TestTrailFade(t *testing.T) {
	tr := Trail{Age: 5, Life: 10}
	if f := tr.Fade(); f != 0.5 {
		t.Errorf("Fade = %v, want 0.5", f)
	}
	tr.Age = 12
	if f := tr.Fade(); f != 0 {
		t.Errorf("Fade past life = %v, want 0", f)
	}
}
