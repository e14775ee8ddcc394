package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/rockets/components"
	"github.com/pthm-cable/rockets/game"
	"github.com/pthm-cable/rockets/vector"
)

func testFrame(generation int, statuses ...components.Status) *game.Frame {
	f := &game.Frame{Generation: generation}
	body := components.Body{Width: 20, Height: 5}
	for i, st := range statuses {
		pos := vector.New(100+float64(i)*50, 450)
		f.Rockets = append(f.Rockets, game.RocketView{
			Position: pos,
			Bounds:   body.At(pos.X, pos.Y),
			Heading:  0,
			Status:   st,
		})
	}
	return f
}

func TestTrailsEmitAndExpire(t *testing.T) {
	s := NewTrailSystem(3, 1)
	f := testFrame(0, components.StatusAlive, components.StatusAlive)

	s.Update(f)
	if s.Count() != 2 {
		t.Fatalf("Count after first update = %d, want 2", s.Count())
	}
	s.Update(f)
	s.Update(f)
	if s.Count() != 6 {
		t.Fatalf("Count after three updates = %d, want 6", s.Count())
	}
	// The first puffs reach age 3 and expire as two more are emitted
	s.Update(f)
	if s.Count() != 6 {
		t.Errorf("Count = %d, want steady state 6", s.Count())
	}
}

func TestTrailsEmitEveryN(t *testing.T) {
	s := NewTrailSystem(100, 3)
	f := testFrame(0, components.StatusAlive)
	for i := 0; i < 6; i++ {
		s.Update(f)
	}
	if s.Count() != 2 {
		t.Errorf("Count = %d, want 2 puffs from frames 0 and 3", s.Count())
	}
}

func TestTrailsExhaustBehindRocket(t *testing.T) {
	s := NewTrailSystem(10, 1)
	f := testFrame(0, components.StatusAlive) // heading 0 = moving right
	s.Update(f)

	cx, cy := f.Rockets[0].Bounds.Center()
	s.Each(func(pos components.Position, trail components.Trail) {
		if math.Abs(float64(pos.X)-(cx-10)) > 1e-4 || math.Abs(float64(pos.Y)-cy) > 1e-4 {
			t.Errorf("puff at (%v,%v), want tail (%v,%v)", pos.X, pos.Y, cx-10, cy)
		}
		if trail.Status != components.StatusAlive || trail.Age != 0 {
			t.Errorf("trail = %+v", trail)
		}
	})

	s.Update(f)
	var minX float32 = math.MaxFloat32
	s.Each(func(pos components.Position, _ components.Trail) {
		minX = min(minX, pos.X)
	})
	if float64(minX) >= cx-10 {
		t.Error("old puff should drift backwards")
	}
}

func TestTrailsBurstOnStatusChange(t *testing.T) {
	s := NewTrailSystem(10, 1000) // exhaust only on frame 0
	s.Update(testFrame(0, components.StatusAlive))
	if s.Count() != 1 {
		t.Fatalf("Count = %d, want 1", s.Count())
	}

	s.Update(testFrame(0, components.StatusDead))
	dead := 0
	s.Each(func(_ components.Position, trail components.Trail) {
		if trail.Status == components.StatusDead {
			dead++
		}
	})
	if dead != burstPuffs {
		t.Errorf("dead puffs = %d, want %d", dead, burstPuffs)
	}

	// No repeated burst while the status holds
	s.Update(testFrame(0, components.StatusDead))
	if s.Count() != 1+burstPuffs {
		t.Errorf("Count = %d, want %d", s.Count(), 1+burstPuffs)
	}
}

func TestTrailsClearOnNewGeneration(t *testing.T) {
	s := NewTrailSystem(100, 1)
	for i := 0; i < 5; i++ {
		s.Update(testFrame(0, components.StatusAlive, components.StatusAlive))
	}
	s.Update(testFrame(1, components.StatusAlive, components.StatusAlive))
	if s.Count() != 2 {
		t.Errorf("Count = %d, want only the new generation's 2 puffs", s.Count())
	}
}
