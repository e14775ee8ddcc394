package rocket

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/rockets/components"
	"github.com/pthm-cable/rockets/genetics"
	"github.com/pthm-cable/rockets/scenario"
	"github.com/pthm-cable/rockets/vector"
)

func testScenario() *scenario.Scenario {
	return scenario.Default(1440, 900)
}

func newTestRocket(sc *scenario.Scenario, x, y float64) *Rocket {
	r := New(vector.New(x, y), sc.Body(), sc.GenomeSize())
	r.Initiate(rand.New(rand.NewSource(1)))
	return r
}

func TestUpdateInsideTargetSucceedsAndFreezes(t *testing.T) {
	sc := testScenario()
	r := newTestRocket(sc, 1220, 620)
	r.Velocity = vector.New(1, 1)
	r.Acceleration = vector.New(0.1, 0.1)

	r.Update(sc, 0)
	if r.Status != components.StatusSucceeded {
		t.Fatalf("status = %v, want succeeded", r.Status)
	}

	start := r.Position
	for i := 0; i < 10; i++ {
		r.Update(sc, i%sc.GenomeSize())
	}
	if r.Position != start {
		t.Errorf("succeeded rocket moved from %v to %v", start, r.Position)
	}
	if r.Status != components.StatusSucceeded {
		t.Errorf("status changed to %v", r.Status)
	}
}

func TestUpdateDeaths(t *testing.T) {
	sc := testScenario()

	tests := []struct {
		name string
		x, y float64
	}{
		{"left wall", -1, 450},
		{"top wall", 100, -0.5},
		{"right wall", 1430, 450},
		{"bottom wall", 100, 897},
		{"first obstacle", 310, 400},
		{"second obstacle", 705, 100},
		{"third obstacle", 905, 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRocket(sc, tt.x, tt.y)
			r.Velocity = vector.New(2, 0)
			r.Update(sc, 0)
			if r.Status != components.StatusDead {
				t.Fatalf("status = %v, want dead", r.Status)
			}
			if r.Position != vector.New(tt.x, tt.y) {
				t.Errorf("rocket integrated on the tick it died: %v", r.Position)
			}
			r.Update(sc, 1)
			if r.Position != vector.New(tt.x, tt.y) {
				t.Errorf("dead rocket moved: %v", r.Position)
			}
		})
	}
}

func TestUpdateCrashOnTargetKeepsSuccessBonus(t *testing.T) {
	// The target reaches past the floor of a 650-high arena, so a rocket at
	// its bottom edge is out of bounds and on the target at once.
	sc := scenario.Default(1440, 650)
	r := newTestRocket(sc, 1220, 647)
	r.Velocity = vector.New(0, 1)

	r.Update(sc, 0)
	if r.Status != components.StatusDead || !r.Landed {
		t.Fatalf("status = %v landed = %v, want dead and landed", r.Status, r.Landed)
	}
	if !r.Reached() {
		t.Error("crash on target does not count as reached")
	}
	if r.Position != vector.New(1220, 647) {
		t.Errorf("rocket integrated on the crash tick: %v", r.Position)
	}

	r.FindFitness(sc.TargetPosition())
	d := vector.Distance(vector.New(1220, 647), sc.TargetPosition())
	want := 3 * 1000 / d
	if math.Abs(r.Fitness-want) > 1e-9 {
		t.Errorf("fitness = %v, want %v", r.Fitness, want)
	}

	r.Update(sc, 1)
	if r.Status != components.StatusDead || !r.Landed {
		t.Errorf("frozen rocket changed to %v landed = %v", r.Status, r.Landed)
	}
}

func TestUpdateIntegrationLag(t *testing.T) {
	sc := testScenario()
	r := New(sc.Spawn(), sc.Body(), sc.GenomeSize())

	genes := make([]vector.Vector2, sc.GenomeSize())
	genes[0] = vector.New(0.1, 0)
	genes[1] = vector.New(0, 0.05)
	g := genetics.NewGenome(sc.GenomeSize())
	g.SetGenes(genes)
	r.SetGenome(g)

	r.Update(sc, 0) // force = g0
	if r.Force != genes[0] || r.Acceleration != (vector.Vector2{}) {
		t.Fatalf("tick 0: force=%v accel=%v", r.Force, r.Acceleration)
	}
	r.Update(sc, 1) // accel = g0, force = g1
	if r.Acceleration != genes[0] || r.Force != genes[1] || r.Velocity != (vector.Vector2{}) {
		t.Fatalf("tick 1: accel=%v force=%v vel=%v", r.Acceleration, r.Force, r.Velocity)
	}
	r.Update(sc, 1) // vel = g0
	if r.Velocity != genes[0] || r.Position != sc.Spawn() {
		t.Fatalf("tick 2: vel=%v pos=%v", r.Velocity, r.Position)
	}
	r.Update(sc, 1) // pos += g0
	want := sc.Spawn()
	want.Add(genes[0])
	if r.Position != want {
		t.Errorf("tick 3: pos=%v, want %v", r.Position, want)
	}
}

func TestFindFitnessRatchets(t *testing.T) {
	sc := testScenario()
	target := sc.TargetPosition()
	r := newTestRocket(sc, 1000, 600)

	r.FindFitness(target)
	near := r.Fitness
	if near <= 0 {
		t.Fatalf("fitness = %v, want positive", near)
	}

	r.Position = vector.New(100, 100)
	r.FindFitness(target)
	if r.Fitness != near {
		t.Errorf("fitness dropped from %v to %v", near, r.Fitness)
	}

	r.Position = vector.New(1150, 600)
	r.FindFitness(target)
	if r.Fitness <= near {
		t.Errorf("fitness did not improve when closer: %v <= %v", r.Fitness, near)
	}
}

func TestScore(t *testing.T) {
	const d = 250.0
	alive := Score(components.StatusAlive, false, d)
	if math.Abs(alive-math.Pow(4, 1.5)) > 1e-9 {
		t.Errorf("alive score = %v, want 8", alive)
	}
	if got := Score(components.StatusSucceeded, true, d); math.Abs(got-3*alive) > 1e-9 {
		t.Errorf("succeeded score = %v, want %v", got, 3*alive)
	}
	if got := Score(components.StatusDead, false, d); math.Abs(got-4) > 1e-9 {
		t.Errorf("dead score = %v, want 4", got)
	}
	if got := Score(components.StatusDead, true, d); math.Abs(got-12) > 1e-9 {
		t.Errorf("dead on target score = %v, want 12", got)
	}
	if got := Score(components.StatusAlive, false, 0); !math.IsInf(got, 1) {
		t.Errorf("zero distance score = %v, want +Inf", got)
	}
}

func TestFlyWithZeroGenomeStaysHome(t *testing.T) {
	sc := testScenario()
	r := Fly(sc, genetics.NewGenome(sc.GenomeSize()))

	if r.Position != sc.Spawn() {
		t.Errorf("rocket with zero impulses moved to %v", r.Position)
	}
	if r.Status != components.StatusAlive {
		t.Errorf("status = %v, want alive", r.Status)
	}
	want := Score(components.StatusAlive, vector.Distance(sc.Spawn(), sc.TargetPosition()))
	if math.Abs(r.Fitness-want) > 1e-9 {
		t.Errorf("fitness = %v, want %v", r.Fitness, want)
	}
}

func TestBreedKeepsGenomeLength(t *testing.T) {
	sc := testScenario()
	rng := rand.New(rand.NewSource(5))
	a := newTestRocket(sc, 30, 450)
	b := newTestRocket(sc, 30, 450)

	child := New(sc.Spawn(), sc.Body(), sc.GenomeSize())
	child.Breed(a.Genome(), b.Genome(), rng)
	if child.Genome().Len() != sc.GenomeSize() {
		t.Errorf("child genome length %d", child.Genome().Len())
	}
}

func TestHeadingFollowsVelocity(t *testing.T) {
	r := New(vector.New(0, 0), components.Body{Width: 20, Height: 5}, 1)
	r.Velocity = vector.New(0, -2)
	if math.Abs(r.Heading()-math.Pi/2) > 1e-9 {
		t.Errorf("heading = %v, want π/2", r.Heading())
	}
}
