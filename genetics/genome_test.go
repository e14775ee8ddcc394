package genetics

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/rockets/vector"
)

func TestRandomizeBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := NewGenome(25)

	for round := 0; round < 50; round++ {
		g.Randomize(rng)
		if g.Len() != 25 || len(g.Genes()) != 25 {
			t.Fatalf("expected 25 genes, got Len=%d genes=%d", g.Len(), len(g.Genes()))
		}
		for i, v := range g.Genes() {
			if v.X < -1.0/6 || v.X > 1.0/6 || v.Y < -1.0/6 || v.Y > 1.0/6 {
				t.Fatalf("gene %d out of range: %v", i, v)
			}
		}
	}
}

func TestRandomizeReplacesGenes(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	g := NewGenome(10)
	g.Randomize(rng)
	before := g.Genes()
	g.Randomize(rng)

	same := 0
	for i, v := range g.Genes() {
		if v == before[i] {
			same++
		}
	}
	if same == 10 {
		t.Error("randomize did not change any gene")
	}
}

func TestSetGenesPanicsOnLengthMismatch(t *testing.T) {
	g := NewGenome(5)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for short gene sequence")
		}
	}()
	g.SetGenes(make([]vector.Vector2, 4))
}

func TestGenesReturnsCopy(t *testing.T) {
	g := NewGenome(3)
	g.SetGenes([]vector.Vector2{vector.New(1, 1), vector.New(2, 2), vector.New(3, 3)})

	genes := g.Genes()
	genes[0] = vector.New(9, 9)

	if g.At(0) != vector.New(1, 1) {
		t.Errorf("mutating Genes() leaked into genome: %v", g.At(0))
	}
}

func TestFlattenRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := NewGenome(7)
	g.Randomize(rng)

	back := FromFlat(g.Flatten())
	if back.Len() != g.Len() {
		t.Fatalf("length %d, want %d", back.Len(), g.Len())
	}
	for i := 0; i < g.Len(); i++ {
		if back.At(i) != g.At(i) {
			t.Errorf("gene %d: %v != %v", i, back.At(i), g.At(i))
		}
	}
}
