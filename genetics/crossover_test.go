package genetics

import (
	"math/rand"
	"testing"
)

func randomGenome(size int, seed int64) *Genome {
	g := NewGenome(size)
	g.Randomize(rand.New(rand.NewSource(seed)))
	return g
}

func TestCrossoverWithoutMutation(t *testing.T) {
	const size = 25
	p1 := randomGenome(size, 10)
	p2 := randomGenome(size, 20)
	rng := rand.New(rand.NewSource(30))

	for _, k := range []int{0, 1, 12, 24, 25} {
		child := Crossover(p1, p2, k, rng, NoMutation)
		if child.Len() != size {
			t.Fatalf("split %d: child length %d", k, child.Len())
		}
		for i := 0; i < k; i++ {
			if child.At(i) != p1.At(i) {
				t.Errorf("split %d: gene %d should come from parent1", k, i)
			}
		}
		for i := k; i < size; i++ {
			if child.At(i) != p2.At(i) {
				t.Errorf("split %d: gene %d should come from parent2", k, i)
			}
		}
	}
}

func TestCrossoverAlwaysMutate(t *testing.T) {
	p1 := randomGenome(10, 1)
	p2 := randomGenome(10, 2)
	rng := rand.New(rand.NewSource(3))

	child := Crossover(p1, p2, 5, rng, func(int) float64 { return 1 })
	for i := 0; i < 10; i++ {
		v := child.At(i)
		if v == p1.At(i) || v == p2.At(i) {
			t.Errorf("gene %d was inherited despite certain mutation", i)
		}
		if v.X < -1.0/6 || v.X > 1.0/6 || v.Y < -1.0/6 || v.Y > 1.0/6 {
			t.Errorf("mutated gene %d out of range: %v", i, v)
		}
	}
}

func TestDecayingMutationIsStrictlyDecreasing(t *testing.T) {
	prev := DecayingMutation(0)
	if prev < 0.1118 || prev > 0.1119 {
		t.Errorf("p(0) = %v, want ~0.1118", prev)
	}
	for i := 1; i < 100; i++ {
		p := DecayingMutation(i)
		if p >= prev {
			t.Fatalf("p(%d)=%v is not below p(%d)=%v", i, p, i-1, prev)
		}
		prev = p
	}
}

func TestBreedKeepsLength(t *testing.T) {
	p1 := randomGenome(25, 4)
	p2 := randomGenome(25, 5)
	rng := rand.New(rand.NewSource(6))

	for i := 0; i < 200; i++ {
		if child := Breed(p1, p2, rng); child.Len() != 25 {
			t.Fatalf("child length %d", child.Len())
		}
	}
}

func TestSelfBreedingWithoutMutationClones(t *testing.T) {
	p := randomGenome(8, 7)
	rng := rand.New(rand.NewSource(8))

	child := Crossover(p, p, 3, rng, NoMutation)
	for i := 0; i < 8; i++ {
		if child.At(i) != p.At(i) {
			t.Errorf("gene %d differs from the sole parent", i)
		}
	}
}
