package telemetry

import (
	"math"
	"testing"
)

func hasBookmark(bs []Bookmark, typ BookmarkType) bool {
	for _, b := range bs {
		if b.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_FirstSuccessOnce(t *testing.T) {
	bd := NewBookmarkDetector(10, 1.5, 0.9)

	if hasBookmark(bd.Check(GenerationStats{Rockets: 10}), BookmarkFirstSuccess) {
		t.Error("no success yet")
	}
	if !hasBookmark(bd.Check(GenerationStats{Generation: 1, Rockets: 10, Succeeded: 1}), BookmarkFirstSuccess) {
		t.Error("expected first_success bookmark")
	}
	if hasBookmark(bd.Check(GenerationStats{Generation: 2, Rockets: 10, Succeeded: 3}), BookmarkFirstSuccess) {
		t.Error("first_success should fire once")
	}
}

func TestBookmarkDetector_FitnessBreakthrough(t *testing.T) {
	bd := NewBookmarkDetector(10, 1.5, 0.9)

	for i := 0; i < 5; i++ {
		if bs := bd.Check(GenerationStats{Generation: i, Rockets: 10, FitnessMax: 10}); hasBookmark(bs, BookmarkFitnessBreakthrough) {
			t.Fatalf("generation %d: unexpected breakthrough", i)
		}
	}

	if hasBookmark(bd.Check(GenerationStats{Generation: 5, Rockets: 10, FitnessMax: 14}), BookmarkFitnessBreakthrough) {
		t.Error("1.4x average should not trigger")
	}
	if !hasBookmark(bd.Check(GenerationStats{Generation: 6, Rockets: 10, FitnessMax: 40}), BookmarkFitnessBreakthrough) {
		t.Error("expected fitness_breakthrough bookmark")
	}
}

func TestBookmarkDetector_InfiniteMaxSkipsHistory(t *testing.T) {
	bd := NewBookmarkDetector(3, 1.5, 0.9)
	for i := 0; i < 3; i++ {
		bd.Check(GenerationStats{Generation: i, Rockets: 1, FitnessMax: 10})
	}
	bd.Check(GenerationStats{Generation: 3, Rockets: 1, FitnessMax: math.Inf(1)})

	for _, h := range bd.getHistory() {
		if math.IsInf(h, 0) {
			t.Fatal("infinite maximum entered the rolling history")
		}
	}
}

func TestBookmarkDetector_TotalCollapse(t *testing.T) {
	bd := NewBookmarkDetector(10, 1.5, 0.9)

	if hasBookmark(bd.Check(GenerationStats{Rockets: 10, Dead: 9, Alive: 1}), BookmarkTotalCollapse) {
		t.Error("one survivor means no collapse")
	}
	if !hasBookmark(bd.Check(GenerationStats{Rockets: 10, Dead: 10}), BookmarkTotalCollapse) {
		t.Error("expected total_collapse bookmark")
	}
}

func TestBookmarkDetector_ConvergenceStreak(t *testing.T) {
	bd := NewBookmarkDetector(10, 1.5, 0.9)

	seq := []struct {
		succeeded int
		want      bool
	}{
		{5, false},
		{9, true},
		{10, false}, // still converged
		{3, false},
		{9, true}, // re-entered
	}
	for i, s := range seq {
		got := hasBookmark(bd.Check(GenerationStats{Generation: i, Rockets: 10, Succeeded: s.succeeded}), BookmarkConvergence)
		if got != s.want {
			t.Errorf("generation %d: convergence = %v, want %v", i, got, s.want)
		}
	}
}
