package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/rockets/config"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v", om, err)
	}
	// Every method is a no-op on nil
	if err := om.WriteGeneration(GenerationStats{}); err != nil {
		t.Error(err)
	}
	if err := om.WriteBookmark(Bookmark{}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	for g := 0; g < 3; g++ {
		s := GenerationStats{Generation: g, Rockets: 10, FitnessMax: float64(g)}
		if g == 2 {
			s.FitnessMax = math.Inf(1)
		}
		if err := om.WriteGeneration(s); err != nil {
			t.Fatalf("WriteGeneration: %v", err)
		}
	}
	if err := om.WritePerf(PerfStats{}, 2, 225); err != nil {
		t.Fatalf("WritePerf: %v", err)
	}
	if err := om.WriteBookmark(Bookmark{Type: BookmarkTotalCollapse, Generation: 1, Tick: 150, Description: "all crashed"}); err != nil {
		t.Fatalf("WriteBookmark: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	gens := readLines(t, filepath.Join(dir, "generations.csv"))
	if len(gens) != 4 {
		t.Fatalf("generations.csv has %d lines, want header + 3", len(gens))
	}
	if !strings.HasPrefix(gens[0], "generation,end_tick,rockets") {
		t.Errorf("header = %q", gens[0])
	}
	if strings.Contains(gens[3], "Inf") {
		t.Errorf("infinite fitness leaked into CSV: %q", gens[3])
	}

	perf := readLines(t, filepath.Join(dir, "perf.csv"))
	if len(perf) != 2 || !strings.Contains(perf[0], "repopulate_pct") {
		t.Errorf("perf.csv = %v", perf)
	}

	bms := readLines(t, filepath.Join(dir, "bookmarks.csv"))
	if len(bms) != 2 || !strings.HasPrefix(bms[1], "total_collapse,1,150,") {
		t.Errorf("bookmarks.csv = %v", bms)
	}
}

func TestOutputManagerWritesConfigAndHall(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("written config does not load: %v", err)
	}

	hof := NewHallOfFame(2)
	rs := testRockets(1)
	rs[0].Fitness = 3
	hof.Consider(0, rs)
	if err := om.WriteHallOfFame(hof); err != nil {
		t.Fatalf("WriteHallOfFame: %v", err)
	}
	loaded, err := LoadHallOfFameFromFile(filepath.Join(dir, "hall_of_fame.json"))
	if err != nil || loaded.Size() != 1 {
		t.Errorf("hall reload = %v, %v", loaded, err)
	}

	path, err := om.WriteSnapshot(&Snapshot{Version: SnapshotVersion, Generation: 2})
	if err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	if filepath.Dir(path) != filepath.Join(dir, "snapshots") {
		t.Errorf("snapshot written to %s", path)
	}
}
