package telemetry

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/rockets/components"
	"github.com/pthm-cable/rockets/vector"
)

func TestSnapshotSaveLoad(t *testing.T) {
	dir := t.TempDir()

	rs := testRockets(3)
	rs[0].Status = components.StatusSucceeded
	rs[0].Fitness = math.Inf(1)
	rs[1].Position = vector.New(400, 120)
	rs[1].Velocity = vector.New(1.5, -0.5)
	rs[1].Fitness = 7.25

	snap := &Snapshot{
		Version:      SnapshotVersion,
		RNGSeed:      42,
		ArenaWidth:   1440,
		ArenaHeight:  900,
		Generation:   4,
		Tick:         1875,
		ImpulseIndex: 0,
		Rockets:      CaptureRockets(rs),
		Bookmark: &Bookmark{
			Type:        BookmarkFirstSuccess,
			Generation:  4,
			Tick:        1875,
			Description: "test",
		},
	}

	path, err := SaveSnapshot(snap, dir)
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if !strings.HasSuffix(filepath.Base(path), "gen4_first_success.json") {
		t.Errorf("unexpected file name %s", path)
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if loaded.RNGSeed != 42 || loaded.Generation != 4 || loaded.Tick != 1875 {
		t.Errorf("header mismatch: %+v", loaded)
	}
	if len(loaded.Rockets) != 3 {
		t.Fatalf("rockets = %d, want 3", len(loaded.Rockets))
	}
	if loaded.Rockets[0].Status != "succeeded" || loaded.Rockets[0].Fitness != math.MaxFloat64 {
		t.Errorf("rocket 0 = %+v", loaded.Rockets[0])
	}
	r1 := loaded.Rockets[1]
	if r1.X != 400 || r1.Y != 120 || r1.VelX != 1.5 || r1.VelY != -0.5 || r1.Fitness != 7.25 {
		t.Errorf("rocket 1 = %+v", r1)
	}
	if len(r1.Genes) != 5 {
		t.Errorf("genes = %d, want 5", len(r1.Genes))
	}
	if loaded.Bookmark == nil || loaded.Bookmark.Type != BookmarkFirstSuccess {
		t.Errorf("bookmark lost: %+v", loaded.Bookmark)
	}
}

func TestLoadSnapshotErrors(t *testing.T) {
	if _, err := LoadSnapshot(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	dir := t.TempDir()
	path, err := SaveSnapshot(&Snapshot{Version: SnapshotVersion + 1}, dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnapshot(path); err == nil {
		t.Error("expected error for unknown version")
	}
}
