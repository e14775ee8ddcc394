package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pthm-cable/rockets/rocket"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot holds the state of a finished generation for offline inspection.
type Snapshot struct {
	Version int   `json:"version"`
	RNGSeed int64 `json:"rng_seed"`

	ArenaWidth  float64 `json:"arena_width"`
	ArenaHeight float64 `json:"arena_height"`

	Generation   int   `json:"generation"`
	Tick         int64 `json:"tick"`
	ImpulseIndex int   `json:"impulse_index"`

	Rockets []RocketState `json:"rockets"`

	Bookmark *Bookmark `json:"bookmark,omitempty"`
}

// RocketState holds one rocket's complete state.
type RocketState struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	VelX float64 `json:"vel_x"`
	VelY float64 `json:"vel_y"`

	Status  string  `json:"status"`
	Landed  bool    `json:"landed,omitempty"`
	Fitness float64 `json:"fitness"`

	Genes [][2]float64 `json:"genes"`
}

// CaptureRockets converts rockets into their snapshot form.
func CaptureRockets(rockets []*rocket.Rocket) []RocketState {
	out := make([]RocketState, len(rockets))
	for i, r := range rockets {
		genes := r.Genome().Genes()
		flat := make([][2]float64, len(genes))
		for j, g := range genes {
			flat[j] = [2]float64{g.X, g.Y}
		}
		out[i] = RocketState{
			X:       r.Position.X,
			Y:       r.Position.Y,
			VelX:    r.Velocity.X,
			VelY:    r.Velocity.Y,
			Status:  r.Status.String(),
			Landed:  r.Landed,
			Fitness: finite(r.Fitness),
			Genes:   flat,
		}
	}
	return out
}

// SaveSnapshot writes a snapshot to dir and returns the file path.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	name := fmt.Sprintf("snapshot_gen%d", snapshot.Generation)
	if snapshot.Bookmark != nil {
		name = fmt.Sprintf("snapshot_gen%d_%s", snapshot.Generation, snapshot.Bookmark.Type)
	}
	path := filepath.Join(dir, name+".json")

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d, want %d", snapshot.Version, SnapshotVersion)
	}
	return &snapshot, nil
}
