package telemetry

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/pthm-cable/rockets/components"
	"github.com/pthm-cable/rockets/genetics"
	"github.com/pthm-cable/rockets/rocket"
	"github.com/pthm-cable/rockets/vector"
)

// HallEntry is one of the best rockets seen across the whole run.
type HallEntry struct {
	Generation int
	Fitness    float64
	Status     components.Status
	Reached    bool // touched the target, including a crash on it
	Genes      []vector.Vector2
}

// Genome rebuilds the entry's genome.
func (e HallEntry) Genome() *genetics.Genome {
	g := genetics.NewGenome(len(e.Genes))
	g.SetGenes(e.Genes)
	return g
}

// HallOfFame keeps the highest-fitness genomes across generations, sorted
// best first.
type HallOfFame struct {
	entries []HallEntry
	maxSize int
}

// NewHallOfFame creates a hall holding at most maxSize entries.
func NewHallOfFame(maxSize int) *HallOfFame {
	return &HallOfFame{
		entries: make([]HallEntry, 0, maxSize),
		maxSize: maxSize,
	}
}

// Consider offers every rocket of a finished generation to the hall and
// returns how many were admitted. Rockets with no fitness are ignored.
func (hof *HallOfFame) Consider(generation int, rockets []*rocket.Rocket) int {
	if hof == nil || hof.maxSize == 0 {
		return 0
	}
	added := 0
	for _, r := range rockets {
		if !(r.Fitness > 0) {
			continue
		}
		if hof.insert(HallEntry{
			Generation: generation,
			Fitness:    r.Fitness,
			Status:     r.Status,
			Reached:    r.Reached(),
			Genes:      r.Genome().Genes(),
		}) {
			added++
		}
	}
	return added
}

// insert adds an entry, maintaining descending fitness order. If the hall is
// full, the lowest-fitness entry is removed. Ties keep the older entry first.
func (hof *HallOfFame) insert(entry HallEntry) bool {
	idx := sort.Search(len(hof.entries), func(i int) bool {
		return hof.entries[i].Fitness < entry.Fitness
	})
	if idx >= hof.maxSize {
		return false
	}

	hof.entries = append(hof.entries, HallEntry{})
	copy(hof.entries[idx+1:], hof.entries[idx:])
	hof.entries[idx] = entry

	if len(hof.entries) > hof.maxSize {
		hof.entries = hof.entries[:hof.maxSize]
	}
	return true
}

// Best returns the top entry, or false if the hall is empty.
func (hof *HallOfFame) Best() (HallEntry, bool) {
	if hof == nil || len(hof.entries) == 0 {
		return HallEntry{}, false
	}
	return hof.entries[0], true
}

// Entries returns the hall, best first.
func (hof *HallOfFame) Entries() []HallEntry {
	if hof == nil {
		return nil
	}
	out := make([]HallEntry, len(hof.entries))
	copy(out, hof.entries)
	return out
}

// Size returns the number of entries.
func (hof *HallOfFame) Size() int {
	if hof == nil {
		return 0
	}
	return len(hof.entries)
}

// hallEntryJSON is the JSON-serializable representation of a hall entry.
type hallEntryJSON struct {
	Generation int          `json:"generation"`
	Fitness    float64      `json:"fitness"`
	Reached    bool         `json:"reached_target"`
	Status     string       `json:"status"`
	Genes      [][2]float64 `json:"genes"`
}

// MarshalJSON serializes the hall as a JSON array, best first. Infinite
// fitness is written as the largest finite float.
func (hof *HallOfFame) MarshalJSON() ([]byte, error) {
	export := make([]hallEntryJSON, len(hof.entries))
	for i, e := range hof.entries {
		genes := make([][2]float64, len(e.Genes))
		for j, g := range e.Genes {
			genes[j] = [2]float64{g.X, g.Y}
		}
		export[i] = hallEntryJSON{
			Generation: e.Generation,
			Fitness:    finite(e.Fitness),
			Reached:    e.Reached,
			Status:     e.Status.String(),
			Genes:      genes,
		}
	}
	return json.MarshalIndent(export, "", "  ")
}

// LoadHallOfFameFromFile reads a hall written by MarshalJSON.
func LoadHallOfFameFromFile(path string) (*HallOfFame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading hall of fame: %w", err)
	}

	var raw []hallEntryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing hall of fame JSON: %w", err)
	}

	hof := NewHallOfFame(len(raw))
	for _, ej := range raw {
		genes := make([]vector.Vector2, len(ej.Genes))
		for j, g := range ej.Genes {
			genes[j] = vector.New(g[0], g[1])
		}
		status := components.StatusAlive
		switch ej.Status {
		case components.StatusDead.String():
			status = components.StatusDead
		case components.StatusSucceeded.String():
			status = components.StatusSucceeded
		}
		fitness := ej.Fitness
		if fitness == math.MaxFloat64 {
			fitness = math.Inf(1)
		}
		hof.insert(HallEntry{
			Generation: ej.Generation,
			Fitness:    fitness,
			Status:     status,
			Reached:    ej.Reached,
			Genes:      genes,
		})
	}
	return hof, nil
}
