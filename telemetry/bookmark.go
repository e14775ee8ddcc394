package telemetry

import (
	"fmt"
	"log/slog"
	"math"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFirstSuccess        BookmarkType = "first_success"
	BookmarkFitnessBreakthrough BookmarkType = "fitness_breakthrough"
	BookmarkTotalCollapse       BookmarkType = "total_collapse"
	BookmarkConvergence         BookmarkType = "convergence"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type" json:"type"`
	Generation  int          `csv:"generation" json:"generation"`
	Tick        int64        `csv:"tick" json:"tick"`
	Description string       `csv:"description" json:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"generation", b.Generation,
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects interesting generations.
type BookmarkDetector struct {
	// Rolling history of finite generation maxima (circular buffer)
	history     []float64
	historySize int
	historyIdx  int
	historyFull bool

	multiplier  float64 // breakthrough: max > multiplier * rolling mean
	convergence float64 // convergence: success rate >= this

	seenSuccess bool
	converged   bool // previous generation was at or above the convergence rate
}

// NewBookmarkDetector creates a detector with the given history size and
// thresholds.
func NewBookmarkDetector(historySize int, multiplier, convergence float64) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3 // minimum for a meaningful rolling mean
	}
	if multiplier <= 1 {
		multiplier = 1.5
	}
	if convergence <= 0 || convergence > 1 {
		convergence = 0.9
	}
	return &BookmarkDetector{
		history:     make([]float64, historySize),
		historySize: historySize,
		multiplier:  multiplier,
		convergence: convergence,
	}
}

// Check analyzes a finished generation and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats GenerationStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkFirstSuccess(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkBreakthrough(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkCollapse(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkConvergence(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	if !math.IsInf(stats.FitnessMax, 0) && !math.IsNaN(stats.FitnessMax) {
		bd.addToHistory(stats.FitnessMax)
	}
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(v float64) {
	bd.history[bd.historyIdx] = v
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []float64 {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkFirstSuccess(stats GenerationStats) *Bookmark {
	if bd.seenSuccess || stats.Succeeded == 0 {
		return nil
	}
	bd.seenSuccess = true
	return &Bookmark{
		Type:        BookmarkFirstSuccess,
		Generation:  stats.Generation,
		Tick:        stats.EndTick,
		Description: fmt.Sprintf("%d rockets reached the target, first after %d ticks", stats.Succeeded, stats.FirstSuccessTick),
	}
}

func (bd *BookmarkDetector) checkBreakthrough(stats GenerationStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total float64
	for _, h := range history {
		total += h
	}
	avg := total / float64(len(history))
	if avg <= 0 {
		return nil
	}

	if stats.FitnessMax > avg*bd.multiplier {
		return &Bookmark{
			Type:        BookmarkFitnessBreakthrough,
			Generation:  stats.Generation,
			Tick:        stats.EndTick,
			Description: fmt.Sprintf("Best fitness %.2f is %.1fx rolling average (%.2f)", stats.FitnessMax, stats.FitnessMax/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkCollapse(stats GenerationStats) *Bookmark {
	if stats.Rockets == 0 || stats.Dead != stats.Rockets {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkTotalCollapse,
		Generation:  stats.Generation,
		Tick:        stats.EndTick,
		Description: fmt.Sprintf("All %d rockets crashed", stats.Rockets),
	}
}

func (bd *BookmarkDetector) checkConvergence(stats GenerationStats) *Bookmark {
	rate := stats.SuccessRate()
	if rate < bd.convergence {
		bd.converged = false
		return nil
	}
	if bd.converged {
		return nil
	}
	bd.converged = true
	return &Bookmark{
		Type:        BookmarkConvergence,
		Generation:  stats.Generation,
		Tick:        stats.EndTick,
		Description: fmt.Sprintf("%.0f%% of rockets reached the target", rate*100),
	}
}
