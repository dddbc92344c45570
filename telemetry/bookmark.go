package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkKillStreak       BookmarkType = "kill_streak"
	BookmarkSharpshooter     BookmarkType = "sharpshooter"
	BookmarkFormationLow     BookmarkType = "formation_low"
	BookmarkFormationCleared BookmarkType = "formation_cleared"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector flags notable stats windows.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	lowLine    float64 // Formation bottom that counts as dangerously low
	wasLow     bool
	wasCleared bool
}

// NewBookmarkDetector creates a detector with the given history size.
// lowLine is the y coordinate the formation bottom must reach to be
// flagged as low, usually the top of the player ship.
func NewBookmarkDetector(historySize int, lowLine float64) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
		lowLine:     lowLine,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkKillStreak(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkSharpshooter(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkFormationLow(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkFormationCleared(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

// checkKillStreak fires when a window kills at least 3 enemies and at least
// twice the rolling average.
func (bd *BookmarkDetector) checkKillStreak(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) == 0 || stats.EnemiesKilled < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.EnemiesKilled
	}
	avg := float64(total) / float64(len(history))

	if float64(stats.EnemiesKilled) >= avg*2.0 {
		return &Bookmark{
			Type:        BookmarkKillStreak,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%d kills against an average of %.1f", stats.EnemiesKilled, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkSharpshooter(stats WindowStats) *Bookmark {
	if stats.BulletsFired < 4 || stats.Accuracy < 0.75 {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkSharpshooter,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Accuracy %.2f over %d shots", stats.Accuracy, stats.BulletsFired),
	}
}

// checkFormationLow fires once each time the formation crosses the low line.
func (bd *BookmarkDetector) checkFormationLow(stats WindowStats) *Bookmark {
	low := stats.Enemies > 0 && stats.FormationBottom >= bd.lowLine
	crossed := low && !bd.wasLow
	bd.wasLow = low
	if !crossed {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkFormationLow,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Formation bottom %.0f reached %.0f with %d enemies left", stats.FormationBottom, bd.lowLine, stats.Enemies),
	}
}

// checkFormationCleared fires the first time no enemies remain.
func (bd *BookmarkDetector) checkFormationCleared(stats WindowStats) *Bookmark {
	if bd.wasCleared || stats.Enemies > 0 {
		return nil
	}
	bd.wasCleared = true
	return &Bookmark{
		Type:        BookmarkFormationCleared,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("All enemies destroyed at %.1fs", stats.SimTimeSec),
	}
}
