package telemetry

import "testing"

func hasBookmark(bms []Bookmark, typ BookmarkType) bool {
	for _, bm := range bms {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_KillStreak(t *testing.T) {
	bd := NewBookmarkDetector(10, 550)

	for i := 0; i < 5; i++ {
		bms := bd.Check(WindowStats{WindowEndTick: int32(i * 300), EnemiesKilled: 1, Enemies: 40})
		if hasBookmark(bms, BookmarkKillStreak) {
			t.Fatalf("window %d: unexpected kill streak", i)
		}
	}

	bms := bd.Check(WindowStats{WindowEndTick: 1500, EnemiesKilled: 4, Enemies: 30})
	if !hasBookmark(bms, BookmarkKillStreak) {
		t.Error("expected kill_streak bookmark")
	}
}

func TestBookmarkDetector_KillStreakNeedsHistory(t *testing.T) {
	bd := NewBookmarkDetector(10, 550)
	bms := bd.Check(WindowStats{EnemiesKilled: 10, Enemies: 30})
	if hasBookmark(bms, BookmarkKillStreak) {
		t.Error("kill streak without history")
	}
}

func TestBookmarkDetector_Sharpshooter(t *testing.T) {
	tests := []struct {
		name     string
		fired    int
		accuracy float64
		want     bool
	}{
		{"accurate", 4, 0.75, true},
		{"too few shots", 3, 1, false},
		{"inaccurate", 10, 0.5, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bd := NewBookmarkDetector(5, 550)
			bms := bd.Check(WindowStats{BulletsFired: tc.fired, Accuracy: tc.accuracy, Enemies: 40})
			if got := hasBookmark(bms, BookmarkSharpshooter); got != tc.want {
				t.Errorf("sharpshooter = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBookmarkDetector_FormationLow(t *testing.T) {
	bd := NewBookmarkDetector(5, 550)

	steps := []struct {
		bottom float64
		want   bool
	}{
		{330, false},
		{550, true},
		{590, false}, // still low, already reported
		{500, false}, // back above the line resets the latch
		{560, true},
	}
	for i, s := range steps {
		bms := bd.Check(WindowStats{FormationBottom: s.bottom, Enemies: 10})
		if got := hasBookmark(bms, BookmarkFormationLow); got != s.want {
			t.Errorf("step %d: formation_low = %v, want %v", i, got, s.want)
		}
	}
}

func TestBookmarkDetector_FormationCleared(t *testing.T) {
	bd := NewBookmarkDetector(5, 550)

	if hasBookmark(bd.Check(WindowStats{Enemies: 2}), BookmarkFormationCleared) {
		t.Fatal("cleared with enemies left")
	}
	if !hasBookmark(bd.Check(WindowStats{Enemies: 0}), BookmarkFormationCleared) {
		t.Fatal("expected formation_cleared")
	}
	if hasBookmark(bd.Check(WindowStats{Enemies: 0}), BookmarkFormationCleared) {
		t.Error("formation_cleared reported twice")
	}
}
