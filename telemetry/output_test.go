package telemetry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/invaders/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager(\"\") error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	// All methods are nil-safe.
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Errorf("WriteTelemetry on nil: %v", err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Errorf("WritePerf on nil: %v", err)
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Errorf("WriteConfig on nil: %v", err)
	}
	if err := om.WriteBookmark(Bookmark{}); err != nil {
		t.Errorf("WriteBookmark on nil: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("Dir on nil = %q", om.Dir())
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil: %v", err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager error: %v", err)
	}

	windows := []WindowStats{
		{WindowEndTick: 300, BulletsFired: 4, EnemiesKilled: 2, Enemies: 38},
		{WindowEndTick: 600, BulletsFired: 1, Bounces: 1, Enemies: 37},
	}
	for _, w := range windows {
		if err := om.WriteTelemetry(w); err != nil {
			t.Fatalf("WriteTelemetry: %v", err)
		}
		if err := om.WritePerf(PerfStats{FPS: 60}, w.WindowEndTick); err != nil {
			t.Fatalf("WritePerf: %v", err)
		}
	}
	if err := om.WriteBookmark(Bookmark{Type: BookmarkKillStreak, Tick: 600, Description: "4 kills, against 1.0"}); err != nil {
		t.Fatalf("WriteBookmark: %v", err)
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var rows []WindowStats
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		t.Fatalf("reading telemetry.csv: %v", err)
	}
	// One header row despite two writes
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].WindowEndTick != 300 || rows[0].EnemiesKilled != 2 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Bounces != 1 || rows[1].Enemies != 37 {
		t.Errorf("row 1 = %+v", rows[1])
	}

	pf, err := os.Open(filepath.Join(dir, "perf.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer pf.Close()

	var perf []PerfStatsCSV
	if err := gocsv.UnmarshalFile(pf, &perf); err != nil {
		t.Fatalf("reading perf.csv: %v", err)
	}
	if len(perf) != 2 || perf[1].WindowEnd != 600 || perf[1].FPS != 60 {
		t.Errorf("perf rows = %+v", perf)
	}

	bf, err := os.Open(filepath.Join(dir, "bookmarks.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer bf.Close()

	var bookmarks []Bookmark
	if err := gocsv.UnmarshalFile(bf, &bookmarks); err != nil {
		t.Fatalf("reading bookmarks.csv: %v", err)
	}
	if len(bookmarks) != 1 || bookmarks[0].Type != BookmarkKillStreak || bookmarks[0].Description != "4 kills, against 1.0" {
		t.Errorf("bookmarks = %+v", bookmarks)
	}

	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("written config does not load: %v", err)
	}
}
