package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/invaders/components"
)

func TestSnapshotSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()

	snapshot := &Snapshot{
		Version:      SnapshotVersion,
		ScreenWidth:  800,
		ScreenHeight: 600,
		Tick:         300,
		Entities: []EntityState{
			{Kind: components.KindPlayer, X: 375, Y: 550, W: 50, H: 40, Speed: 5},
			{Kind: components.KindEnemy, X: 160, Y: 90, W: 40, H: 40, Speed: 2, Direction: -1},
			{Kind: components.KindBullet, X: 398, Y: 120, W: 5, H: 10, Speed: 7},
		},
		Bookmark: &Bookmark{
			Type:        BookmarkKillStreak,
			Tick:        300,
			Description: "Test bookmark",
		},
	}

	path, err := SaveSnapshot(snapshot, tmpDir)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if filepath.Base(path) != "snapshot_300_kill_streak.json" {
		t.Errorf("file name = %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"kind": "enemy"`) {
		t.Errorf("kinds should be written by name:\n%s", data)
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if loaded.Tick != 300 || len(loaded.Entities) != 3 {
		t.Fatalf("loaded tick %d with %d entities", loaded.Tick, len(loaded.Entities))
	}
	for i, want := range snapshot.Entities {
		if loaded.Entities[i] != want {
			t.Errorf("entity %d = %+v, want %+v", i, loaded.Entities[i], want)
		}
	}
	if loaded.Bookmark == nil || loaded.Bookmark.Type != BookmarkKillStreak {
		t.Errorf("bookmark = %+v", loaded.Bookmark)
	}
	if loaded.Count(components.KindEnemy) != 1 || loaded.Count(components.KindBullet) != 1 {
		t.Error("Count mismatch")
	}
}

func TestSnapshotWithoutBookmark(t *testing.T) {
	path, err := SaveSnapshot(&Snapshot{Version: SnapshotVersion, Tick: 7}, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "snapshot_7.json" {
		t.Errorf("file name = %s", filepath.Base(path))
	}
}

func TestLoadSnapshotErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnapshot(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte(`{"version": 99}`), 0644)
	if _, err := LoadSnapshot(bad); err == nil {
		t.Error("expected version error")
	}

	unknown := filepath.Join(dir, "unknown.json")
	os.WriteFile(unknown, []byte(`{"version": 1, "entities": [{"kind": "boss"}]}`), 0644)
	if _, err := LoadSnapshot(unknown); err == nil {
		t.Error("expected error for unknown kind")
	}
}
