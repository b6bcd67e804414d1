package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, store *Store, r Run) Run {
	t.Helper()
	saved, err := store.SaveRun(r)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return saved
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, Run{GameID: "asteroids", Score: 7})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("asteroids")
	if err != nil || high != 7 {
		t.Errorf("HighScore() after reopen = %d, %v; expected 7", high, err)
	}
}

func TestSaveRunAssignsIDs(t *testing.T) {
	store := openTestStore(t)

	saved := mustSave(t, store, Run{
		GameID:             "asteroids",
		Player:             "ana",
		Score:              12,
		LasersFired:        30,
		AsteroidsDestroyed: 12,
		Ticks:              3600,
		Seed:               42,
		Duration:           61500 * time.Millisecond,
	})

	if saved.ID == 0 {
		t.Error("SaveRun() should assign a row ID")
	}
	if _, err := uuid.Parse(saved.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", saved.RunID, err)
	}

	got, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() = nil, expected the saved run")
	}
	if got.Player != "ana" || got.Score != 12 || got.LasersFired != 30 || got.Ticks != 3600 || got.Seed != 42 {
		t.Errorf("RunByID() = %+v, fields do not match", got)
	}
	if got.Duration != 61500*time.Millisecond {
		t.Errorf("Duration = %v, expected 1m1.5s", got.Duration)
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("RunByID(unknown) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestSaveRunRequiresGameID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{Score: 1}); err == nil {
		t.Error("SaveRun() without game id should fail")
	}
}

func TestSaveRunDuplicateRunID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.NewString()
	mustSave(t, store, Run{RunID: id, GameID: "asteroids"})
	if _, err := store.SaveRun(Run{RunID: id, GameID: "asteroids"}); err == nil {
		t.Error("SaveRun() with a duplicate run id should fail")
	}
}

func TestTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200, 100} {
		mustSave(t, store, Run{GameID: "asteroids", Score: score})
	}
	mustSave(t, store, Run{GameID: "other", Score: 500})

	runs, err := store.TopRuns("asteroids", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(runs))
	}

	want := []int{200, 100, 100, 50}
	for i, r := range runs {
		if r.Score != want[i] {
			t.Errorf("runs[%d].Score = %d, expected %d", i, r.Score, want[i])
		}
	}
	if runs[1].ID > runs[2].ID {
		t.Error("ties should list the earlier run first")
	}

	top, _ := store.TopRuns("asteroids", 2)
	if len(top) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(top))
	}
}

func TestPlayerRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{GameID: "asteroids", Player: "ana", Score: 1})
	mustSave(t, store, Run{GameID: "asteroids", Player: "bo", Score: 2})
	mustSave(t, store, Run{GameID: "asteroids", Player: "ana", Score: 3})

	runs, err := store.PlayerRuns("ana", 0)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for ana, got %d", len(runs))
	}
	if runs[0].Score != 3 {
		t.Errorf("most recent run first, got score %d", runs[0].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("asteroids")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, score := range []int{100, 300, 200} {
		mustSave(t, store, Run{GameID: "asteroids", Score: score})
	}

	high, err = store.HighScore("asteroids")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("asteroids")
	if err != nil {
		t.Fatalf("GetGameStats() on empty table failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() || empty.Accuracy() != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSave(t, store, Run{GameID: "asteroids", Score: 4, LasersFired: 10})
	mustSave(t, store, Run{GameID: "asteroids", Score: 6, LasersFired: 10})

	stats, err := store.GetGameStats("asteroids")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 6 || stats.TotalScore != 10 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 5 {
		t.Errorf("AvgScore = %v, expected 5", stats.AvgScore)
	}
	if stats.Accuracy() != 0.5 {
		t.Errorf("Accuracy() = %v, expected 0.5", stats.Accuracy())
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{GameID: "asteroids", Score: 1})
	mustSave(t, store, Run{GameID: "other", Score: 2})

	if err := store.ClearRuns("asteroids"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns("asteroids", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("other", 10); len(runs) != 1 {
		t.Error("other games should not be affected by clearing")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
