package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/gravity-snake/internal/core"
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

func run(score int) core.RunSummary {
	return core.RunSummary{Score: score, Length: 5 + 2*score, Ticks: uint64(100 * (score + 1)), DeathCause: "wall-collision"}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRun("easy", run(score)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	// Different difficulty
	if _, err := store.SaveRun("god-mode", run(500)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopScores("easy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
	if runs[0].Length != 405 || runs[0].Ticks != 20100 || runs[0].DeathCause != "wall-collision" {
		t.Errorf("Run details not stored: %+v", runs[0])
	}

	god, err := store.TopScores("god-mode", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(god) != 1 {
		t.Errorf("Expected 1 god-mode run, got %d", len(god))
	}
}

func TestStoreSaveRunAssignsIDs(t *testing.T) {
	store := openTestStore(t)

	a, err := store.SaveRun("beginner", run(3))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	b, err := store.SaveRun("beginner", run(3))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	if a.ID == 0 || b.ID == 0 || a.ID == b.ID {
		t.Errorf("row IDs not assigned: %d, %d", a.ID, b.ID)
	}
	if _, err := uuid.Parse(a.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", a.RunID, err)
	}
	if a.RunID == b.RunID {
		t.Error("two runs share a RunID")
	}

	got, err := store.RunByID(b.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil || got.ID != b.ID || got.Score != 3 {
		t.Errorf("RunByID() = %+v, expected run %d", got, b.ID)
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("RunByID(unknown) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 runs
	for i := 0; i < 5; i++ {
		store.SaveRun("test", run((i+1)*100))
	}

	// Request only top 3
	runs, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Should be 500, 400, 300 (top 3)
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 runs with default limit, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty difficulty, got %d", high)
	}

	store.SaveRun("easy", run(10))
	store.SaveRun("easy", run(30))
	store.SaveRun("easy", run(20))

	high, err = store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("easy", run(1))
	store.SaveRun("easy", run(2))
	store.SaveRun("extreme", run(3))

	// Clear only easy runs
	if err := store.ClearScores("easy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	easy, _ := store.TopScores("easy", 10)
	if len(easy) != 0 {
		t.Errorf("Expected 0 easy runs after clear, got %d", len(easy))
	}

	extreme, _ := store.TopScores("extreme", 10)
	if len(extreme) != 1 {
		t.Errorf("Extreme runs should not be affected by clearing easy")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("beginner")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.RunsCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() for unplayed difficulty = %+v", empty)
	}

	store.SaveRun("beginner", run(2))
	store.SaveRun("beginner", run(4))
	store.SaveRun("extreme", run(1))

	st, err := store.Stats("beginner")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.RunsCount != 2 || st.HighScore != 4 || st.TotalScore != 6 || st.AvgScore != 3 || st.Longest != 13 {
		t.Errorf("Stats() = %+v", st)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("AllStats() returned %d difficulties, expected 2", len(all))
	}
	if all["extreme"] == nil || all["extreme"].RunsCount != 1 {
		t.Errorf("AllStats()[extreme] = %+v", all["extreme"])
	}
}

func TestStoreSettings(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Setting(SettingDifficulty); err != nil || ok {
		t.Fatalf("Setting() on empty store = ok %v, err %v", ok, err)
	}

	if err := store.SetSetting(SettingDifficulty, "easy"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}
	if err := store.SetSetting(SettingDifficulty, "extreme"); err != nil {
		t.Fatalf("SetSetting() overwrite failed: %v", err)
	}

	v, ok, err := store.Setting(SettingDifficulty)
	if err != nil || !ok || v != "extreme" {
		t.Errorf("Setting() = %q, %v, %v; expected extreme", v, ok, err)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
