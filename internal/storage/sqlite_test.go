package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreOpenNestedPath(t *testing.T) {
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

func TestStoreOpenFailsOnFileParent(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(filepath.Join(blocker, "test.db")); err == nil {
		t.Error("Open() should fail when the parent is a regular file")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("neonmaze", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("neonmaze", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "neonmaze" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("neonmaze", (i+1)*100)
	}

	scores, err := store.TopScores("neonmaze", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limits fall back to ten.
	for i := 0; i < 10; i++ {
		store.SaveScore("neonmaze", i)
	}
	scores, err = store.TopScores("neonmaze", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("neonmaze")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("neonmaze", 100)
	store.SaveScore("neonmaze", 300)
	store.SaveScore("neonmaze", 200)

	high, err = store.HighScore("neonmaze")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("neonmaze", 100)
	store.SaveScore("neonmaze", 200)
	store.SaveScore("other", 300)
	store.SaveHighScore("neon_maze_high_score", 200, time.Now())

	if err := store.ClearScores("neonmaze"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("neonmaze", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game's scores should not be affected by clearing")
	}

	high, _ := store.LoadHighScore("neon_maze_high_score")
	if high != 200 {
		t.Errorf("ClearScores() should keep the best-ever score, got %d", high)
	}
}

func TestStoreHighScoreKeyed(t *testing.T) {
	store := openTestStore(t)
	const key = "neon_maze_high_score"
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	high, err := store.LoadHighScore(key)
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for a missing key, got %d", high)
	}

	tests := []struct {
		save int
		want int
	}{
		{save: 120, want: 120},
		{save: 80, want: 120},  // lower is ignored
		{save: 120, want: 120}, // equal is ignored
		{save: 450, want: 450},
	}

	for _, tt := range tests {
		if err := store.SaveHighScore(key, tt.save, at); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", tt.save, err)
		}
		got, err := store.LoadHighScore(key)
		if err != nil {
			t.Fatalf("LoadHighScore() failed: %v", err)
		}
		if got != tt.want {
			t.Errorf("after SaveHighScore(%d): got %d, want %d", tt.save, got, tt.want)
		}
	}

	other, _ := store.LoadHighScore("another_key")
	if other != 0 {
		t.Errorf("Keys should be independent, got %d", other)
	}
}

func TestStoreHighScorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveHighScore("k", 990, time.Now()); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.LoadHighScore("k")
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if high != 990 {
		t.Errorf("Expected 990 after reopen, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("neonmaze")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("neonmaze", 100)
	store.SaveScore("neonmaze", 300)

	stats, err = store.Stats("neonmaze")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, want 400", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	if got := parseTime("2026-03-04 05:06:07"); !got.Equal(want) {
		t.Errorf("parseTime(sqlite layout) = %v", got)
	}
	if got := parseTime(want); !got.Equal(want) {
		t.Errorf("parseTime(time.Time) = %v", got)
	}
	if got := parseTime(42); !got.IsZero() {
		t.Errorf("parseTime(int) = %v, want zero", got)
	}
}
