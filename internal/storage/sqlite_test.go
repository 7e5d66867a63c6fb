package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	// Save some scores
	if _, err := store.SaveScore("relicrun", 100); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("relicrun", 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("relicrun", 200); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	if _, err := store.SaveScore("relicrun_endless", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("relicrun", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	endlessScores, err := store.TopScores("relicrun_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(endlessScores) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endlessScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("relicrun", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("relicrun", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("relicrun")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("relicrun", 100)
	store.SaveScore("relicrun", 300)
	store.SaveScore("relicrun", 200)

	high, err = store.HighScore("relicrun")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("relicrun", 100)
	store.SaveScore("relicrun", 200)
	store.SaveScore("relicrun_endless", 300)

	if err := store.ClearScores("relicrun"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	campaignScores, _ := store.TopScores("relicrun", 10)
	if len(campaignScores) != 0 {
		t.Errorf("Expected 0 campaign scores after clear, got %d", len(campaignScores))
	}

	endlessScores, _ := store.TopScores("relicrun_endless", 10)
	if len(endlessScores) != 1 {
		t.Error("Endless scores should not be affected by clearing campaign")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("relicrun", i*10)
	}

	scores, err := store.AllScores("relicrun")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreSaveAndQueryRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{GameID: "relicrun", Score: 300, LevelReached: 2, Outcome: RunOutcomeGameOver, DurationSecs: 95},
		{GameID: "relicrun", Score: 1500, LevelReached: 5, Outcome: RunOutcomeWin, DurationSecs: 260},
		{GameID: "relicrun_endless", Score: 700, LevelReached: 8, Outcome: RunOutcomeGameOver, DurationSecs: 410},
	}
	for _, run := range runs {
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	campaign, err := store.RecentRuns("relicrun", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(campaign) != 2 {
		t.Errorf("Expected 2 campaign runs, got %d", len(campaign))
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 runs across all games, got %d", len(all))
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	best, err := store.BestRun("relicrun")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no best run for empty game, got %+v", best)
	}

	store.SaveRun(RunEntry{GameID: "relicrun", Score: 300, LevelReached: 2, Outcome: RunOutcomeGameOver})
	store.SaveRun(RunEntry{GameID: "relicrun", Score: 900, LevelReached: 4, Outcome: RunOutcomeGameOver})

	best, err = store.BestRun("relicrun")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.Score != 900 || best.LevelReached != 4 {
		t.Errorf("Unexpected best run: %+v", best)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("relicrun", 100)
	store.SaveScore("relicrun", 300)

	stats, err := store.GetGameStats("relicrun")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Nested directories should be created on demand
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
