package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created in nested directory")
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{GameID: "tetris", Score: 100, Lines: 1, Level: 0},
		{GameID: "tetris", Score: 50, Lines: 0, Level: 0},
		{GameID: "tetris", Score: 1200, Lines: 12, Level: 1},
		{GameID: "tetris_classic", Score: 500, Lines: 3},
	}
	for _, r := range results {
		id, err := store.SaveResult(r)
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	scores, err := store.TopScores("tetris", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.Equal(t, 1200, scores[0].Score)
	assert.Equal(t, 12, scores[0].Lines)
	assert.Equal(t, 1, scores[0].Level)
	assert.Equal(t, 100, scores[1].Score)
	assert.Equal(t, 50, scores[2].Score)
	for _, s := range scores {
		assert.Equal(t, "tetris", s.GameID)
	}
}

func TestStoreSaveRequiresGameID(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveResult(Result{Score: 10})
	assert.Error(t, err)
}

func TestStoreTopScoresTieBreaksOnLines(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveResult(Result{GameID: "tetris", Score: 300, Lines: 1})
	require.NoError(t, err)
	_, err = store.SaveResult(Result{GameID: "tetris", Score: 300, Lines: 4})
	require.NoError(t, err)

	scores, err := store.TopScores("tetris", 0) // default limit
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, 4, scores[0].Lines)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		_, err := store.SaveResult(Result{GameID: "tetris", Score: i * 10})
		require.NoError(t, err)
	}

	scores, err := store.TopScores("tetris", 5)
	require.NoError(t, err)
	require.Len(t, scores, 5)
	assert.Equal(t, 190, scores[0].Score)
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	require.NoError(t, err)
	assert.Equal(t, 0, high, "empty store should report 0")

	for _, s := range []int{100, 300, 200} {
		_, err := store.SaveResult(Result{GameID: "tetris", Score: s})
		require.NoError(t, err)
	}

	high, err = store.HighScore("tetris")
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveResult(Result{GameID: "tetris", Score: 100})
	require.NoError(t, err)
	_, err = store.SaveResult(Result{GameID: "tetris_classic", Score: 200})
	require.NoError(t, err)

	require.NoError(t, store.ClearScores("tetris"))

	scores, err := store.TopScores("tetris", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	scores, err = store.TopScores("tetris_classic", 10)
	require.NoError(t, err)
	assert.Len(t, scores, 1, "other modes must be untouched")
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("tetris")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.GamesCount)
	assert.True(t, stats.LastPlayed.IsZero())

	_, err = store.SaveResult(Result{GameID: "tetris", Score: 100, Lines: 2})
	require.NoError(t, err)
	_, err = store.SaveResult(Result{GameID: "tetris", Score: 300, Lines: 6})
	require.NoError(t, err)

	stats, err = store.GetGameStats("tetris")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 300, stats.HighScore)
	assert.InDelta(t, 200.0, stats.AvgScore, 0.001)
	assert.Equal(t, 6, stats.MostLines)
	assert.Equal(t, int64(8), stats.TotalLines)
	assert.False(t, stats.LastPlayed.IsZero())
}
