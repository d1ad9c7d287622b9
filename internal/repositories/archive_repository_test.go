package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"vibevoyager/internal/models"
)

func tempRepo(t *testing.T) (ArchiveRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "itineraries.json")
	return NewArchiveRepository(path), path
}

func entry(id string) models.SavedItinerary {
	return models.SavedItinerary{
		ID:              id,
		Timestamp:       "2026-08-28T10:00:00Z",
		Tastes:          []string{"Jazz Music", "Sushi"},
		Vibe:            "Neon Nomad",
		VibeDescription: "City lights.",
		Destination:     "Tokyo",
		Activities: []models.Activity{
			{ID: "1", Title: "Jazz Kissa Crawl", Time: "8 PM", Category: "Music"},
		},
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	repo, _ := tempRepo(t)
	assert.Empty(t, repo.Load())
	assert.Equal(t, []byte("[]"), repo.LoadRaw())
}

func TestLoadCorruptDocumentIsEmpty(t *testing.T) {
	repo, path := tempRepo(t)
	assert.NoError(t, os.WriteFile(path, []byte(`{"not":"an array`), 0o644))
	assert.Empty(t, repo.Load())
}

func TestStoreRoundTrip(t *testing.T) {
	repo, _ := tempRepo(t)

	items := []models.SavedItinerary{entry("100"), entry("99")}
	assert.NoError(t, repo.Store(items))
	assert.Equal(t, items, repo.Load())
}

func TestLoadFiltersPartialEntries(t *testing.T) {
	repo, path := tempRepo(t)

	doc := `[
	  {"id":"1","destination":"Tokyo","vibe":"a","vibeDescription":"b","timestamp":"t","tastes":["x","y"],"activities":[]},
	  {"destination":"Lisbon","vibe":"missing id"},
	  {"id":"3","vibe":"missing destination"}
	]`
	assert.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	items := repo.Load()
	assert.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
}

func TestLoadFlattensLegacyDayShapedActivities(t *testing.T) {
	repo, path := tempRepo(t)

	doc := `[{
	  "id":"legacy-1","destination":"Tokyo","vibe":"Neon Nomad",
	  "vibeDescription":"old record","timestamp":"2025-01-01T00:00:00Z",
	  "tastes":["Jazz Music","Sushi"],
	  "activities":[
	    {"day":1,"activities":[{"id":"1","title":"First"},{"id":"2","title":"Second"}]},
	    {"day":2,"activities":[{"id":"3","title":"Third"}]}
	  ]
	}]`
	assert.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	items := repo.Load()
	assert.Len(t, items, 1)

	titles := make([]string, 0, len(items[0].Activities))
	for _, a := range items[0].Activities {
		titles = append(titles, a.Title)
	}
	assert.Equal(t, []string{"First", "Second", "Third"}, titles)
}

func TestFreshFlatEntriesAreNotFlattened(t *testing.T) {
	repo, _ := tempRepo(t)

	assert.NoError(t, repo.Store([]models.SavedItinerary{entry("100")}))

	items := repo.Load()
	assert.Len(t, items, 1)
	assert.Len(t, items[0].Activities, 1)
	assert.Equal(t, "Jazz Kissa Crawl", items[0].Activities[0].Title)
}

// Two writers on the same document: the later write wins wholesale. This is
// accepted behavior for the single-user, low-frequency access pattern, not a
// bug to be fixed with versioning.
func TestConcurrentWritersLastWriteWins(t *testing.T) {
	repoA, path := tempRepo(t)
	repoB := NewArchiveRepository(path)

	assert.NoError(t, repoA.Store([]models.SavedItinerary{entry("from-a")}))
	assert.NoError(t, repoB.Store([]models.SavedItinerary{entry("from-b")}))

	items := repoA.Load()
	assert.Len(t, items, 1)
	assert.Equal(t, "from-b", items[0].ID)
}
