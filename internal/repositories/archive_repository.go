package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"vibevoyager/internal/models"
	"vibevoyager/pkg/utils"
)

// StorageKey is the single well-known key the archive lives under. The file
// on disk is that key's value: one JSON array, nothing else.
const StorageKey = "vibeVoyagerItineraries"

// ArchiveRepository persists the saved-itinerary collection as one JSON
// document. Load is defensive: a missing or corrupt document reads as empty,
// never as an error. Raw variants exist so the service layer can restore the
// exact prior serialization on undo.
type ArchiveRepository interface {
	Key() string
	Load() []models.SavedItinerary
	LoadRaw() []byte
	Store(items []models.SavedItinerary) error
	StoreRaw(raw []byte) error
}

type fileArchiveRepository struct {
	path string
}

func NewArchiveRepository(path string) ArchiveRepository {
	return &fileArchiveRepository{path: path}
}

func (r *fileArchiveRepository) Key() string { return StorageKey }

// storedEntry defers activity decoding so legacy day-structured records can
// be flattened at read time.
type storedEntry struct {
	ID              string          `json:"id"`
	Timestamp       string          `json:"timestamp"`
	Tastes          []string        `json:"tastes"`
	Vibe            string          `json:"vibe"`
	VibeDescription string          `json:"vibeDescription"`
	Destination     string          `json:"destination"`
	Activities      json.RawMessage `json:"activities"`
}

func (r *fileArchiveRepository) Load() []models.SavedItinerary {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return []models.SavedItinerary{}
	}

	var entries []storedEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return []models.SavedItinerary{}
	}

	items := make([]models.SavedItinerary, 0, len(entries))
	for _, e := range entries {
		// Partially written or legacy-shaped rows are dropped, not errors.
		if e.ID == "" || e.Destination == "" {
			continue
		}
		items = append(items, models.SavedItinerary{
			ID:              e.ID,
			Timestamp:       e.Timestamp,
			Tastes:          e.Tastes,
			Vibe:            e.Vibe,
			VibeDescription: e.VibeDescription,
			Destination:     e.Destination,
			Activities:      decodeActivities(e.Activities),
		})
	}
	return items
}

// decodeActivities accepts both the current flat list and the legacy
// day-plan list, flattening the latter in day order. A flat activity has no
// "day" field, so a list whose every element carries day >= 1 is legacy.
func decodeActivities(raw json.RawMessage) []models.Activity {
	if len(raw) == 0 {
		return nil
	}

	var days []models.DayPlan
	if err := json.Unmarshal(raw, &days); err == nil && len(days) > 0 {
		legacy := true
		for _, d := range days {
			if d.Day < 1 {
				legacy = false
				break
			}
		}
		if legacy {
			var out []models.Activity
			for _, d := range days {
				out = append(out, d.Activities...)
			}
			return out
		}
	}

	var flat []models.Activity
	if err := json.Unmarshal(raw, &flat); err == nil {
		return flat
	}
	return nil
}

func (r *fileArchiveRepository) LoadRaw() []byte {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return []byte("[]")
	}
	return raw
}

func (r *fileArchiveRepository) Store(items []models.SavedItinerary) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrStorageFailure, err)
	}
	return r.StoreRaw(raw)
}

// StoreRaw writes through a temp file and rename so a failed write never
// leaves a partially written document behind.
func (r *fileArchiveRepository) StoreRaw(raw []byte) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrStorageFailure, err)
	}

	tmp, err := os.CreateTemp(dir, "itineraries-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrStorageFailure, err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(raw)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", utils.ErrStorageFailure, errors.Join(werr, cerr))
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", utils.ErrStorageFailure, err)
	}
	return nil
}
