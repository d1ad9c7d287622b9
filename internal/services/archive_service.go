package services

import (
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"vibevoyager/internal/infra"
	"vibevoyager/internal/models"
	"vibevoyager/internal/repositories"
	"vibevoyager/pkg/utils"
)

// ArchiveServiceInterface manages the persisted, capped, most-recent-first
// collection of saved itineraries. Save and Delete each retain the exact
// prior serialization for one user-actionable undo; every successful
// mutation is broadcast on the change notifier.
type ArchiveServiceInterface interface {
	List() []models.SavedItinerary
	Save(sessionID string) (models.SavedItinerary, error)
	Delete(id string) error
	Undo() error
}

type ArchiveService struct {
	repo        repositories.ArchiveRepository
	itineraries ItineraryServiceInterface
	notifier    infra.Notifier
	logger      *zap.Logger

	mu   sync.Mutex
	prev []byte // pre-mutation document, nil once consumed
}

func NewArchiveService(
	repo repositories.ArchiveRepository,
	itineraries ItineraryServiceInterface,
	notifier infra.Notifier,
	logger *zap.Logger,
) ArchiveServiceInterface {
	return &ArchiveService{
		repo:        repo,
		itineraries: itineraries,
		notifier:    notifier,
		logger:      logger,
	}
}

func (a *ArchiveService) List() []models.SavedItinerary {
	return a.repo.Load()
}

// Save snapshots the session, prepends it, truncates to the cap, persists,
// and broadcasts. The snapshot id is the generation timestamp in unix
// millis, which doubles as the uniqueness key.
func (a *ArchiveService) Save(sessionID string) (models.SavedItinerary, error) {
	snap, err := a.itineraries.Snapshot(sessionID)
	if err != nil {
		return models.SavedItinerary{}, err
	}

	now := time.Now()
	entry := models.SavedItinerary{
		ID:              strconv.FormatInt(now.UnixMilli(), 10),
		Timestamp:       now.UTC().Format(time.RFC3339),
		Tastes:          snap.Tastes,
		Vibe:            snap.Vibe,
		VibeDescription: snap.VibeDescription,
		Destination:     snap.Destination,
		Activities:      snap.Activities,
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	before := a.repo.LoadRaw()
	current := a.repo.Load()

	next := append([]models.SavedItinerary{entry}, current...)
	if len(next) > models.MaxSavedItineraries {
		next = next[:models.MaxSavedItineraries]
	}

	if err := a.repo.Store(next); err != nil {
		a.logger.Error("failed to persist itinerary", zap.Error(err))
		return models.SavedItinerary{}, err
	}

	a.prev = before
	a.notifier.Publish(a.repo.Key())

	a.logger.Info("itinerary saved",
		zap.String("id", entry.ID),
		zap.String("destination", entry.Destination),
		zap.Int("archive_size", len(next)))
	return entry, nil
}

func (a *ArchiveService) Delete(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	before := a.repo.LoadRaw()
	current := a.repo.Load()

	next := make([]models.SavedItinerary, 0, len(current))
	for _, it := range current {
		if it.ID != id {
			next = append(next, it)
		}
	}
	if len(next) == len(current) {
		return utils.ErrItineraryNotFound
	}

	if err := a.repo.Store(next); err != nil {
		a.logger.Error("failed to persist deletion", zap.Error(err))
		return err
	}

	a.prev = before
	a.notifier.Publish(a.repo.Key())

	a.logger.Info("itinerary removed", zap.String("id", id))
	return nil
}

// Undo restores the document exactly as it was before the last mutation and
// re-broadcasts. It is one-shot: a second undo without an intervening
// mutation reports ErrNothingToUndo.
func (a *ArchiveService) Undo() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.prev == nil {
		return utils.ErrNothingToUndo
	}

	if err := a.repo.StoreRaw(a.prev); err != nil {
		a.logger.Error("failed to undo archive mutation", zap.Error(err))
		return err
	}

	a.prev = nil
	a.notifier.Publish(a.repo.Key())

	a.logger.Info("archive mutation undone")
	return nil
}
