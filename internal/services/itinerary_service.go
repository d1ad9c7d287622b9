package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vibevoyager/internal/models"
	"vibevoyager/internal/models/response_models"
	"vibevoyager/pkg/utils"
)

// ItineraryServiceInterface owns the in-progress day sequence of every
// viewing session. Each session grows append-only up to the seven-day cap.
type ItineraryServiceInterface interface {
	StartSession(tastes []string, result models.VibeResult) response_models.ItineraryResponse
	GetSession(id string) (response_models.ItineraryResponse, error)
	AppendDay(ctx context.Context, id string) (models.DayPlan, error)
	Snapshot(id string) (SessionSnapshot, error)
}

// SessionSnapshot is what the archive copies out of a session. Activities are
// flattened across days in day order; it shares no slice with session state.
type SessionSnapshot struct {
	Tastes          []string
	Vibe            string
	VibeDescription string
	Destination     string
	Activities      []models.Activity
}

type itinerarySession struct {
	tastes           []string
	vibe             string
	vibeDescription  string
	destination      string
	qlooDestinations []string
	days             []models.DayPlan
	extending        bool
}

type ItineraryService struct {
	vibes  VibeServiceInterface
	logger *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*itinerarySession
}

func NewItineraryService(vibes VibeServiceInterface, logger *zap.Logger) ItineraryServiceInterface {
	return &ItineraryService{
		vibes:    vibes,
		logger:   logger,
		sessions: make(map[string]*itinerarySession),
	}
}

// StartSession seeds a new session with exactly the Day-1 result of the
// initial generation call.
func (s *ItineraryService) StartSession(tastes []string, result models.VibeResult) response_models.ItineraryResponse {
	sess := &itinerarySession{
		tastes:           append([]string(nil), tastes...),
		vibe:             result.Vibe,
		vibeDescription:  result.VibeDescription,
		destination:      result.Destination,
		qlooDestinations: append([]string(nil), result.QlooDestinations...),
		days: []models.DayPlan{
			{Day: 1, Activities: append([]models.Activity(nil), result.Activities...)},
		},
	}

	id := uuid.New().String()

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	return s.toResponse(id, sess)
}

func (s *ItineraryService) GetSession(id string) (response_models.ItineraryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return response_models.ItineraryResponse{}, utils.ErrSessionNotFound
	}
	return s.toResponse(id, sess), nil
}

// AppendDay extends the session by one generated day. At the seven-day cap it
// returns without issuing a model call. A second append while one is in
// flight is rejected, not queued. On generation failure the day sequence is
// left untouched and the failure is logged before being reported back.
func (s *ItineraryService) AppendDay(ctx context.Context, id string) (models.DayPlan, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return models.DayPlan{}, utils.ErrSessionNotFound
	}
	if len(sess.days) >= models.MaxItineraryDays {
		s.mu.Unlock()
		return models.DayPlan{}, utils.ErrItineraryFull
	}
	if sess.extending {
		s.mu.Unlock()
		return models.DayPlan{}, utils.ErrExtensionInProgress
	}
	sess.extending = true
	destination := sess.destination
	tastes := append([]string(nil), sess.tastes...)
	previous := append([]models.DayPlan(nil), sess.days...)
	s.mu.Unlock()

	activities, err := s.vibes.ExtendByOneDay(ctx, destination, previous, tastes)

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.extending = false

	if err != nil {
		s.logger.Error("add-day failed",
			zap.String("session_id", id),
			zap.String("destination", destination),
			zap.Error(err))
		return models.DayPlan{}, err
	}

	day := models.DayPlan{Day: len(sess.days) + 1, Activities: activities}
	sess.days = append(sess.days, day)
	return day, nil
}

// Snapshot deep-copies and flattens the session for archiving.
func (s *ItineraryService) Snapshot(id string) (SessionSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return SessionSnapshot{}, utils.ErrSessionNotFound
	}

	var flat []models.Activity
	for _, d := range sess.days {
		flat = append(flat, d.Activities...)
	}

	return SessionSnapshot{
		Tastes:          append([]string(nil), sess.tastes...),
		Vibe:            sess.vibe,
		VibeDescription: sess.vibeDescription,
		Destination:     sess.destination,
		Activities:      flat,
	}, nil
}

func (s *ItineraryService) toResponse(id string, sess *itinerarySession) response_models.ItineraryResponse {
	return response_models.ItineraryResponse{
		SessionID:        id,
		Destination:      sess.destination,
		Vibe:             sess.vibe,
		VibeDescription:  sess.vibeDescription,
		Tastes:           append([]string(nil), sess.tastes...),
		Days:             append([]models.DayPlan(nil), sess.days...),
		QlooDestinations: append([]string(nil), sess.qlooDestinations...),
		Extending:        sess.extending,
	}
}
