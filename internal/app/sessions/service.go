package sessions

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	domain "github.com/PEEKING-web/steam-tracker/internal/domain/sessions"
	"github.com/PEEKING-web/steam-tracker/internal/logging"
)

// Store defines the persistence the session service needs.
type Store interface {
	CreateSession(ctx context.Context, ps domain.PlaySession) error
	GetSession(ctx context.Context, steamID, id string) (domain.PlaySession, error)
	UpdateSession(ctx context.Context, ps domain.PlaySession) error
	SessionsByUser(ctx context.Context, steamID string) ([]domain.PlaySession, error)
	SessionsByGame(ctx context.Context, steamID string, appID int) ([]domain.PlaySession, error)
}

// StartRequest describes a session about to begin.
type StartRequest struct {
	AppID    int    `json:"appid" validate:"required,gt=0"`
	GameName string `json:"gameName" validate:"required"`
	Mood     string `json:"mood" validate:"omitempty,oneof=Focused Chill Energetic Neutral"`
	Notes    string `json:"notes" validate:"max=500"`
}

type Service struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// WithClock swaps the time source; used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Start records a new active session for the user.
func (s *Service) Start(ctx context.Context, steamID string, req StartRequest) (domain.PlaySession, error) {
	if req.AppID <= 0 || req.GameName == "" {
		return domain.PlaySession{}, domain.ErrGameRequired
	}
	mood, err := domain.ParseMood(req.Mood)
	if err != nil {
		return domain.PlaySession{}, err
	}
	if utf8.RuneCountInString(req.Notes) > domain.MaxNotesLength {
		return domain.PlaySession{}, domain.ErrNotesTooLong
	}

	ps := domain.PlaySession{
		ID:        s.newID(),
		SteamID:   steamID,
		AppID:     req.AppID,
		GameName:  req.GameName,
		StartTime: s.now().UTC(),
		Mood:      mood,
		Notes:     req.Notes,
	}
	if err := s.store.CreateSession(ctx, ps); err != nil {
		return domain.PlaySession{}, fmt.Errorf("create session: %w", err)
	}

	logging.Info(logging.FromContext(ctx, s.logger), "session started",
		logging.FieldSteamID, steamID,
		logging.FieldAppID, ps.AppID,
	)
	return ps, nil
}

// End closes the user's session. Ending an already ended session returns
// domain.ErrAlreadyEnded; a session owned by someone else is not found.
func (s *Service) End(ctx context.Context, steamID, id string) (domain.PlaySession, error) {
	ps, err := s.store.GetSession(ctx, steamID, id)
	if err != nil {
		return domain.PlaySession{}, fmt.Errorf("get session: %w", err)
	}
	if err := ps.End(s.now().UTC()); err != nil {
		return domain.PlaySession{}, err
	}
	if err := s.store.UpdateSession(ctx, ps); err != nil {
		return domain.PlaySession{}, fmt.Errorf("update session: %w", err)
	}

	logging.Info(logging.FromContext(ctx, s.logger), "session ended",
		logging.FieldSteamID, steamID,
		logging.FieldAppID, ps.AppID,
		logging.FieldDurationMS, int64(*ps.DurationMinutes)*time.Minute.Milliseconds(),
	)
	return ps, nil
}

// List returns every session of the user, most recent first.
func (s *Service) List(ctx context.Context, steamID string) ([]domain.PlaySession, error) {
	list, err := s.store.SessionsByUser(ctx, steamID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return list, nil
}

// ListByGame returns the user's sessions for one game, most recent first.
func (s *Service) ListByGame(ctx context.Context, steamID string, appID int) ([]domain.PlaySession, error) {
	list, err := s.store.SessionsByGame(ctx, steamID, appID)
	if err != nil {
		return nil, fmt.Errorf("list sessions by game: %w", err)
	}
	return list, nil
}
