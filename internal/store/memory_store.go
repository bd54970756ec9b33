package store

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/PEEKING-web/steam-tracker/internal/domain/categories"
	"github.com/PEEKING-web/steam-tracker/internal/domain/sessions"
)

// MemoryStore keeps sessions and categories in memory. Every read returns
// copies so callers cannot mutate stored records.
type MemoryStore struct {
	mu         sync.RWMutex
	sessions   map[string]sessions.PlaySession
	categories map[string]categories.Category
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:   make(map[string]sessions.PlaySession),
		categories: make(map[string]categories.Category),
	}
}

func (s *MemoryStore) CreateSession(ctx context.Context, ps sessions.PlaySession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[ps.ID] = copySession(ps)
	return nil
}

func (s *MemoryStore) GetSession(ctx context.Context, steamID, id string) (sessions.PlaySession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ps, ok := s.sessions[id]
	if !ok || ps.SteamID != steamID {
		return sessions.PlaySession{}, ErrNotFound
	}
	return copySession(ps), nil
}

func (s *MemoryStore) UpdateSession(ctx context.Context, ps sessions.PlaySession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.sessions[ps.ID]
	if !ok || existing.SteamID != ps.SteamID {
		return ErrNotFound
	}
	s.sessions[ps.ID] = copySession(ps)
	return nil
}

// SessionsByUser returns the user's sessions, most recently started first.
func (s *MemoryStore) SessionsByUser(ctx context.Context, steamID string) ([]sessions.PlaySession, error) {
	return s.filterSessions(func(ps sessions.PlaySession) bool {
		return ps.SteamID == steamID
	}), nil
}

func (s *MemoryStore) SessionsByGame(ctx context.Context, steamID string, appID int) ([]sessions.PlaySession, error) {
	return s.filterSessions(func(ps sessions.PlaySession) bool {
		return ps.SteamID == steamID && ps.AppID == appID
	}), nil
}

func (s *MemoryStore) filterSessions(keep func(sessions.PlaySession) bool) []sessions.PlaySession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]sessions.PlaySession, 0)
	for _, ps := range s.sessions {
		if keep(ps) {
			result = append(result, copySession(ps))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].StartTime.Equal(result[j].StartTime) {
			return result[i].ID < result[j].ID
		}
		return result[i].StartTime.After(result[j].StartTime)
	})
	return result
}

// Categories returns the user's categories, newest first.
func (s *MemoryStore) Categories(ctx context.Context, steamID string) ([]categories.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]categories.Category, 0)
	for _, c := range s.categories {
		if c.SteamID == steamID {
			result = append(result, copyCategory(c))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *MemoryStore) CreateCategory(ctx context.Context, c categories.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[c.ID] = copyCategory(c)
	return nil
}

func (s *MemoryStore) GetCategory(ctx context.Context, steamID, id string) (categories.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok || c.SteamID != steamID {
		return categories.Category{}, ErrNotFound
	}
	return copyCategory(c), nil
}

func (s *MemoryStore) UpdateCategory(ctx context.Context, c categories.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.categories[c.ID]
	if !ok || existing.SteamID != c.SteamID {
		return ErrNotFound
	}
	s.categories[c.ID] = copyCategory(c)
	return nil
}

func (s *MemoryStore) DeleteCategory(ctx context.Context, steamID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.categories[id]
	if !ok || existing.SteamID != steamID {
		return ErrNotFound
	}
	delete(s.categories, id)
	return nil
}

// Close is a no-op so MemoryStore satisfies the same lifecycle as SQLite.
func (s *MemoryStore) Close() error {
	return nil
}

func copySession(ps sessions.PlaySession) sessions.PlaySession {
	if ps.EndTime != nil {
		end := *ps.EndTime
		ps.EndTime = &end
	}
	if ps.DurationMinutes != nil {
		d := *ps.DurationMinutes
		ps.DurationMinutes = &d
	}
	return ps
}

func copyCategory(c categories.Category) categories.Category {
	c.Games = slices.Clone(c.Games)
	if c.Games == nil {
		c.Games = []categories.Game{}
	}
	return c
}
