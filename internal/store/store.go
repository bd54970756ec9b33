package store

import (
	"context"
	"errors"

	"github.com/PEEKING-web/steam-tracker/internal/domain/categories"
	"github.com/PEEKING-web/steam-tracker/internal/domain/sessions"
)

// ErrNotFound is returned when a record does not exist for the requesting user.
var ErrNotFound = errors.New("not found")

// Store persists play sessions and categories. Lookups are scoped to the
// owning Steam account: a record owned by someone else is ErrNotFound.
type Store interface {
	CreateSession(ctx context.Context, ps sessions.PlaySession) error
	GetSession(ctx context.Context, steamID, id string) (sessions.PlaySession, error)
	UpdateSession(ctx context.Context, ps sessions.PlaySession) error
	SessionsByUser(ctx context.Context, steamID string) ([]sessions.PlaySession, error)
	SessionsByGame(ctx context.Context, steamID string, appID int) ([]sessions.PlaySession, error)

	Categories(ctx context.Context, steamID string) ([]categories.Category, error)
	CreateCategory(ctx context.Context, c categories.Category) error
	GetCategory(ctx context.Context, steamID, id string) (categories.Category, error)
	UpdateCategory(ctx context.Context, c categories.Category) error
	DeleteCategory(ctx context.Context, steamID, id string) error

	Close() error
}

var _ Store = (*MemoryStore)(nil)
