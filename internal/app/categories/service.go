package categories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domain "github.com/PEEKING-web/steam-tracker/internal/domain/categories"
	"github.com/PEEKING-web/steam-tracker/internal/logging"
)

// Store defines the persistence the category service needs.
type Store interface {
	Categories(ctx context.Context, steamID string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, c domain.Category) error
	GetCategory(ctx context.Context, steamID, id string) (domain.Category, error)
	UpdateCategory(ctx context.Context, c domain.Category) error
	DeleteCategory(ctx context.Context, steamID, id string) error
}

// NameRequest carries a category name for create and rename.
type NameRequest struct {
	Name string `json:"name" validate:"required"`
}

// GameRequest is the library game being pinned to a category.
type GameRequest struct {
	AppID           int    `json:"appid" validate:"required,gt=0"`
	Name            string `json:"name"`
	PlaytimeForever int    `json:"playtime_forever" validate:"gte=0"`
	ImgIconURL      string `json:"img_icon_url"`
}

type Service struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger, now: time.Now, newID: uuid.NewString}
}

// WithClock swaps the time source; used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// List returns the user's categories, newest first.
func (s *Service) List(ctx context.Context, steamID string) ([]domain.Category, error) {
	list, err := s.store.Categories(ctx, steamID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

func (s *Service) Create(ctx context.Context, steamID, name string) (domain.Category, error) {
	name, err := domain.NormalizeName(name)
	if err != nil {
		return domain.Category{}, err
	}
	c := domain.Category{
		ID:        s.newID(),
		SteamID:   steamID,
		Name:      name,
		Games:     []domain.Game{},
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.CreateCategory(ctx, c); err != nil {
		return domain.Category{}, fmt.Errorf("create category: %w", err)
	}
	logging.Info(logging.FromContext(ctx, s.logger), "category created",
		logging.FieldSteamID, steamID,
	)
	return c, nil
}

// AddGame pins a game; adding one already present leaves the category as is.
func (s *Service) AddGame(ctx context.Context, steamID, id string, req GameRequest) (domain.Category, error) {
	return s.mutate(ctx, steamID, id, func(c *domain.Category) (bool, error) {
		return c.AddGame(domain.Game(req)), nil
	})
}

func (s *Service) RemoveGame(ctx context.Context, steamID, id string, appID int) (domain.Category, error) {
	return s.mutate(ctx, steamID, id, func(c *domain.Category) (bool, error) {
		return c.RemoveGame(appID), nil
	})
}

func (s *Service) Rename(ctx context.Context, steamID, id, name string) (domain.Category, error) {
	name, err := domain.NormalizeName(name)
	if err != nil {
		return domain.Category{}, err
	}
	return s.mutate(ctx, steamID, id, func(c *domain.Category) (bool, error) {
		changed := c.Name != name
		c.Name = name
		return changed, nil
	})
}

func (s *Service) Delete(ctx context.Context, steamID, id string) error {
	if err := s.store.DeleteCategory(ctx, steamID, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// mutate loads the category, applies fn and saves only when fn reports a change.
func (s *Service) mutate(ctx context.Context, steamID, id string, fn func(*domain.Category) (bool, error)) (domain.Category, error) {
	c, err := s.store.GetCategory(ctx, steamID, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("get category: %w", err)
	}
	changed, err := fn(&c)
	if err != nil {
		return domain.Category{}, err
	}
	if !changed {
		return c, nil
	}
	if err := s.store.UpdateCategory(ctx, c); err != nil {
		return domain.Category{}, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}
