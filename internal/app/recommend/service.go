package recommend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PEEKING-web/steam-tracker/internal/domain/library"
	"github.com/PEEKING-web/steam-tracker/internal/logging"
)

// OwnedGamesProvider is the slice of the Steam provider the service needs.
type OwnedGamesProvider interface {
	FetchOwnedGames(ctx context.Context, steamID string) (library.OwnedGames, error)
}

// Service fetches a user's library and hands it to the Reconciler.
type Service struct {
	provider   OwnedGamesProvider
	reconciler *Reconciler
	logger     *slog.Logger
}

func NewService(provider OwnedGamesProvider, reconciler *Reconciler, logger *slog.Logger) *Service {
	return &Service{provider: provider, reconciler: reconciler, logger: logger}
}

// RecommendForUser returns recommendations for the Steam account. The only
// error is ErrUpstreamDataUnavailable.
func (s *Service) RecommendForUser(ctx context.Context, steamID string, sc SituationalContext) (Result, error) {
	owned, err := s.provider.FetchOwnedGames(ctx, steamID)
	if err != nil {
		logging.Error(logging.FromContext(ctx, s.logger), "owned games fetch failed", err,
			logging.FieldSteamID, steamID,
		)
		return Result{}, fmt.Errorf("%w: %w", ErrUpstreamDataUnavailable, err)
	}
	return s.reconciler.Recommend(ctx, owned.Games, sc), nil
}
