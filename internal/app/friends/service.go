package friends

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	domain "github.com/PEEKING-web/steam-tracker/internal/domain/library"
	"github.com/PEEKING-web/steam-tracker/internal/domain/players"
	"github.com/PEEKING-web/steam-tracker/internal/providers/steam"
)

// ErrNotFound is returned when Steam has no profile for the id.
var ErrNotFound = errors.New("friend not found")

// Provider is the subset of the data provider the friends pages need.
type Provider interface {
	FetchFriendList(ctx context.Context, steamID string) ([]players.Friend, error)
	FetchPlayerSummaries(ctx context.Context, steamIDs []string) ([]players.PlayerSummary, error)
	FetchOwnedGames(ctx context.Context, steamID string) (domain.OwnedGames, error)
}

type Service struct {
	provider  Provider
	logger    *slog.Logger
	batchSize int
}

func NewService(provider Provider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger, batchSize: steam.MaxSummaryIDs}
}

// List returns the friend list joined with profile data, in friend-list order.
// Summary lookups are split into batches fetched concurrently.
func (s *Service) List(ctx context.Context, steamID string) ([]Friend, error) {
	list, err := s.provider.FetchFriendList(ctx, steamID)
	if err != nil {
		return nil, fmt.Errorf("friend list: %w", err)
	}
	if len(list) == 0 {
		return []Friend{}, nil
	}

	ids := make([]string, 0, len(list))
	for _, f := range list {
		ids = append(ids, f.SteamID)
	}

	batches := chunk(ids, s.batchSize)
	results := make([][]players.PlayerSummary, len(batches))
	g, gctx := errgroup.WithContext(ctx)
	for i, batch := range batches {
		g.Go(func() error {
			summaries, err := s.provider.FetchPlayerSummaries(gctx, batch)
			if err != nil {
				return err
			}
			results[i] = summaries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("friend summaries: %w", err)
	}

	out := make([]Friend, 0, len(ids))
	for _, batch := range results {
		for _, p := range batch {
			out = append(out, friendFromSummary(p))
		}
	}
	return out, nil
}

// Profile returns a single profile.
func (s *Service) Profile(ctx context.Context, steamID string) (Profile, error) {
	p, err := s.summary(ctx, steamID)
	if err != nil {
		return Profile{}, err
	}
	return profileFromSummary(p), nil
}

// Games returns the friend's library when the profile is public. A private
// profile is not an error: the result reports IsPrivate instead.
func (s *Service) Games(ctx context.Context, steamID string) (Games, error) {
	p, err := s.summary(ctx, steamID)
	if err != nil {
		return Games{}, err
	}
	if !p.Public() {
		return Games{IsPrivate: true}, nil
	}

	owned, err := s.provider.FetchOwnedGames(ctx, steamID)
	if err != nil {
		return Games{}, fmt.Errorf("friend games: %w", err)
	}
	if owned.Games == nil {
		owned.Games = []domain.OwnedGame{}
	}
	return Games{GameCount: owned.Count, Games: owned.Games}, nil
}

func (s *Service) summary(ctx context.Context, steamID string) (players.PlayerSummary, error) {
	list, err := s.provider.FetchPlayerSummaries(ctx, []string{steamID})
	if err != nil {
		return players.PlayerSummary{}, fmt.Errorf("player summary: %w", err)
	}
	if len(list) == 0 {
		return players.PlayerSummary{}, ErrNotFound
	}
	return list[0], nil
}

func chunk(ids []string, size int) [][]string {
	if size <= 0 {
		size = len(ids)
	}
	out := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		out = append(out, ids[start:end])
	}
	return out
}
