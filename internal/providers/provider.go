package providers

import (
	"context"

	"github.com/PEEKING-web/steam-tracker/internal/domain/library"
	"github.com/PEEKING-web/steam-tracker/internal/domain/players"
)

// LibraryProvider fetches a user's games and per-game progress.
type LibraryProvider interface {
	FetchOwnedGames(ctx context.Context, steamID string) (library.OwnedGames, error)
	FetchRecentGames(ctx context.Context, steamID string) (library.RecentGames, error)
	FetchPlayerAchievements(ctx context.Context, steamID string, appID int) ([]library.PlayerAchievement, error)
	FetchGameSchema(ctx context.Context, appID int) ([]library.SchemaAchievement, error)
}

// PlayerProvider fetches profile and social data.
type PlayerProvider interface {
	FetchPlayerSummaries(ctx context.Context, steamIDs []string) ([]players.PlayerSummary, error)
	FetchFriendList(ctx context.Context, steamID string) ([]players.Friend, error)
	FetchSteamLevel(ctx context.Context, steamID string) (int, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	LibraryProvider
	PlayerProvider
}
