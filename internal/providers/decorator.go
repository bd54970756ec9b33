package providers

import (
	"context"

	"github.com/PEEKING-web/steam-tracker/internal/domain/library"
	"github.com/PEEKING-web/steam-tracker/internal/domain/players"
)

// Operation names used in logs, metrics and breaker bookkeeping.
const (
	OpOwnedGames         = "owned_games"
	OpRecentGames        = "recent_games"
	OpPlayerAchievements = "player_achievements"
	OpGameSchema         = "game_schema"
	OpPlayerSummaries    = "player_summaries"
	OpFriendList         = "friend_list"
	OpSteamLevel         = "steam_level"
)

type callFunc func(ctx context.Context) (any, error)

// interceptor adds behavior around every upstream call.
type interceptor interface {
	intercept(ctx context.Context, op string, call callFunc) (any, error)
}

// decorated applies an interceptor to each DataProvider method.
type decorated struct {
	next DataProvider
	in   interceptor
}

func decorate(next DataProvider, in interceptor) DataProvider {
	return &decorated{next: next, in: in}
}

func invoke[T any](ctx context.Context, d *decorated, op string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if d.next == nil {
		return zero, ErrProviderUnavailable
	}
	out, err := d.in.intercept(ctx, op, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	v, _ := out.(T)
	return v, nil
}

func (d *decorated) FetchOwnedGames(ctx context.Context, steamID string) (library.OwnedGames, error) {
	return invoke(ctx, d, OpOwnedGames, func(ctx context.Context) (library.OwnedGames, error) {
		return d.next.FetchOwnedGames(ctx, steamID)
	})
}

func (d *decorated) FetchRecentGames(ctx context.Context, steamID string) (library.RecentGames, error) {
	return invoke(ctx, d, OpRecentGames, func(ctx context.Context) (library.RecentGames, error) {
		return d.next.FetchRecentGames(ctx, steamID)
	})
}

func (d *decorated) FetchPlayerAchievements(ctx context.Context, steamID string, appID int) ([]library.PlayerAchievement, error) {
	return invoke(ctx, d, OpPlayerAchievements, func(ctx context.Context) ([]library.PlayerAchievement, error) {
		return d.next.FetchPlayerAchievements(ctx, steamID, appID)
	})
}

func (d *decorated) FetchGameSchema(ctx context.Context, appID int) ([]library.SchemaAchievement, error) {
	return invoke(ctx, d, OpGameSchema, func(ctx context.Context) ([]library.SchemaAchievement, error) {
		return d.next.FetchGameSchema(ctx, appID)
	})
}

func (d *decorated) FetchPlayerSummaries(ctx context.Context, steamIDs []string) ([]players.PlayerSummary, error) {
	return invoke(ctx, d, OpPlayerSummaries, func(ctx context.Context) ([]players.PlayerSummary, error) {
		return d.next.FetchPlayerSummaries(ctx, steamIDs)
	})
}

func (d *decorated) FetchFriendList(ctx context.Context, steamID string) ([]players.Friend, error) {
	return invoke(ctx, d, OpFriendList, func(ctx context.Context) ([]players.Friend, error) {
		return d.next.FetchFriendList(ctx, steamID)
	})
}

func (d *decorated) FetchSteamLevel(ctx context.Context, steamID string) (int, error) {
	return invoke(ctx, d, OpSteamLevel, func(ctx context.Context) (int, error) {
		return d.next.FetchSteamLevel(ctx, steamID)
	})
}
