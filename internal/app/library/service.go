package library

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	domain "github.com/PEEKING-web/steam-tracker/internal/domain/library"
	"github.com/PEEKING-web/steam-tracker/internal/logging"
	"github.com/PEEKING-web/steam-tracker/internal/providers"
)

// Achievement text shown when the game's schema does not describe an entry.
const (
	HiddenAchievementName        = "Hidden Achievement"
	HiddenAchievementDescription = "Hidden until unlocked"
	noDescription                = "No description"
)

const (
	recentAchievementGames   = 3
	recentAchievementPerGame = 5
	recentAchievementLimit   = 10
)

// Provider is the subset of the data provider the library needs.
type Provider interface {
	providers.LibraryProvider
	FetchSteamLevel(ctx context.Context, steamID string) (int, error)
}

// Service serves a user's library and the stats derived from it.
type Service struct {
	provider Provider
	logger   *slog.Logger
}

func NewService(provider Provider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// OwnedGames returns the full library.
func (s *Service) OwnedGames(ctx context.Context, steamID string) (domain.OwnedGames, error) {
	owned, err := s.provider.FetchOwnedGames(ctx, steamID)
	if err != nil {
		return domain.OwnedGames{}, fmt.Errorf("owned games: %w", err)
	}
	if owned.Games == nil {
		owned.Games = []domain.OwnedGame{}
	}
	return owned, nil
}

// RecentGames returns games played in the last two weeks.
func (s *Service) RecentGames(ctx context.Context, steamID string) (domain.RecentGames, error) {
	recent, err := s.provider.FetchRecentGames(ctx, steamID)
	if err != nil {
		return domain.RecentGames{}, fmt.Errorf("recent games: %w", err)
	}
	if recent.Games == nil {
		recent.Games = []domain.RecentGame{}
	}
	return recent, nil
}

// Achievements merges the player's progress for one game with the game's
// schema. The schema is only fetched when the player has progress to show.
func (s *Service) Achievements(ctx context.Context, steamID string, appID int) ([]domain.Achievement, error) {
	progress, err := s.provider.FetchPlayerAchievements(ctx, steamID, appID)
	if err != nil {
		return nil, fmt.Errorf("player achievements: %w", err)
	}
	if len(progress) == 0 {
		return []domain.Achievement{}, nil
	}

	schema, err := s.provider.FetchGameSchema(ctx, appID)
	if err != nil {
		return nil, fmt.Errorf("game schema: %w", err)
	}
	return MergeAchievements(progress, schema), nil
}

// MergeAchievements joins progress and schema on apiname == schema name.
func MergeAchievements(progress []domain.PlayerAchievement, schema []domain.SchemaAchievement) []domain.Achievement {
	byName := make(map[string]domain.SchemaAchievement, len(schema))
	for _, a := range schema {
		byName[a.Name] = a
	}

	out := make([]domain.Achievement, 0, len(progress))
	for _, p := range progress {
		merged := domain.Achievement{
			APIName:     p.APIName,
			Achieved:    p.Achieved,
			UnlockTime:  p.UnlockTime,
			Name:        HiddenAchievementName,
			Description: HiddenAchievementDescription,
		}
		if meta, ok := byName[p.APIName]; ok {
			if meta.DisplayName != "" {
				merged.Name = meta.DisplayName
			}
			if meta.Description != "" {
				merged.Description = meta.Description
			}
			merged.Icon = meta.Icon
			merged.IconGray = meta.IconGray
			merged.Hidden = meta.Hidden == 1
		}
		out = append(out, merged)
	}
	return out
}

// TotalPlaytime sums playtime across the library.
func (s *Service) TotalPlaytime(ctx context.Context, steamID string) (TotalPlaytime, error) {
	owned, err := s.provider.FetchOwnedGames(ctx, steamID)
	if err != nil {
		return TotalPlaytime{}, fmt.Errorf("owned games: %w", err)
	}
	return SummarizePlaytime(owned), nil
}

// SummarizePlaytime computes totals and the most played game. Ties keep the
// earlier game.
func SummarizePlaytime(owned domain.OwnedGames) TotalPlaytime {
	if len(owned.Games) == 0 {
		return TotalPlaytime{}
	}

	total := 0
	most := owned.Games[0]
	for _, g := range owned.Games {
		total += g.PlaytimeForever
		if g.PlaytimeForever > most.PlaytimeForever {
			most = g
		}
	}

	return TotalPlaytime{
		Minutes:    total,
		Hours:      roundHours(total),
		Days:       int(math.Round(float64(total) / 60 / 24)),
		TotalGames: owned.Count,
		MostPlayed: &MostPlayedGame{
			Name:            most.Name,
			AppID:           most.AppID,
			PlaytimeMinutes: most.PlaytimeForever,
			PlaytimeHours:   roundHours(most.PlaytimeForever),
		},
	}
}

// WeeklyPlaytime sums two-week playtime over recently played games.
func (s *Service) WeeklyPlaytime(ctx context.Context, steamID string) (WeeklyPlaytime, error) {
	recent, err := s.provider.FetchRecentGames(ctx, steamID)
	if err != nil {
		return WeeklyPlaytime{}, fmt.Errorf("recent games: %w", err)
	}
	return SummarizeWeekly(recent), nil
}

// SummarizeWeekly is the pure half of WeeklyPlaytime.
func SummarizeWeekly(recent domain.RecentGames) WeeklyPlaytime {
	out := WeeklyPlaytime{
		GamesPlayedCount: recent.TotalCount,
		GamesPlayed:      make([]WeeklyGame, 0, len(recent.Games)),
	}
	for _, g := range recent.Games {
		out.Minutes += g.Playtime2Weeks
		out.GamesPlayed = append(out.GamesPlayed, WeeklyGame{
			Name:               g.Name,
			AppID:              g.AppID,
			PlaytimeMinutes:    g.Playtime2Weeks,
			PlaytimeHours:      oneDecimalHours(g.Playtime2Weeks),
			TotalPlaytimeHours: roundHours(g.PlaytimeForever),
		})
	}
	out.Hours = oneDecimalHours(out.Minutes)
	return out
}

// RecentAchievements collects unlocked achievements from the most recently
// played games, newest first. A game whose achievements cannot be loaded
// contributes nothing.
func (s *Service) RecentAchievements(ctx context.Context, steamID string) (RecentAchievements, error) {
	recent, err := s.provider.FetchRecentGames(ctx, steamID)
	if err != nil {
		return RecentAchievements{}, fmt.Errorf("recent games: %w", err)
	}

	games := recent.Games
	if len(games) > recentAchievementGames {
		games = games[:recentAchievementGames]
	}

	perGame := make([][]RecentAchievement, len(games))
	g, gctx := errgroup.WithContext(ctx)
	for i, game := range games {
		g.Go(func() error {
			list, err := s.provider.FetchPlayerAchievements(gctx, steamID, game.AppID)
			if err != nil {
				logging.Warn(logging.FromContext(ctx, s.logger), "achievements skipped",
					logging.FieldError, err,
					logging.FieldAppID, game.AppID,
				)
				return nil
			}
			perGame[i] = unlockedFor(game, list)
			return nil
		})
	}
	_ = g.Wait()

	all := make([]RecentAchievement, 0)
	for _, list := range perGame {
		all = append(all, list...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].UnlockTime > all[j].UnlockTime
	})

	out := RecentAchievements{Total: len(all), Achievements: all}
	if len(all) > recentAchievementLimit {
		out.Achievements = all[:recentAchievementLimit]
	}
	return out, nil
}

func unlockedFor(game domain.RecentGame, list []domain.PlayerAchievement) []RecentAchievement {
	out := make([]RecentAchievement, 0, recentAchievementPerGame)
	for _, a := range list {
		if !a.Unlocked() {
			continue
		}
		name := a.Name
		if name == "" {
			name = a.APIName
		}
		desc := a.Description
		if desc == "" {
			desc = noDescription
		}
		out = append(out, RecentAchievement{
			GameName:    game.Name,
			AppID:       game.AppID,
			Name:        name,
			Description: desc,
			UnlockTime:  a.UnlockTime,
			Achieved:    true,
		})
		if len(out) == recentAchievementPerGame {
			break
		}
	}
	return out
}

// Level returns the user's Steam level.
func (s *Service) Level(ctx context.Context, steamID string) (int, error) {
	level, err := s.provider.FetchSteamLevel(ctx, steamID)
	if err != nil {
		return 0, fmt.Errorf("steam level: %w", err)
	}
	return level, nil
}

func roundHours(minutes int) int {
	return int(math.Round(float64(minutes) / 60))
}

func oneDecimalHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*10) / 10
}
