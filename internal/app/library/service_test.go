package library

import (
	"context"
	"errors"
	"testing"

	domain "github.com/PEEKING-web/steam-tracker/internal/domain/library"
	"github.com/PEEKING-web/steam-tracker/internal/teststubs"
)

func TestOwnedGamesNeverNil(t *testing.T) {
	svc := NewService(&teststubs.StubProvider{}, nil)

	owned, err := svc.OwnedGames(context.Background(), "1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if owned.Games == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestOwnedGamesWrapsError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&teststubs.StubProvider{Err: boom}, nil)

	if _, err := svc.OwnedGames(context.Background(), "1"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestAchievementsMergesSchema(t *testing.T) {
	provider := &teststubs.StubProvider{
		Achievements: map[int][]domain.PlayerAchievement{
			620: {
				{APIName: "ACH_WIN", Achieved: 1, UnlockTime: 100},
				{APIName: "ACH_SECRET", Achieved: 0},
			},
		},
		Schemas: map[int][]domain.SchemaAchievement{
			620: {{Name: "ACH_WIN", DisplayName: "Winner", Description: "Win once", Icon: "i", IconGray: "g", Hidden: 1}},
		},
	}
	svc := NewService(provider, nil)

	got, err := svc.Achievements(context.Background(), "1", 620)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 achievements, got %d", len(got))
	}
	if got[0].Name != "Winner" || got[0].Description != "Win once" || !got[0].Hidden || got[0].Icon != "i" {
		t.Fatalf("unexpected merged achievement %+v", got[0])
	}
	if got[1].Name != HiddenAchievementName || got[1].Description != HiddenAchievementDescription || got[1].Hidden {
		t.Fatalf("expected hidden placeholder, got %+v", got[1])
	}
}

func TestAchievementsSkipsSchemaWhenNoProgress(t *testing.T) {
	provider := &teststubs.StubProvider{}
	svc := NewService(provider, nil)

	got, err := svc.Achievements(context.Background(), "1", 620)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
	if provider.SchemaCalls.Load() != 0 {
		t.Fatal("expected no schema fetch")
	}
}

func TestSummarizePlaytime(t *testing.T) {
	owned := domain.OwnedGames{Count: 3, Games: []domain.OwnedGame{
		{AppID: 1, Name: "A", PlaytimeForever: 90},
		{AppID: 2, Name: "B", PlaytimeForever: 3000},
		{AppID: 3, Name: "C", PlaytimeForever: 3000},
	}}

	got := SummarizePlaytime(owned)
	if got.Minutes != 6090 || got.Hours != 102 || got.Days != 4 || got.TotalGames != 3 {
		t.Fatalf("unexpected totals %+v", got)
	}
	if got.MostPlayed == nil || got.MostPlayed.AppID != 2 || got.MostPlayed.PlaytimeHours != 50 {
		t.Fatalf("expected first of tied games as most played, got %+v", got.MostPlayed)
	}
}

func TestSummarizePlaytimeEmpty(t *testing.T) {
	got := SummarizePlaytime(domain.OwnedGames{})
	if got.Minutes != 0 || got.MostPlayed != nil {
		t.Fatalf("expected zero summary, got %+v", got)
	}
}

func TestSummarizeWeekly(t *testing.T) {
	recent := domain.RecentGames{TotalCount: 2, Games: []domain.RecentGame{
		{AppID: 1, Name: "A", Playtime2Weeks: 95, PlaytimeForever: 600},
		{AppID: 2, Name: "B", Playtime2Weeks: 20, PlaytimeForever: 29},
	}}

	got := SummarizeWeekly(recent)
	if got.Minutes != 115 || got.Hours != 1.9 || got.GamesPlayedCount != 2 {
		t.Fatalf("unexpected weekly summary %+v", got)
	}
	if got.GamesPlayed[0].PlaytimeHours != 1.6 || got.GamesPlayed[0].TotalPlaytimeHours != 10 {
		t.Fatalf("unexpected first game %+v", got.GamesPlayed[0])
	}
	if got.GamesPlayed[1].PlaytimeHours != 0.3 || got.GamesPlayed[1].TotalPlaytimeHours != 0 {
		t.Fatalf("unexpected second game %+v", got.GamesPlayed[1])
	}
}

func TestRecentAchievements(t *testing.T) {
	unlocked := func(name string, at int64) domain.PlayerAchievement {
		return domain.PlayerAchievement{APIName: name, Achieved: 1, UnlockTime: at}
	}
	provider := &teststubs.StubProvider{
		Recent: domain.RecentGames{TotalCount: 4, Games: []domain.RecentGame{
			{AppID: 1, Name: "One"},
			{AppID: 2, Name: "Two"},
			{AppID: 3, Name: "Three"},
			{AppID: 4, Name: "Four"},
		}},
		Achievements: map[int][]domain.PlayerAchievement{
			1: {
				unlocked("a1", 10), unlocked("a2", 20), {APIName: "locked", Achieved: 0},
				unlocked("a3", 30), unlocked("a4", 40), unlocked("a5", 50), unlocked("a6", 60),
			},
			3: {unlocked("c1", 55), {APIName: "c2", Achieved: 1, UnlockTime: 5, Name: "Named", Description: "Desc"}},
			4: {unlocked("never", 999)},
		},
		AchievementErrs: map[int]error{2: errors.New("private")},
	}
	svc := NewService(provider, nil)

	got, err := svc.RecentAchievements(context.Background(), "1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Total != 7 {
		t.Fatalf("expected 5 from game one and 2 from game three, got %d", got.Total)
	}
	if got.Achievements[0].Name != "c1" || got.Achievements[0].UnlockTime != 55 {
		t.Fatalf("expected newest first, got %+v", got.Achievements[0])
	}
	for _, a := range got.Achievements {
		if a.Name == "a6" || a.Name == "never" || a.Name == "locked" {
			t.Fatalf("unexpected achievement %+v", a)
		}
	}
	last := got.Achievements[len(got.Achievements)-1]
	if last.Name != "Named" || last.Description != "Desc" {
		t.Fatalf("expected schema-less names to pass through, got %+v", last)
	}
	if got.Achievements[0].Description != noDescription {
		t.Fatalf("expected default description, got %q", got.Achievements[0].Description)
	}
}

func TestRecentAchievementsCapsAtTen(t *testing.T) {
	list := make([]domain.PlayerAchievement, 0, 5)
	for i := 0; i < 5; i++ {
		list = append(list, domain.PlayerAchievement{APIName: "x", Achieved: 1, UnlockTime: int64(i)})
	}
	provider := &teststubs.StubProvider{
		Recent: domain.RecentGames{Games: []domain.RecentGame{{AppID: 1}, {AppID: 2}, {AppID: 3}}},
		Achievements: map[int][]domain.PlayerAchievement{
			1: list, 2: list, 3: list,
		},
	}
	got, err := NewService(provider, nil).RecentAchievements(context.Background(), "1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Total != 15 || len(got.Achievements) != recentAchievementLimit {
		t.Fatalf("expected 15 total and 10 returned, got %d/%d", got.Total, len(got.Achievements))
	}
}

func TestLevel(t *testing.T) {
	svc := NewService(&teststubs.StubProvider{Level: 42}, nil)
	level, err := svc.Level(context.Background(), "1")
	if err != nil || level != 42 {
		t.Fatalf("expected level 42, got %d (%v)", level, err)
	}
}
