// Package storetest holds behavior checks shared by every store.Store implementation.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PEEKING-web/steam-tracker/internal/domain/categories"
	"github.com/PEEKING-web/steam-tracker/internal/domain/sessions"
	"github.com/PEEKING-web/steam-tracker/internal/store"
)

// Run exercises s against the store.Store contract.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Helper()

	t.Run("sessions_round_trip", func(t *testing.T) { sessionsRoundTrip(t, newStore(t)) })
	t.Run("sessions_ordering_and_scope", func(t *testing.T) { sessionsOrdering(t, newStore(t)) })
	t.Run("categories_round_trip", func(t *testing.T) { categoriesRoundTrip(t, newStore(t)) })
	t.Run("categories_ordering_and_scope", func(t *testing.T) { categoriesOrdering(t, newStore(t)) })
}

var base = time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)

func sessionsRoundTrip(t *testing.T, s store.Store) {
	ctx := context.Background()
	ps := sessions.PlaySession{
		ID: "s1", SteamID: "u1", AppID: 620, GameName: "Portal 2",
		StartTime: base, Mood: sessions.MoodChill, Notes: "co-op",
	}
	if err := s.CreateSession(ctx, ps); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.GetSession(ctx, "u1", "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.GameName != "Portal 2" || !got.StartTime.Equal(base) || !got.Active() || got.Mood != sessions.MoodChill {
		t.Fatalf("unexpected session %+v", got)
	}

	if err := got.End(base.Add(95 * time.Minute)); err != nil {
		t.Fatalf("end: %v", err)
	}
	if err := s.UpdateSession(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}

	ended, err := s.GetSession(ctx, "u1", "s1")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if ended.Active() || ended.DurationMinutes == nil || *ended.DurationMinutes != 95 {
		t.Fatalf("expected ended session with 95 minutes, got %+v", ended)
	}
	if !ended.EndTime.Equal(base.Add(95 * time.Minute)) {
		t.Fatalf("unexpected end time %v", ended.EndTime)
	}

	if _, err := s.GetSession(ctx, "someone-else", "s1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user, got %v", err)
	}
	if err := s.UpdateSession(ctx, sessions.PlaySession{ID: "missing", SteamID: "u1"}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound updating missing session, got %v", err)
	}
}

func sessionsOrdering(t *testing.T, s store.Store) {
	ctx := context.Background()
	for i, ps := range []sessions.PlaySession{
		{ID: "a", SteamID: "u1", AppID: 1, GameName: "One", StartTime: base},
		{ID: "b", SteamID: "u1", AppID: 2, GameName: "Two", StartTime: base.Add(time.Hour)},
		{ID: "c", SteamID: "u1", AppID: 1, GameName: "One", StartTime: base.Add(2 * time.Hour)},
		{ID: "d", SteamID: "u2", AppID: 1, GameName: "One", StartTime: base.Add(3 * time.Hour)},
	} {
		ps.Mood = sessions.MoodNeutral
		if err := s.CreateSession(ctx, ps); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	all, err := s.SessionsByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if ids(all) != "cba" {
		t.Fatalf("expected newest first for u1, got %s", ids(all))
	}

	byGame, err := s.SessionsByGame(ctx, "u1", 1)
	if err != nil {
		t.Fatalf("by game: %v", err)
	}
	if ids(byGame) != "ca" {
		t.Fatalf("expected c,a for game 1, got %s", ids(byGame))
	}

	none, err := s.SessionsByUser(ctx, "nobody")
	if err != nil || none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v (%v)", none, err)
	}
}

func categoriesRoundTrip(t *testing.T, s store.Store) {
	ctx := context.Background()
	c := categories.Category{ID: "c1", SteamID: "u1", Name: "Cozy", CreatedAt: base}
	if err := s.CreateCategory(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.GetCategory(ctx, "u1", "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Cozy" || got.Games == nil || len(got.Games) != 0 {
		t.Fatalf("unexpected category %+v", got)
	}

	got.AddGame(categories.Game{AppID: 413150, Name: "Stardew Valley", PlaytimeForever: 9120, ImgIconURL: "abc"})
	got.Name = "Comfy"
	if err := s.UpdateCategory(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}

	updated, err := s.GetCategory(ctx, "u1", "c1")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if updated.Name != "Comfy" || len(updated.Games) != 1 || updated.Games[0].ImgIconURL != "abc" {
		t.Fatalf("unexpected updated category %+v", updated)
	}

	if err := s.DeleteCategory(ctx, "u2", "c1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting other user's category, got %v", err)
	}
	if err := s.DeleteCategory(ctx, "u1", "c1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetCategory(ctx, "u1", "c1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.UpdateCategory(ctx, updated); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound updating deleted category, got %v", err)
	}
}

func categoriesOrdering(t *testing.T, s store.Store) {
	ctx := context.Background()
	for i, c := range []categories.Category{
		{ID: "x", SteamID: "u1", Name: "Old", CreatedAt: base},
		{ID: "y", SteamID: "u1", Name: "New", CreatedAt: base.Add(time.Minute)},
		{ID: "z", SteamID: "u2", Name: "Other", CreatedAt: base.Add(time.Hour)},
	} {
		if err := s.CreateCategory(ctx, c); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	list, err := s.Categories(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != "y" || list[1].ID != "x" {
		t.Fatalf("expected newest first scoped to u1, got %+v", list)
	}
}

func ids(list []sessions.PlaySession) string {
	out := ""
	for _, ps := range list {
		out += ps.ID
	}
	return out
}
