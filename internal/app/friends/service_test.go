package friends

import (
	"context"
	"errors"
	"fmt"
	"testing"

	domain "github.com/PEEKING-web/steam-tracker/internal/domain/library"
	"github.com/PEEKING-web/steam-tracker/internal/domain/players"
	"github.com/PEEKING-web/steam-tracker/internal/teststubs"
)

func TestListBatchesSummaries(t *testing.T) {
	friends := make([]players.Friend, 0, 250)
	summaries := make(map[string]players.PlayerSummary, 250)
	for i := 0; i < 250; i++ {
		id := fmt.Sprintf("7656%04d", i)
		friends = append(friends, players.Friend{SteamID: id})
		summaries[id] = players.PlayerSummary{SteamID: id, PersonaName: "p" + id, PersonaState: i % 2}
	}
	provider := &teststubs.StubProvider{Friends: friends, Summaries: summaries}
	svc := NewService(provider, nil)

	got, err := svc.List(context.Background(), "me")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 250 {
		t.Fatalf("expected 250 friends, got %d", len(got))
	}
	if got[0].SteamID != friends[0].SteamID || got[249].SteamID != friends[249].SteamID {
		t.Fatal("expected friend-list order preserved")
	}
	if got[0].IsOnline || !got[1].IsOnline {
		t.Fatalf("unexpected online flags %+v %+v", got[0], got[1])
	}

	sizes := provider.SummaryBatchSizes()
	total := 0
	for _, n := range sizes {
		if n > 100 {
			t.Fatalf("batch of %d exceeds 100", n)
		}
		total += n
	}
	if len(sizes) != 3 || total != 250 {
		t.Fatalf("expected 3 batches covering 250 ids, got %v", sizes)
	}
}

func TestListEmptySkipsSummaries(t *testing.T) {
	provider := &teststubs.StubProvider{}
	got, err := NewService(provider, nil).List(context.Background(), "me")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got == nil || len(got) != 0 || provider.SummaryCalls.Load() != 0 {
		t.Fatalf("expected empty list without summary calls, got %+v", got)
	}
}

func TestProfileNotFound(t *testing.T) {
	svc := NewService(&teststubs.StubProvider{}, nil)
	if _, err := svc.Profile(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProfileMapsOptionalFields(t *testing.T) {
	provider := &teststubs.StubProvider{Summaries: map[string]players.PlayerSummary{
		"1": {SteamID: "1", PersonaName: "gordon", RealName: "Gordon", CommunityVisibilityState: players.VisibilityPublic},
	}}
	p, err := NewService(provider, nil).Profile(context.Background(), "1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.RealName == nil || *p.RealName != "Gordon" || p.TimeCreated != nil || !p.IsPublic {
		t.Fatalf("unexpected profile %+v", p)
	}
}

func TestGamesPrivateProfile(t *testing.T) {
	provider := &teststubs.StubProvider{Summaries: map[string]players.PlayerSummary{
		"1": {SteamID: "1", CommunityVisibilityState: 1},
	}}
	got, err := NewService(provider, nil).Games(context.Background(), "1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !got.IsPrivate || provider.OwnedCalls.Load() != 0 {
		t.Fatalf("expected private result without fetching games, got %+v", got)
	}
}

func TestGamesPublicProfile(t *testing.T) {
	provider := &teststubs.StubProvider{
		Summaries: map[string]players.PlayerSummary{"1": {SteamID: "1", CommunityVisibilityState: players.VisibilityPublic}},
		Owned:     domain.OwnedGames{Count: 1, Games: []domain.OwnedGame{{AppID: 10, Name: "CS"}}},
	}
	got, err := NewService(provider, nil).Games(context.Background(), "1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.IsPrivate || got.GameCount != 1 || len(got.Games) != 1 {
		t.Fatalf("unexpected games %+v", got)
	}
}

func TestChunk(t *testing.T) {
	got := chunk([]string{"a", "b", "c", "d", "e"}, 2)
	if len(got) != 3 || len(got[2]) != 1 || got[2][0] != "e" {
		t.Fatalf("unexpected chunks %v", got)
	}
	if len(chunk(nil, 2)) != 0 {
		t.Fatal("expected no chunks for empty input")
	}
}
