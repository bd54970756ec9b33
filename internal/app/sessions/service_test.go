package sessions

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domain "github.com/PEEKING-web/steam-tracker/internal/domain/sessions"
	"github.com/PEEKING-web/steam-tracker/internal/store"
	"github.com/PEEKING-web/steam-tracker/internal/testutil"
)

var start = testutil.MustParseRFC3339("2024-03-01T20:00:00Z")

func newTestService() (*Service, *store.MemoryStore) {
	ms := store.NewMemoryStore()
	return NewService(ms, nil).WithClock(testutil.NowAt(start)), ms
}

func TestStartDefaultsMood(t *testing.T) {
	svc, _ := newTestService()

	ps, err := svc.Start(context.Background(), "u1", StartRequest{AppID: 620, GameName: "Portal 2"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ps.ID == "" || ps.Mood != domain.MoodNeutral || !ps.StartTime.Equal(start) || !ps.Active() {
		t.Fatalf("unexpected session %+v", ps)
	}
}

func TestStartValidation(t *testing.T) {
	tests := []struct {
		name string
		req  StartRequest
		want error
	}{
		{"missing_appid", StartRequest{GameName: "x"}, domain.ErrGameRequired},
		{"missing_name", StartRequest{AppID: 1}, domain.ErrGameRequired},
		{"bad_mood", StartRequest{AppID: 1, GameName: "x", Mood: "Angry"}, domain.ErrInvalidMood},
		{"long_notes", StartRequest{AppID: 1, GameName: "x", Notes: strings.Repeat("n", 501)}, domain.ErrNotesTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()
			if _, err := svc.Start(context.Background(), "u1", tt.req); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestEndComputesDuration(t *testing.T) {
	svc, _ := newTestService()
	ps, _ := svc.Start(context.Background(), "u1", StartRequest{AppID: 620, GameName: "Portal 2", Mood: "Focused"})

	svc.WithClock(testutil.NowAt(start.Add(47*time.Minute + 59*time.Second)))
	ended, err := svc.End(context.Background(), "u1", ps.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ended.DurationMinutes == nil || *ended.DurationMinutes != 47 {
		t.Fatalf("expected floored 47 minutes, got %+v", ended.DurationMinutes)
	}

	if _, err := svc.End(context.Background(), "u1", ps.ID); !errors.Is(err, domain.ErrAlreadyEnded) {
		t.Fatalf("expected ErrAlreadyEnded, got %v", err)
	}
}

func TestEndScopedToOwner(t *testing.T) {
	svc, _ := newTestService()
	ps, _ := svc.Start(context.Background(), "u1", StartRequest{AppID: 620, GameName: "Portal 2"})

	if _, err := svc.End(context.Background(), "intruder", ps.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.End(context.Background(), "u1", "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAndListByGame(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, _ = svc.Start(ctx, "u1", StartRequest{AppID: 1, GameName: "One"})
	svc.WithClock(testutil.NowAt(start.Add(time.Hour)))
	_, _ = svc.Start(ctx, "u1", StartRequest{AppID: 2, GameName: "Two"})

	all, err := svc.List(ctx, "u1")
	if err != nil || len(all) != 2 || all[0].AppID != 2 {
		t.Fatalf("expected newest first, got %+v (%v)", all, err)
	}
	one, err := svc.ListByGame(ctx, "u1", 1)
	if err != nil || len(one) != 1 || one[0].GameName != "One" {
		t.Fatalf("unexpected by-game list %+v (%v)", one, err)
	}
}
