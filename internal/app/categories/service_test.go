package categories

import (
	"context"
	"errors"
	"testing"

	domain "github.com/PEEKING-web/steam-tracker/internal/domain/categories"
	"github.com/PEEKING-web/steam-tracker/internal/store"
	"github.com/PEEKING-web/steam-tracker/internal/testutil"
)

type countingStore struct {
	*store.MemoryStore
	updates int
}

func (c *countingStore) UpdateCategory(ctx context.Context, cat domain.Category) error {
	c.updates++
	return c.MemoryStore.UpdateCategory(ctx, cat)
}

func newTestService() (*Service, *countingStore) {
	st := &countingStore{MemoryStore: store.NewMemoryStore()}
	svc := NewService(st, nil).WithClock(testutil.NowAt(testutil.MustParseRFC3339("2024-03-01T20:00:00Z")))
	return svc, st
}

func TestCreateTrimsName(t *testing.T) {
	svc, _ := newTestService()

	c, err := svc.Create(context.Background(), "u1", "  Cozy  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.Name != "Cozy" || c.ID == "" || c.Games == nil {
		t.Fatalf("unexpected category %+v", c)
	}

	if _, err := svc.Create(context.Background(), "u1", "   "); !errors.Is(err, domain.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestAddGameIsIdempotent(t *testing.T) {
	svc, st := newTestService()
	ctx := context.Background()
	c, _ := svc.Create(ctx, "u1", "Cozy")

	game := GameRequest{AppID: 413150, Name: "Stardew Valley", PlaytimeForever: 9120}
	if _, err := svc.AddGame(ctx, "u1", c.ID, game); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, err := svc.AddGame(ctx, "u1", c.ID, game)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(got.Games) != 1 {
		t.Fatalf("expected one game, got %+v", got.Games)
	}
	if st.updates != 1 {
		t.Fatalf("expected a single write, got %d", st.updates)
	}
}

func TestRemoveRenameDelete(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	c, _ := svc.Create(ctx, "u1", "Cozy")
	_, _ = svc.AddGame(ctx, "u1", c.ID, GameRequest{AppID: 1})
	_, _ = svc.AddGame(ctx, "u1", c.ID, GameRequest{AppID: 2})

	got, err := svc.RemoveGame(ctx, "u1", c.ID, 1)
	if err != nil || len(got.Games) != 1 || got.Games[0].AppID != 2 {
		t.Fatalf("unexpected remove result %+v (%v)", got, err)
	}

	renamed, err := svc.Rename(ctx, "u1", c.ID, " Chill ")
	if err != nil || renamed.Name != "Chill" {
		t.Fatalf("unexpected rename result %+v (%v)", renamed, err)
	}
	if _, err := svc.Rename(ctx, "u1", c.ID, ""); !errors.Is(err, domain.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}

	if err := svc.Delete(ctx, "u1", c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, _ := svc.List(ctx, "u1")
	if len(list) != 0 {
		t.Fatalf("expected no categories, got %+v", list)
	}
}

func TestOtherUsersCategoryIsNotFound(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	c, _ := svc.Create(ctx, "owner", "Mine")

	if _, err := svc.AddGame(ctx, "intruder", c.ID, GameRequest{AppID: 1}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "intruder", c.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
