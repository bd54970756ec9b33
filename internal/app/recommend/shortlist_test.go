package recommend

import (
	"fmt"
	"testing"

	"github.com/PEEKING-web/steam-tracker/internal/domain/library"
)

func TestBuildShortlistOrdersByPlaytimeStably(t *testing.T) {
	games := []library.OwnedGame{
		{AppID: 1, Name: "a", PlaytimeForever: 10},
		{AppID: 2, Name: "b", PlaytimeForever: 50},
		{AppID: 3, Name: "c", PlaytimeForever: 10},
		{AppID: 2, Name: "b-dup", PlaytimeForever: 5},
	}

	got := buildShortlist(games)
	want := []int{2, 1, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %d games, got %+v", len(want), got)
	}
	for i, id := range want {
		if got[i].AppID != id {
			t.Fatalf("position %d: expected %d, got %d", i, id, got[i].AppID)
		}
	}
	if games[0].AppID != 1 {
		t.Fatal("expected input left untouched")
	}
}

func TestBuildShortlistCapsSize(t *testing.T) {
	games := make([]library.OwnedGame, 0, 80)
	for i := 0; i < 80; i++ {
		games = append(games, library.OwnedGame{AppID: i + 1, Name: fmt.Sprintf("g%d", i), PlaytimeForever: i})
	}

	got := buildShortlist(games)
	if len(got) != shortlistSize {
		t.Fatalf("expected %d games, got %d", shortlistSize, len(got))
	}
	if got[0].PlaytimeForever != 79 || got[len(got)-1].PlaytimeForever != 30 {
		t.Fatalf("expected the 50 most played, got %d..%d", got[0].PlaytimeForever, got[len(got)-1].PlaytimeForever)
	}
}

func TestHoursPlayedFloors(t *testing.T) {
	cases := map[int]int{0: 0, -5: 0, 59: 0, 60: 1, 119: 1, 48210: 803}
	for minutes, want := range cases {
		if got := hoursPlayed(minutes); got != want {
			t.Fatalf("%d minutes: expected %d, got %d", minutes, want, got)
		}
	}
}
