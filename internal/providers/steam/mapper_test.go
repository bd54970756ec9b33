package steam

import "testing"

func TestMapOwnedGamesClampsNegativePlaytimeAndCountsGames(t *testing.T) {
	var r ownedGamesResponse
	r.Response.Games = []ownedGameJSON{
		{AppID: 1, Name: "A", PlaytimeForever: -5},
		{AppID: 2, Name: "B", PlaytimeForever: 10},
	}

	got := mapOwnedGames(r)
	if got.Count != 2 {
		t.Fatalf("expected count derived from games, got %d", got.Count)
	}
	if got.Games[0].PlaytimeForever != 0 {
		t.Fatalf("expected negative playtime clamped, got %d", got.Games[0].PlaytimeForever)
	}
}

func TestMapRecentGames(t *testing.T) {
	var r recentGamesResponse
	r.Response.TotalCount = 1
	r.Response.Games = []recentGameJSON{{AppID: 3, Name: "C", Playtime2Weeks: 90, PlaytimeForever: 900}}

	got := mapRecentGames(r)
	if got.TotalCount != 1 || got.Games[0].Playtime2Weeks != 90 || got.Games[0].PlaytimeForever != 900 {
		t.Fatalf("unexpected recent games %+v", got)
	}
}

func TestMapSchemaEmpty(t *testing.T) {
	if got := mapSchema(gameSchemaResponse{}); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil schema, got %+v", got)
	}
}
