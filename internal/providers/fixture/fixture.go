package fixture

import (
	"context"
	"time"

	"github.com/PEEKING-web/steam-tracker/internal/domain/library"
	"github.com/PEEKING-web/steam-tracker/internal/domain/players"
)

// Provider returns a static Steam account useful for local runs without an API key.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

var ownedGames = []library.OwnedGame{
	{AppID: 730, Name: "Counter-Strike 2", PlaytimeForever: 48210, ImgIconURL: "8dbc71957312bbd3baea65848b545be9eae2a355"},
	{AppID: 413150, Name: "Stardew Valley", PlaytimeForever: 9120, ImgIconURL: "35d1377200084a4034238c05b0c8930451e2eb40"},
	{AppID: 1145360, Name: "Hades", PlaytimeForever: 4310, ImgIconURL: "b1c5ad4b7d1d8e6b9f5b2b5e8a3c8e8c7a7e3f5d"},
	{AppID: 427520, Name: "Factorio", PlaytimeForever: 15005, ImgIconURL: "e1ac3d3c6d1e3a3e3b6b2f2a6b0f6e9b5c2e1d7f"},
	{AppID: 220, Name: "Half-Life 2", PlaytimeForever: 1260, ImgIconURL: "fcfb366051782b8ebf2aa297f3b746395858cb62"},
	{AppID: 620, Name: "Portal 2", PlaytimeForever: 980, ImgIconURL: "2e478fc6874d06ae5baf0d147f6f21203291aa02"},
	{AppID: 400, Name: "Portal", PlaytimeForever: 310, ImgIconURL: "cfa928ab4119dd137e50d728e8fe703e4e970aff"},
	{AppID: 1794680, Name: "Vampire Survivors", PlaytimeForever: 2240, ImgIconURL: "0b1a7f9f3e3c5b6d9e2f1a4c7b8d0e3f6a9c2b5e"},
}

const (
	selfID = "76561197960287930"
)

var summaries = map[string]players.PlayerSummary{
	selfID: {
		SteamID: selfID, PersonaName: "Rabscuttle", ProfileURL: "https://steamcommunity.com/id/rabscuttle/",
		PersonaState: 1, CommunityVisibilityState: 3, RealName: "Fixture User", TimeCreated: 1063407589,
	},
	"76561197960435530": {
		SteamID: "76561197960435530", PersonaName: "Robin", ProfileURL: "https://steamcommunity.com/id/robinwalker/",
		PersonaState: 0, CommunityVisibilityState: 3, LastLogoff: 1700000000,
	},
	"76561198000000001": {
		SteamID: "76561198000000001", PersonaName: "Chell", ProfileURL: "https://steamcommunity.com/profiles/76561198000000001/",
		PersonaState: 3, CommunityVisibilityState: 1,
	},
}

var schemas = map[int][]library.SchemaAchievement{
	413150: {
		{Name: "Achievement_Greenhorn", DisplayName: "Greenhorn", Description: "Earn 15,000g"},
		{Name: "Achievement_Cowpoke", DisplayName: "Cowpoke", Description: "Earn 50,000g"},
		{Name: "Achievement_Secret", DisplayName: "???", Description: "", Hidden: 1},
	},
	1145360: {
		{Name: "AchEscape", DisplayName: "Is There No Escape?", Description: "Clear an escape attempt"},
		{Name: "AchBoon", DisplayName: "Friends in High Places", Description: "Collect a Boon from each Olympian"},
	},
}

// FetchOwnedGames returns a deterministic library.
func (p *Provider) FetchOwnedGames(ctx context.Context, steamID string) (library.OwnedGames, error) {
	games := append([]library.OwnedGame(nil), ownedGames...)
	return library.OwnedGames{Count: len(games), Games: games}, nil
}

// FetchRecentGames reports a couple of games played in the last two weeks.
func (p *Provider) FetchRecentGames(ctx context.Context, steamID string) (library.RecentGames, error) {
	games := []library.RecentGame{
		{AppID: 413150, Name: "Stardew Valley", Playtime2Weeks: 340, PlaytimeForever: 9120},
		{AppID: 1145360, Name: "Hades", Playtime2Weeks: 125, PlaytimeForever: 4310},
		{AppID: 730, Name: "Counter-Strike 2", Playtime2Weeks: 61, PlaytimeForever: 48210},
	}
	return library.RecentGames{TotalCount: len(games), Games: games}, nil
}

// FetchPlayerAchievements unlocks achievements relative to now so "recent" stays recent.
func (p *Provider) FetchPlayerAchievements(ctx context.Context, steamID string, appID int) ([]library.PlayerAchievement, error) {
	now := p.now().UTC()
	daysAgo := func(d int) int64 { return now.AddDate(0, 0, -d).Unix() }
	switch appID {
	case 413150:
		return []library.PlayerAchievement{
			{APIName: "Achievement_Greenhorn", Achieved: 1, UnlockTime: daysAgo(9)},
			{APIName: "Achievement_Cowpoke", Achieved: 1, UnlockTime: daysAgo(2)},
			{APIName: "Achievement_Secret", Achieved: 0},
		}, nil
	case 1145360:
		return []library.PlayerAchievement{
			{APIName: "AchEscape", Achieved: 1, UnlockTime: daysAgo(1)},
			{APIName: "AchBoon", Achieved: 0},
		}, nil
	default:
		return []library.PlayerAchievement{}, nil
	}
}

func (p *Provider) FetchGameSchema(ctx context.Context, appID int) ([]library.SchemaAchievement, error) {
	return append([]library.SchemaAchievement{}, schemas[appID]...), nil
}

// FetchPlayerSummaries returns summaries for known ids, unknown ids resolve to the fixture user.
func (p *Provider) FetchPlayerSummaries(ctx context.Context, steamIDs []string) ([]players.PlayerSummary, error) {
	out := make([]players.PlayerSummary, 0, len(steamIDs))
	for _, id := range steamIDs {
		if s, ok := summaries[id]; ok {
			out = append(out, s)
			continue
		}
		s := summaries[selfID]
		s.SteamID = id
		out = append(out, s)
	}
	return out, nil
}

func (p *Provider) FetchFriendList(ctx context.Context, steamID string) ([]players.Friend, error) {
	return []players.Friend{
		{SteamID: "76561197960435530", Relationship: "friend", FriendSince: 1262304000},
		{SteamID: "76561198000000001", Relationship: "friend", FriendSince: 1420070400},
	}, nil
}

func (p *Provider) FetchSteamLevel(ctx context.Context, steamID string) (int, error) {
	return 42, nil
}
