package steam

import (
	"github.com/PEEKING-web/steam-tracker/internal/domain/library"
	"github.com/PEEKING-web/steam-tracker/internal/domain/players"
)

func mapOwnedGames(r ownedGamesResponse) library.OwnedGames {
	games := make([]library.OwnedGame, 0, len(r.Response.Games))
	for _, g := range r.Response.Games {
		games = append(games, library.OwnedGame{
			AppID:           g.AppID,
			Name:            g.Name,
			PlaytimeForever: max(g.PlaytimeForever, 0),
			ImgIconURL:      g.ImgIconURL,
		})
	}
	count := r.Response.GameCount
	if count == 0 {
		count = len(games)
	}
	return library.OwnedGames{Count: count, Games: games}
}

func mapRecentGames(r recentGamesResponse) library.RecentGames {
	games := make([]library.RecentGame, 0, len(r.Response.Games))
	for _, g := range r.Response.Games {
		games = append(games, library.RecentGame{
			AppID:           g.AppID,
			Name:            g.Name,
			Playtime2Weeks:  max(g.Playtime2Weeks, 0),
			PlaytimeForever: max(g.PlaytimeForever, 0),
			ImgIconURL:      g.ImgIconURL,
		})
	}
	return library.RecentGames{TotalCount: r.Response.TotalCount, Games: games}
}

func mapFriends(r friendListResponse) []players.Friend {
	out := make([]players.Friend, 0, len(r.FriendsList.Friends))
	for _, f := range r.FriendsList.Friends {
		out = append(out, players.Friend(f))
	}
	return out
}

func mapPlayers(r playerSummariesResponse) []players.PlayerSummary {
	out := make([]players.PlayerSummary, 0, len(r.Response.Players))
	for _, p := range r.Response.Players {
		out = append(out, players.PlayerSummary(p))
	}
	return out
}

func mapPlayerAchievements(r playerAchievementsResponse) []library.PlayerAchievement {
	out := make([]library.PlayerAchievement, 0, len(r.PlayerStats.Achievements))
	for _, a := range r.PlayerStats.Achievements {
		out = append(out, library.PlayerAchievement(a))
	}
	return out
}

func mapSchema(r gameSchemaResponse) []library.SchemaAchievement {
	src := r.Game.AvailableGameStats.Achievements
	out := make([]library.SchemaAchievement, 0, len(src))
	for _, a := range src {
		out = append(out, library.SchemaAchievement(a))
	}
	return out
}
