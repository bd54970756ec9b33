package steam

import "time"

const (
	providerName       = "steam"
	defaultBaseURL     = "https://api.steampowered.com"
	defaultHTTPTimeout = 10 * time.Second
	errorBodyLimit     = 512

	// MaxSummaryIDs is the most ids GetPlayerSummaries accepts per call.
	MaxSummaryIDs = 100
)

// Endpoint paths relative to the Web API base URL.
const (
	pathOwnedGames         = "/IPlayerService/GetOwnedGames/v0001/"
	pathRecentGames        = "/IPlayerService/GetRecentlyPlayedGames/v0001/"
	pathSteamLevel         = "/IPlayerService/GetSteamLevel/v1/"
	pathFriendList         = "/ISteamUser/GetFriendList/v0001/"
	pathPlayerSummaries    = "/ISteamUser/GetPlayerSummaries/v0002/"
	pathPlayerAchievements = "/ISteamUserStats/GetPlayerAchievements/v0001/"
	pathGameSchema         = "/ISteamUserStats/GetSchemaForGame/v2/"
)
