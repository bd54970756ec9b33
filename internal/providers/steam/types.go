package steam

type ownedGamesResponse struct {
	Response struct {
		GameCount int             `json:"game_count"`
		Games     []ownedGameJSON `json:"games"`
	} `json:"response"`
}

type ownedGameJSON struct {
	AppID           int    `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever int    `json:"playtime_forever"`
	ImgIconURL      string `json:"img_icon_url"`
}

type recentGamesResponse struct {
	Response struct {
		TotalCount int              `json:"total_count"`
		Games      []recentGameJSON `json:"games"`
	} `json:"response"`
}

type recentGameJSON struct {
	AppID           int    `json:"appid"`
	Name            string `json:"name"`
	Playtime2Weeks  int    `json:"playtime_2weeks"`
	PlaytimeForever int    `json:"playtime_forever"`
	ImgIconURL      string `json:"img_icon_url"`
}

type steamLevelResponse struct {
	Response struct {
		PlayerLevel int `json:"player_level"`
	} `json:"response"`
}

type friendListResponse struct {
	FriendsList struct {
		Friends []friendJSON `json:"friends"`
	} `json:"friendslist"`
}

type friendJSON struct {
	SteamID      string `json:"steamid"`
	Relationship string `json:"relationship"`
	FriendSince  int64  `json:"friend_since"`
}

type playerSummariesResponse struct {
	Response struct {
		Players []playerJSON `json:"players"`
	} `json:"response"`
}

type playerJSON struct {
	SteamID                  string `json:"steamid"`
	PersonaName              string `json:"personaname"`
	ProfileURL               string `json:"profileurl"`
	Avatar                   string `json:"avatar"`
	AvatarMedium             string `json:"avatarmedium"`
	AvatarFull               string `json:"avatarfull"`
	PersonaState             int    `json:"personastate"`
	CommunityVisibilityState int    `json:"communityvisibilitystate"`
	LastLogoff               int64  `json:"lastlogoff"`
	RealName                 string `json:"realname"`
	TimeCreated              int64  `json:"timecreated"`
}

type playerAchievementsResponse struct {
	PlayerStats struct {
		Success      bool                    `json:"success"`
		Achievements []playerAchievementJSON `json:"achievements"`
	} `json:"playerstats"`
}

type playerAchievementJSON struct {
	APIName     string `json:"apiname"`
	Achieved    int    `json:"achieved"`
	UnlockTime  int64  `json:"unlocktime"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type gameSchemaResponse struct {
	Game struct {
		AvailableGameStats struct {
			Achievements []schemaAchievementJSON `json:"achievements"`
		} `json:"availableGameStats"`
	} `json:"game"`
}

type schemaAchievementJSON struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IconGray    string `json:"icongray"`
	Hidden      int    `json:"hidden"`
}
