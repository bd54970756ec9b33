package library

import "fmt"

// IconBaseURL is where Steam serves app icons referenced by img_icon_url hashes.
const IconBaseURL = "https://media.steampowered.com/steamcommunity/public/images/apps"

// OwnedGame is one entry of a user's Steam library. Field names follow the
// Steam Web API so clients can reuse them unchanged.
type OwnedGame struct {
	AppID           int    `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever int    `json:"playtime_forever"`
	ImgIconURL      string `json:"img_icon_url,omitempty"`
}

// IconURL resolves the icon hash into a full URL. Empty when the game has no icon.
func (g OwnedGame) IconURL() string {
	if g.ImgIconURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/%d/%s.jpg", IconBaseURL, g.AppID, g.ImgIconURL)
}

// OwnedGames is the owned-games response for a user.
type OwnedGames struct {
	Count int         `json:"gameCount"`
	Games []OwnedGame `json:"games"`
}

// RecentGame is a game played within the last two weeks.
type RecentGame struct {
	AppID           int    `json:"appid"`
	Name            string `json:"name"`
	Playtime2Weeks  int    `json:"playtime_2weeks"`
	PlaytimeForever int    `json:"playtime_forever"`
	ImgIconURL      string `json:"img_icon_url,omitempty"`
}

// RecentGames is the recently-played response for a user.
type RecentGames struct {
	TotalCount int          `json:"totalCount"`
	Games      []RecentGame `json:"games"`
}

// PlayerAchievement is a user's unlock state for one achievement.
type PlayerAchievement struct {
	APIName     string `json:"apiname"`
	Achieved    int    `json:"achieved"`
	UnlockTime  int64  `json:"unlocktime"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Unlocked reports whether the achievement has been earned.
func (a PlayerAchievement) Unlocked() bool {
	return a.Achieved == 1
}

// SchemaAchievement is the game-defined metadata for an achievement.
type SchemaAchievement struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IconGray    string `json:"icongray"`
	Hidden      int    `json:"hidden"`
}

// Achievement merges player progress with schema metadata.
type Achievement struct {
	APIName     string `json:"apiname"`
	Achieved    int    `json:"achieved"`
	UnlockTime  int64  `json:"unlocktime"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	IconGray    string `json:"icongray,omitempty"`
	Hidden      bool   `json:"hidden"`
}
