package library

// TotalPlaytime summarizes lifetime playtime over the library.
type TotalPlaytime struct {
	Minutes    int             `json:"totalPlaytimeMinutes"`
	Hours      int             `json:"totalPlaytimeHours"`
	Days       int             `json:"totalPlaytimeDays"`
	TotalGames int             `json:"totalGames"`
	MostPlayed *MostPlayedGame `json:"mostPlayedGame,omitempty"`
}

type MostPlayedGame struct {
	Name            string `json:"name"`
	AppID           int    `json:"appId"`
	PlaytimeMinutes int    `json:"playtimeMinutes"`
	PlaytimeHours   int    `json:"playtimeHours"`
}

// WeeklyPlaytime summarizes the last two weeks.
type WeeklyPlaytime struct {
	Minutes          int          `json:"weeklyPlaytimeMinutes"`
	Hours            float64      `json:"weeklyPlaytimeHours"`
	GamesPlayedCount int          `json:"gamesPlayedCount"`
	GamesPlayed      []WeeklyGame `json:"gamesPlayed"`
}

type WeeklyGame struct {
	Name               string  `json:"name"`
	AppID              int     `json:"appId"`
	PlaytimeMinutes    int     `json:"playtimeMinutes"`
	PlaytimeHours      float64 `json:"playtimeHours"`
	TotalPlaytimeHours int     `json:"totalPlaytimeHours"`
}

// RecentAchievement is an unlocked achievement tagged with its game.
type RecentAchievement struct {
	GameName    string `json:"gameName"`
	AppID       int    `json:"appId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnlockTime  int64  `json:"unlockTime"`
	Achieved    bool   `json:"achieved"`
}

type RecentAchievements struct {
	Total        int                 `json:"totalAchievements"`
	Achievements []RecentAchievement `json:"achievements"`
}
