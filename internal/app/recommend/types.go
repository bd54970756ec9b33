package recommend

import "github.com/PEEKING-web/steam-tracker/internal/domain/library"

// Fixed texts surfaced to clients.
const (
	EmptyLibraryNotice = "No games in your library yet!"
	FallbackReason     = "One of your most played games!"
	DefaultReason      = "Great choice for you!"
)

const (
	maxRecommendations = 3
	shortlistSize      = 50
)

// SituationalContext is the user's self-reported situation. Values are free
// text; only the context message looks at specific values.
type SituationalContext struct {
	DayType       string `json:"dayType"`
	Mood          string `json:"mood"`
	TimeAvailable string `json:"timeAvailable"`
}

// Recommendation is one suggested game. Identity and display fields always
// come from the owned game, never from oracle output.
type Recommendation struct {
	AppID           int    `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever int    `json:"playtime_forever"`
	ImgIconURL      string `json:"img_icon_url,omitempty"`
	Reason          string `json:"reason"`
}

func newRecommendation(g library.OwnedGame, reason string) Recommendation {
	return Recommendation{
		AppID:           g.AppID,
		Name:            g.Name,
		PlaytimeForever: g.PlaytimeForever,
		ImgIconURL:      g.ImgIconURL,
		Reason:          reason,
	}
}

// Result is the outcome of one reconciliation. Fallback means every pick
// came from playtime; Supplemented means some oracle picks were padded with
// playtime picks.
type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	ContextMessage  string           `json:"contextMessage"`
	Message         string           `json:"message,omitempty"`
	Fallback        bool             `json:"fallback,omitempty"`
	Supplemented    bool             `json:"supplemented,omitempty"`
}
