package friends

import (
	"github.com/PEEKING-web/steam-tracker/internal/domain/library"
	"github.com/PEEKING-web/steam-tracker/internal/domain/players"
)

// Friend is a friend-list entry with profile data.
type Friend struct {
	SteamID                  string `json:"steamId"`
	DisplayName              string `json:"displayName"`
	Avatar                   string `json:"avatar"`
	AvatarMedium             string `json:"avatarMedium"`
	ProfileURL               string `json:"profileUrl"`
	PersonaState             int    `json:"personaState"`
	IsOnline                 bool   `json:"isOnline"`
	LastLogoff               *int64 `json:"lastLogoff"`
	CommunityVisibilityState int    `json:"communityVisibilityState"`
	IsPublic                 bool   `json:"isPublic"`
}

// Profile is the detailed view of one account.
type Profile struct {
	SteamID                  string  `json:"steamId"`
	DisplayName              string  `json:"displayName"`
	Avatar                   string  `json:"avatar"`
	ProfileURL               string  `json:"profileUrl"`
	PersonaState             int     `json:"personaState"`
	IsOnline                 bool    `json:"isOnline"`
	LastLogoff               *int64  `json:"lastLogoff"`
	RealName                 *string `json:"realName"`
	TimeCreated              *int64  `json:"timeCreated"`
	CommunityVisibilityState int     `json:"communityVisibilityState"`
	IsPublic                 bool    `json:"isPublic"`
}

// Games is a friend's library, or only IsPrivate when it cannot be shown.
type Games struct {
	IsPrivate bool                `json:"isPrivate"`
	GameCount int                 `json:"gameCount"`
	Games     []library.OwnedGame `json:"games,omitempty"`
}

func friendFromSummary(p players.PlayerSummary) Friend {
	return Friend{
		SteamID:                  p.SteamID,
		DisplayName:              p.PersonaName,
		Avatar:                   p.AvatarFull,
		AvatarMedium:             p.AvatarMedium,
		ProfileURL:               p.ProfileURL,
		PersonaState:             p.PersonaState,
		IsOnline:                 p.Online(),
		LastLogoff:               nonZero(p.LastLogoff),
		CommunityVisibilityState: p.CommunityVisibilityState,
		IsPublic:                 p.Public(),
	}
}

func profileFromSummary(p players.PlayerSummary) Profile {
	var realName *string
	if p.RealName != "" {
		name := p.RealName
		realName = &name
	}
	return Profile{
		SteamID:                  p.SteamID,
		DisplayName:              p.PersonaName,
		Avatar:                   p.AvatarFull,
		ProfileURL:               p.ProfileURL,
		PersonaState:             p.PersonaState,
		IsOnline:                 p.Online(),
		LastLogoff:               nonZero(p.LastLogoff),
		RealName:                 realName,
		TimeCreated:              nonZero(p.TimeCreated),
		CommunityVisibilityState: p.CommunityVisibilityState,
		IsPublic:                 p.Public(),
	}
}

func nonZero(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}
