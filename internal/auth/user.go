package auth

import (
	"context"

	"github.com/PEEKING-web/steam-tracker/internal/domain/players"
)

// User is the signed-in Steam account carried in the session.
type User struct {
	SteamID      string  `json:"steamId"`
	DisplayName  string  `json:"displayName"`
	Avatar       string  `json:"avatar"`
	ProfileURL   string  `json:"profileUrl"`
	PersonaState int     `json:"personaState"`
	RealName     *string `json:"realName"`
	TimeCreated  *int64  `json:"timeCreated"`
}

// UserFromSummary builds the session user from a profile. A missing profile
// still yields a user carrying only the id.
func UserFromSummary(steamID string, p *players.PlayerSummary) User {
	u := User{SteamID: steamID}
	if p == nil {
		return u
	}
	u.DisplayName = p.PersonaName
	u.Avatar = p.AvatarFull
	u.ProfileURL = p.ProfileURL
	u.PersonaState = p.PersonaState
	if p.RealName != "" {
		name := p.RealName
		u.RealName = &name
	}
	if p.TimeCreated != 0 {
		created := p.TimeCreated
		u.TimeCreated = &created
	}
	return u
}

type userKey struct{}

// WithUser stores the user on the context.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFromContext returns the user set by RequireUser.
func UserFromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userKey{}).(User)
	return u, ok
}
