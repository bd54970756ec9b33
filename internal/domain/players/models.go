package players

// Visibility and presence values reported by Steam.
const (
	VisibilityPublic = 3
	PersonaOffline   = 0
)

// PlayerSummary is the public profile Steam reports for an account.
type PlayerSummary struct {
	SteamID                  string `json:"steamid"`
	PersonaName              string `json:"personaname"`
	ProfileURL               string `json:"profileurl"`
	Avatar                   string `json:"avatar"`
	AvatarMedium             string `json:"avatarmedium"`
	AvatarFull               string `json:"avatarfull"`
	PersonaState             int    `json:"personastate"`
	CommunityVisibilityState int    `json:"communityvisibilitystate"`
	LastLogoff               int64  `json:"lastlogoff,omitempty"`
	RealName                 string `json:"realname,omitempty"`
	TimeCreated              int64  `json:"timecreated,omitempty"`
}

// Online reports whether the persona is in any state other than offline.
func (p PlayerSummary) Online() bool {
	return p.PersonaState != PersonaOffline
}

// Public reports whether the profile's game details are visible.
func (p PlayerSummary) Public() bool {
	return p.CommunityVisibilityState == VisibilityPublic
}

// Friend is one entry of a friend list.
type Friend struct {
	SteamID      string `json:"steamid"`
	Relationship string `json:"relationship"`
	FriendSince  int64  `json:"friend_since"`
}
