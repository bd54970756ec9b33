package categories

import (
	"errors"
	"strings"
	"time"
)

var ErrNameRequired = errors.New("category name is required")

// Game is a library game pinned to a category.
type Game struct {
	AppID           int    `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever int    `json:"playtime_forever"`
	ImgIconURL      string `json:"img_icon_url"`
}

// Category is a user-defined grouping of games.
type Category struct {
	ID        string    `json:"categoryId"`
	SteamID   string    `json:"steamId"`
	Name      string    `json:"name"`
	Games     []Game    `json:"games"`
	CreatedAt time.Time `json:"createdAt"`
}

// NormalizeName trims the name and rejects blanks.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	return name, nil
}

// AddGame appends the game unless one with the same appid is already present.
// It reports whether the category changed.
func (c *Category) AddGame(g Game) bool {
	for _, existing := range c.Games {
		if existing.AppID == g.AppID {
			return false
		}
	}
	c.Games = append(c.Games, g)
	return true
}

// RemoveGame drops every entry with the appid and reports whether any was removed.
func (c *Category) RemoveGame(appID int) bool {
	kept := c.Games[:0]
	removed := false
	for _, g := range c.Games {
		if g.AppID == appID {
			removed = true
			continue
		}
		kept = append(kept, g)
	}
	c.Games = kept
	return removed
}
