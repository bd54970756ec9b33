package recommend

import (
	"strings"

	"github.com/PEEKING-web/steam-tracker/internal/domain/library"
)

// MatchGame resolves a free-text game name to an owned game. A game matches
// when either lower-cased name contains the other; the first match in
// library order wins. Library entries without a name never match.
func MatchGame(name string, games []library.OwnedGame) (library.OwnedGame, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return library.OwnedGame{}, false
	}
	for _, g := range games {
		hay := strings.ToLower(strings.TrimSpace(g.Name))
		if hay == "" {
			continue
		}
		if strings.Contains(hay, needle) || strings.Contains(needle, hay) {
			return g, true
		}
	}
	return library.OwnedGame{}, false
}
