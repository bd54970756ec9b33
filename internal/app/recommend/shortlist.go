package recommend

import (
	"slices"

	"github.com/PEEKING-web/steam-tracker/internal/domain/library"
)

// buildShortlist returns up to shortlistSize distinct games ordered by
// descending playtime. Ties keep library order.
func buildShortlist(games []library.OwnedGame) []library.OwnedGame {
	sorted := slices.Clone(games)
	slices.SortStableFunc(sorted, func(a, b library.OwnedGame) int {
		return b.PlaytimeForever - a.PlaytimeForever
	})

	seen := make(map[int]struct{}, len(sorted))
	out := make([]library.OwnedGame, 0, min(len(sorted), shortlistSize))
	for _, g := range sorted {
		if _, dup := seen[g.AppID]; dup {
			continue
		}
		seen[g.AppID] = struct{}{}
		out = append(out, g)
		if len(out) == shortlistSize {
			break
		}
	}
	return out
}

func hoursPlayed(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	return minutes / 60
}
