package recommend

// ContextMessage picks the headline for a situation. Rules are checked in
// order and the first match wins. Values are compared exactly as the client
// sends them.
func ContextMessage(sc SituationalContext) string {
	switch {
	case sc.DayType == "stressful" && sc.Mood == "chill":
		return "After a stressful day, here are some relaxing games to unwind! 😌"
	case sc.Mood == "energetic" && sc.TimeAvailable == "long":
		return "You've got energy and time - perfect for an intense session! ⚡"
	case sc.TimeAvailable == "quick":
		return "Quick session ahead - games you can jump into right away! ⏱️"
	case sc.Mood == "focused":
		return "Feeling focused? Here are some games that reward strategic thinking! 🎯"
	default:
		return "Based on your vibe right now, here's what I recommend! 🎮"
	}
}
