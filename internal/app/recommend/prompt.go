package recommend

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"

	"github.com/PEEKING-web/steam-tracker/internal/domain/library"
)

const systemPrompt = "You are a gaming recommendation assistant. You only suggest games the user already owns and you always answer with a single valid JSON object."

// suggestionEnvelope documents the reply shape we ask the model for.
type suggestionEnvelope struct {
	Recommendations []suggestionItem `json:"recommendations" jsonschema:"minItems=3,maxItems=3"`
}

type suggestionItem struct {
	Name   string `json:"name" jsonschema:"description=Game name copied exactly from the library list"`
	Reason string `json:"reason" jsonschema:"description=One short sentence explaining the pick,maxLength=80"`
}

var replySchema = sync.OnceValue(func() string {
	r := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
	}
	s := r.Reflect(&suggestionEnvelope{})
	s.Version = ""
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return `{"type":"object"}`
	}
	return string(out)
})

const replyExample = `{
  "recommendations": [
    {"name": "Exact Game Name From Library", "reason": "Brief reason why"},
    {"name": "Exact Game Name From Library", "reason": "Brief reason why"},
    {"name": "Exact Game Name From Library", "reason": "Brief reason why"}
  ]
}`

// buildUserPrompt renders the situation and shortlist. The output depends
// only on its inputs.
func buildUserPrompt(sc SituationalContext, shortlist []library.OwnedGame) string {
	var b strings.Builder

	b.WriteString("Recommend exactly 3 games from the user's Steam library for right now.\n\n")
	b.WriteString("Situation:\n")
	fmt.Fprintf(&b, "- Day: %s\n", sc.DayType)
	fmt.Fprintf(&b, "- Mood: %s\n", sc.Mood)
	fmt.Fprintf(&b, "- Time available: %s\n\n", sc.TimeAvailable)

	b.WriteString("Library (most played first):\n")
	for _, g := range shortlist {
		fmt.Fprintf(&b, "- %s (%dh played)\n", g.Name, hoursPlayed(g.PlaytimeForever))
	}

	b.WriteString("\nRules:\n")
	b.WriteString("1. Only pick games from the library above.\n")
	b.WriteString("2. Copy each name exactly as listed.\n")
	b.WriteString("3. Fit the picks to the day, mood and time available.\n")
	b.WriteString("4. Give each pick one short reason (at most 80 characters).\n\n")

	b.WriteString("Reply with JSON only, no markdown and no extra text, shaped like:\n")
	b.WriteString(replyExample)
	b.WriteString("\n\nJSON Schema of the reply:\n")
	b.WriteString(replySchema())
	b.WriteString("\n")

	return b.String()
}
