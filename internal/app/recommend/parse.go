package recommend

import (
	"strings"

	"github.com/tidwall/gjson"
)

// parseOutcome is the result of reading an oracle reply. Exactly one of
// suggestionList, noSuggestions or malformedReply.
type parseOutcome interface {
	isParseOutcome()
}

// suggestionList holds the raw items of the first usable array.
type suggestionList struct {
	items []gjson.Result
}

// noSuggestions is valid JSON without any array to read from.
type noSuggestions struct{}

// malformedReply is anything that is not JSON.
type malformedReply struct{}

func (suggestionList) isParseOutcome() {}
func (noSuggestions) isParseOutcome()  {}
func (malformedReply) isParseOutcome() {}

// candidate is a normalized suggestion still to be matched against the library.
type candidate struct {
	name   string
	reason string
}

// parseReply locates the suggestion array: the document itself, then
// "recommendations", then "games", then the first array-valued field in
// document order.
func parseReply(raw string) parseOutcome {
	raw = strings.TrimSpace(raw)
	if raw == "" || !gjson.Valid(raw) {
		return malformedReply{}
	}

	doc := gjson.Parse(raw)
	if doc.IsArray() {
		return suggestionList{items: doc.Array()}
	}
	if !doc.IsObject() {
		return noSuggestions{}
	}

	for _, key := range []string{"recommendations", "games"} {
		if v := doc.Get(key); v.IsArray() {
			return suggestionList{items: v.Array()}
		}
	}

	var found gjson.Result
	doc.ForEach(func(_, value gjson.Result) bool {
		if value.IsArray() {
			found = value
			return false
		}
		return true
	})
	if found.IsArray() {
		return suggestionList{items: found.Array()}
	}
	return noSuggestions{}
}

// normalizeCandidates keeps items that carry a name and fills in a reason.
func normalizeCandidates(items []gjson.Result) []candidate {
	out := make([]candidate, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			continue
		}
		name := firstString(item, "name", "game", "title")
		if name == "" {
			continue
		}
		reason := firstString(item, "reason", "description")
		if reason == "" {
			reason = DefaultReason
		}
		out = append(out, candidate{name: name, reason: reason})
	}
	return out
}

// firstString returns the first key holding a non-blank string.
func firstString(obj gjson.Result, keys ...string) string {
	for _, key := range keys {
		v := obj.Get(key)
		if v.Type != gjson.String {
			continue
		}
		if s := strings.TrimSpace(v.String()); s != "" {
			return s
		}
	}
	return ""
}
