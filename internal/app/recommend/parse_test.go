package recommend

import "testing"

func TestParseReplyShapes(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantItems int
		kind      string
	}{
		{"top_level_array", `[{"name":"a"},{"name":"b"}]`, 2, "list"},
		{"recommendations_field", `{"recommendations":[{"name":"a"}]}`, 1, "list"},
		{"games_field", `{"games":[{"name":"a"},{"name":"b"},{"name":"c"}]}`, 3, "list"},
		{"recommendations_beats_games", `{"games":[{"name":"g"}],"recommendations":[{"name":"r"},{"name":"s"}]}`, 2, "list"},
		{"non_array_recommendations_skipped", `{"recommendations":"none","picks":[{"name":"a"}]}`, 1, "list"},
		{"first_array_in_document_order", `{"meta":{"x":1},"first":[1],"second":[{"name":"a"},{"name":"b"}]}`, 1, "list"},
		{"object_without_arrays", `{"message":"sorry"}`, 0, "none"},
		{"json_string", `"hello"`, 0, "none"},
		{"not_json", `not json`, 0, "malformed"},
		{"empty", ``, 0, "malformed"},
		{"markdown_fenced", "```json\n{\"recommendations\":[]}\n```", 0, "malformed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			switch got := parseReply(tt.raw).(type) {
			case suggestionList:
				if tt.kind != "list" {
					t.Fatalf("expected %s, got list", tt.kind)
				}
				if len(got.items) != tt.wantItems {
					t.Fatalf("expected %d items, got %d", tt.wantItems, len(got.items))
				}
			case noSuggestions:
				if tt.kind != "none" {
					t.Fatalf("expected %s, got none", tt.kind)
				}
			case malformedReply:
				if tt.kind != "malformed" {
					t.Fatalf("expected %s, got malformed", tt.kind)
				}
			default:
				t.Fatalf("unexpected outcome %T", got)
			}
		})
	}
}

func TestNormalizeCandidatesFieldPriority(t *testing.T) {
	list, ok := parseReply(`[
		{"name":"A","game":"B","title":"C","reason":"r","description":"d"},
		{"game":"B","title":"C","description":"d"},
		{"title":"C"},
		{"name":"","game":"G"},
		{"name":42,"title":"T"},
		{"name":"   "},
		{"reason":"orphan"},
		"string item",
		null
	]`).(suggestionList)
	if !ok {
		t.Fatal("expected suggestion list")
	}

	got := normalizeCandidates(list.items)
	want := []candidate{
		{name: "A", reason: "r"},
		{name: "B", reason: "d"},
		{name: "C", reason: DefaultReason},
		{name: "G", reason: DefaultReason},
		{name: "T", reason: DefaultReason},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d candidates, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidate %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
