package players

import "testing"

func TestPlayerSummaryPresence(t *testing.T) {
	tests := []struct {
		name   string
		p      PlayerSummary
		online bool
		public bool
	}{
		{"offline_private", PlayerSummary{PersonaState: 0, CommunityVisibilityState: 1}, false, false},
		{"online_public", PlayerSummary{PersonaState: 1, CommunityVisibilityState: 3}, true, true},
		{"away_friends_only", PlayerSummary{PersonaState: 3, CommunityVisibilityState: 2}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.p.Online() != tt.online {
				t.Fatalf("expected online=%v", tt.online)
			}
			if tt.p.Public() != tt.public {
				t.Fatalf("expected public=%v", tt.public)
			}
		})
	}
}
