package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("steam", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("steam", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("steam"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("steam"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("steam"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("steam")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("steam", 5*time.Second)
	rec.RecordRateLimit("steam", 0)

	if got := rec.RateLimitHits("steam"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("steam"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksOracleAndRecommendations(t *testing.T) {
	rec := NewRecorder()
	rec.RecordOracleCall("llama", 20*time.Millisecond, nil)
	rec.RecordOracleCall("llama", 30*time.Millisecond, errors.New("timeout"))
	rec.RecordRecommendation("oracle")
	rec.RecordRecommendation("fallback")
	rec.RecordRecommendation("fallback")

	snap := rec.OracleSnapshot()
	if snap.Calls != 2 || snap.Errors != 1 || snap.LastCallLatency != 30*time.Millisecond {
		t.Fatalf("unexpected oracle snapshot %+v", snap)
	}
	if got := rec.Recommendations("fallback"); got != 2 {
		t.Fatalf("expected 2 fallback outcomes, got %d", got)
	}
	if got := rec.Recommendations("oracle"); got != 1 {
		t.Fatalf("expected 1 oracle outcome, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("steam", time.Millisecond, nil)
	rec.RecordOracleCall("m", time.Millisecond, nil)
	rec.RecordRecommendation("oracle")
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	if rec.ProviderCalls("steam") != 0 || rec.Recommendations("oracle") != 0 {
		t.Fatal("expected zero values from nil recorder")
	}
}
