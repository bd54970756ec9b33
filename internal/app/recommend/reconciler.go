package recommend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PEEKING-web/steam-tracker/internal/domain/library"
	"github.com/PEEKING-web/steam-tracker/internal/logging"
	"github.com/PEEKING-web/steam-tracker/internal/metrics"
	"github.com/PEEKING-web/steam-tracker/internal/oracle"
)

// Options tune the oracle call.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// Reconciler turns untrusted oracle suggestions into recommendations that
// always resolve to games the user owns. It holds no per-request state and is
// safe for concurrent use.
type Reconciler struct {
	oracle   oracle.Oracle
	opts     Options
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewReconciler wires the oracle used for suggestions. A nil oracle behaves
// like a disabled one.
func NewReconciler(o oracle.Oracle, opts Options, logger *slog.Logger, recorder *metrics.Recorder) *Reconciler {
	if o == nil {
		o = oracle.Disabled{}
	}
	return &Reconciler{oracle: o, opts: opts, logger: logger, recorder: recorder}
}

// Recommend picks up to three owned games for the situation. It never fails:
// oracle problems of any kind are absorbed by the playtime fallback.
func (r *Reconciler) Recommend(ctx context.Context, games []library.OwnedGame, sc SituationalContext) Result {
	result := Result{
		Recommendations: []Recommendation{},
		ContextMessage:  ContextMessage(sc),
	}
	logger := logging.FromContext(ctx, r.logger)

	if len(games) == 0 {
		result.Message = EmptyLibraryNotice
		r.finish(logger, OutcomeEmptyLibrary, 0)
		return result
	}

	shortlist := buildShortlist(games)
	picks, err := r.consult(ctx, games, shortlist, sc)
	if err != nil {
		result.Recommendations = fallbackPicks(shortlist, nil)
		result.Fallback = true
		logging.Warn(logger, "using playtime fallback", logging.FieldError, err)
		r.finish(logger, fallbackOutcome(err), len(result.Recommendations))
		return result
	}

	outcome := OutcomeOracle
	if want := min(maxRecommendations, len(shortlist)); len(picks) < want {
		picks = append(picks, fallbackPicks(shortlist, picks)[:want-len(picks)]...)
		outcome = OutcomeOracleToppedUp
		result.Supplemented = true
	}
	result.Recommendations = picks
	r.finish(logger, outcome, len(picks))
	return result
}

// consult asks the oracle and resolves its suggestions against the library.
func (r *Reconciler) consult(ctx context.Context, games, shortlist []library.OwnedGame, sc SituationalContext) ([]Recommendation, error) {
	reply, err := r.oracle.Complete(ctx, systemPrompt, buildUserPrompt(sc, shortlist), oracle.Options{
		Temperature: r.opts.Temperature,
		MaxTokens:   r.opts.MaxTokens,
		WantJSON:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errOracleUnavailable, err)
	}

	var items []candidate
	switch outcome := parseReply(reply).(type) {
	case malformedReply:
		return nil, errOracleMalformed
	case noSuggestions:
		return nil, errNoMatchableCandidates
	case suggestionList:
		items = normalizeCandidates(outcome.items)
	}

	picks := resolve(items, games)
	if len(picks) == 0 {
		return nil, errNoMatchableCandidates
	}
	return picks, nil
}

// resolve matches candidates in oracle order, dropping unmatched ones and
// repeats of an already chosen game.
func resolve(items []candidate, games []library.OwnedGame) []Recommendation {
	picks := make([]Recommendation, 0, maxRecommendations)
	chosen := make(map[int]struct{}, maxRecommendations)
	for _, c := range items {
		g, ok := MatchGame(c.name, games)
		if !ok {
			continue
		}
		if _, dup := chosen[g.AppID]; dup {
			continue
		}
		chosen[g.AppID] = struct{}{}
		picks = append(picks, newRecommendation(g, c.reason))
		if len(picks) == maxRecommendations {
			break
		}
	}
	return picks
}

// fallbackPicks returns the most played shortlist games not already taken.
func fallbackPicks(shortlist []library.OwnedGame, taken []Recommendation) []Recommendation {
	skip := make(map[int]struct{}, len(taken))
	for _, t := range taken {
		skip[t.AppID] = struct{}{}
	}
	out := make([]Recommendation, 0, maxRecommendations)
	for _, g := range shortlist {
		if _, ok := skip[g.AppID]; ok {
			continue
		}
		out = append(out, newRecommendation(g, FallbackReason))
		if len(out) == maxRecommendations {
			break
		}
	}
	return out
}

func (r *Reconciler) finish(logger *slog.Logger, outcome string, count int) {
	r.recorder.RecordRecommendation(outcome)
	logging.Info(logger, "recommendations ready",
		logging.FieldOutcome, outcome,
		logging.FieldCount, count,
	)
}
