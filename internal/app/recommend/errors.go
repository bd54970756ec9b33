package recommend

import "errors"

// ErrUpstreamDataUnavailable means the user's library could not be fetched.
// It is the only error a caller of RecommendForUser sees.
var ErrUpstreamDataUnavailable = errors.New("upstream data unavailable")

// Internal reasons for using the fallback. They never reach callers.
var (
	errOracleUnavailable     = errors.New("oracle unavailable")
	errOracleMalformed       = errors.New("oracle reply is not json")
	errNoMatchableCandidates = errors.New("no oracle suggestion matched the library")
)

// Outcome labels for logs and the recommendations_total metric.
const (
	OutcomeEmptyLibrary        = "empty_library"
	OutcomeOracle              = "oracle"
	OutcomeOracleToppedUp      = "oracle_topped_up"
	OutcomeFallbackUnavailable = "fallback_oracle_unavailable"
	OutcomeFallbackMalformed   = "fallback_malformed"
	OutcomeFallbackUnmatched   = "fallback_unmatched"
)

func fallbackOutcome(err error) string {
	switch {
	case errors.Is(err, errOracleUnavailable):
		return OutcomeFallbackUnavailable
	case errors.Is(err, errOracleMalformed):
		return OutcomeFallbackMalformed
	default:
		return OutcomeFallbackUnmatched
	}
}
