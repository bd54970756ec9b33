package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/PEEKING-web/steam-tracker/internal/domain/library"
	"github.com/PEEKING-web/steam-tracker/internal/domain/players"
	"github.com/PEEKING-web/steam-tracker/internal/oracle"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Owned           library.OwnedGames
	Recent          library.RecentGames
	Achievements    map[int][]library.PlayerAchievement
	AchievementErrs map[int]error
	Schemas         map[int][]library.SchemaAchievement
	Summaries       map[string]players.PlayerSummary
	Friends         []players.Friend
	Level           int
	Err             error

	Calls        atomic.Int32
	OwnedCalls   atomic.Int32
	SchemaCalls  atomic.Int32
	SummaryCalls atomic.Int32

	mu           sync.Mutex
	summaryBatch []int
}

func (s *StubProvider) FetchOwnedGames(ctx context.Context, steamID string) (library.OwnedGames, error) {
	s.Calls.Add(1)
	s.OwnedCalls.Add(1)
	if s.Err != nil {
		return library.OwnedGames{}, s.Err
	}
	return s.Owned, nil
}

func (s *StubProvider) FetchRecentGames(ctx context.Context, steamID string) (library.RecentGames, error) {
	s.Calls.Add(1)
	if s.Err != nil {
		return library.RecentGames{}, s.Err
	}
	return s.Recent, nil
}

func (s *StubProvider) FetchPlayerAchievements(ctx context.Context, steamID string, appID int) ([]library.PlayerAchievement, error) {
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	if err := s.AchievementErrs[appID]; err != nil {
		return nil, err
	}
	return s.Achievements[appID], nil
}

func (s *StubProvider) FetchGameSchema(ctx context.Context, appID int) ([]library.SchemaAchievement, error) {
	s.Calls.Add(1)
	s.SchemaCalls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Schemas[appID], nil
}

// FetchPlayerSummaries returns the configured summaries for known ids, in request order.
func (s *StubProvider) FetchPlayerSummaries(ctx context.Context, steamIDs []string) ([]players.PlayerSummary, error) {
	s.Calls.Add(1)
	s.SummaryCalls.Add(1)
	s.mu.Lock()
	s.summaryBatch = append(s.summaryBatch, len(steamIDs))
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]players.PlayerSummary, 0, len(steamIDs))
	for _, id := range steamIDs {
		if p, ok := s.Summaries[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *StubProvider) FetchFriendList(ctx context.Context, steamID string) ([]players.Friend, error) {
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Friends, nil
}

func (s *StubProvider) FetchSteamLevel(ctx context.Context, steamID string) (int, error) {
	s.Calls.Add(1)
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Level, nil
}

// SummaryBatchSizes returns the number of ids passed to each FetchPlayerSummaries call.
func (s *StubProvider) SummaryBatchSizes() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.summaryBatch...)
}

// StubOracle is a test double for oracle.Oracle that replays a fixed reply.
type StubOracle struct {
	Reply string
	Err   error

	Calls atomic.Int32

	mu         sync.Mutex
	lastSystem string
	lastUser   string
	lastOpts   oracle.Options
}

func (o *StubOracle) Complete(ctx context.Context, system, user string, opts oracle.Options) (string, error) {
	o.Calls.Add(1)
	o.mu.Lock()
	o.lastSystem, o.lastUser, o.lastOpts = system, user, opts
	o.mu.Unlock()
	if o.Err != nil {
		return "", o.Err
	}
	return o.Reply, nil
}

// Last returns the prompts and options of the most recent call.
func (o *StubOracle) Last() (system, user string, opts oracle.Options) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastSystem, o.lastUser, o.lastOpts
}
