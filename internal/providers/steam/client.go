package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PEEKING-web/steam-tracker/internal/domain/library"
	"github.com/PEEKING-web/steam-tracker/internal/domain/players"
	"github.com/PEEKING-web/steam-tracker/internal/logging"
	"github.com/PEEKING-web/steam-tracker/internal/providers"
)

// Config controls how the Steam client reaches the Web API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *slog.Logger
}

// Client fetches library, profile and achievement data from the Steam Web API
// and maps it to domain models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	logger     *slog.Logger
	now        func() time.Time
}

// NewClient constructs a Steam client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     cfg.Logger,
		now:        time.Now,
	}
}

// FetchOwnedGames returns every game in the user's library, including free games.
func (c *Client) FetchOwnedGames(ctx context.Context, steamID string) (library.OwnedGames, error) {
	var payload ownedGamesResponse
	err := c.getJSON(ctx, pathOwnedGames, url.Values{
		"steamid":                   {steamID},
		"include_appinfo":           {"1"},
		"include_played_free_games": {"1"},
	}, &payload)
	if err != nil {
		return library.OwnedGames{}, err
	}
	return mapOwnedGames(payload), nil
}

// FetchRecentGames returns games played in the last two weeks.
func (c *Client) FetchRecentGames(ctx context.Context, steamID string) (library.RecentGames, error) {
	var payload recentGamesResponse
	if err := c.getJSON(ctx, pathRecentGames, url.Values{"steamid": {steamID}}, &payload); err != nil {
		return library.RecentGames{}, err
	}
	return mapRecentGames(payload), nil
}

func (c *Client) FetchSteamLevel(ctx context.Context, steamID string) (int, error) {
	var payload steamLevelResponse
	if err := c.getJSON(ctx, pathSteamLevel, url.Values{"steamid": {steamID}}, &payload); err != nil {
		return 0, err
	}
	return payload.Response.PlayerLevel, nil
}

func (c *Client) FetchFriendList(ctx context.Context, steamID string) ([]players.Friend, error) {
	var payload friendListResponse
	err := c.getJSON(ctx, pathFriendList, url.Values{
		"steamid":      {steamID},
		"relationship": {"friend"},
	}, &payload)
	if err != nil {
		return nil, err
	}
	return mapFriends(payload), nil
}

// FetchPlayerSummaries resolves up to MaxSummaryIDs profiles in one call.
// Callers batch larger lists.
func (c *Client) FetchPlayerSummaries(ctx context.Context, steamIDs []string) ([]players.PlayerSummary, error) {
	if len(steamIDs) == 0 {
		return []players.PlayerSummary{}, nil
	}
	if len(steamIDs) > MaxSummaryIDs {
		return nil, fmt.Errorf("steam: %d ids exceeds the %d per request limit", len(steamIDs), MaxSummaryIDs)
	}
	var payload playerSummariesResponse
	if err := c.getJSON(ctx, pathPlayerSummaries, url.Values{"steamids": {strings.Join(steamIDs, ",")}}, &payload); err != nil {
		return nil, err
	}
	return mapPlayers(payload), nil
}

// FetchPlayerAchievements returns unlock state for one game. Games without
// stats and private profiles answer 400/403, which yields an empty list.
func (c *Client) FetchPlayerAchievements(ctx context.Context, steamID string, appID int) ([]library.PlayerAchievement, error) {
	var payload playerAchievementsResponse
	err := c.getJSON(ctx, pathPlayerAchievements, url.Values{
		"steamid": {steamID},
		"appid":   {strconv.Itoa(appID)},
		"l":       {"english"},
	}, &payload)
	if err != nil {
		if c.noStats(ctx, err, appID) {
			return []library.PlayerAchievement{}, nil
		}
		return nil, err
	}
	return mapPlayerAchievements(payload), nil
}

// FetchGameSchema returns the achievement definitions for a game.
func (c *Client) FetchGameSchema(ctx context.Context, appID int) ([]library.SchemaAchievement, error) {
	var payload gameSchemaResponse
	if err := c.getJSON(ctx, pathGameSchema, url.Values{"appid": {strconv.Itoa(appID)}}, &payload); err != nil {
		if c.noStats(ctx, err, appID) {
			return []library.SchemaAchievement{}, nil
		}
		return nil, err
	}
	return mapSchema(payload), nil
}

func (c *Client) noStats(ctx context.Context, err error, appID int) bool {
	stErr, ok := providers.AsStatusError(err)
	if !ok {
		return false
	}
	if stErr.StatusCode != http.StatusBadRequest && stErr.StatusCode != http.StatusForbidden {
		return false
	}
	logging.Debug(logging.FromContext(ctx, c.logger), "no stats for app",
		logging.FieldProvider, providerName,
		logging.FieldAppID, appID,
		logging.FieldStatusCode, stErr.StatusCode,
	)
	return true
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	req, err := c.buildRequest(ctx, path, params)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("steam %s: %w", endpointName(path), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Message:    "steam rate limited " + endpointName(path),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &providers.StatusError{
			Provider:   providerName,
			Endpoint:   endpointName(path),
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("steam %s: decode: %w", endpointName(path), err)
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, path string, params url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("key", c.apiKey)
	q.Set("format", "json")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// endpointName turns "/IPlayerService/GetOwnedGames/v0001/" into "GetOwnedGames".
func endpointName(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) >= 2 {
		return parts[1]
	}
	return path
}
