package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	openIDNamespace      = "http://specs.openid.net/auth/2.0"
	openIDIdentifierPick = "http://specs.openid.net/auth/2.0/identifier_select"
)

// ErrInvalidAssertion means the provider did not vouch for the login response.
var ErrInvalidAssertion = errors.New("invalid openid assertion")

// requiredSigned lists the fields check_authentication must cover for the
// claimed identity to be trusted.
var requiredSigned = []string{"op_endpoint", "claimed_id", "identity", "return_to", "response_nonce"}

var claimedIDPattern = regexp.MustCompile(`^https?://steamcommunity\.com/openid/id/(\d{17})$`)

type httpDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// OpenID implements the two steps of Steam's OpenID 2.0 login: the redirect
// to the provider and the direct verification of the signed response.
type OpenID struct {
	endpoint string
	realm    string
	returnTo string
	client   httpDoer
}

// NewOpenID builds a login flow that sends users back to returnTo. A nil
// client uses a default with a ten second timeout.
func NewOpenID(endpoint, realm, returnTo string, client httpDoer) *OpenID {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &OpenID{endpoint: endpoint, realm: realm, returnTo: returnTo, client: client}
}

// AuthURL is where the browser is redirected to sign in.
func (o *OpenID) AuthURL() string {
	q := url.Values{}
	q.Set("openid.ns", openIDNamespace)
	q.Set("openid.mode", "checkid_setup")
	q.Set("openid.return_to", o.returnTo)
	q.Set("openid.realm", o.realm)
	q.Set("openid.identity", openIDIdentifierPick)
	q.Set("openid.claimed_id", openIDIdentifierPick)
	return o.endpoint + "?" + q.Encode()
}

// Verify checks the provider's response with check_authentication and
// returns the 64-bit Steam id from the claimed identifier.
func (o *OpenID) Verify(ctx context.Context, params url.Values) (string, error) {
	if params.Get("openid.mode") != "id_res" {
		return "", fmt.Errorf("%w: mode %q", ErrInvalidAssertion, params.Get("openid.mode"))
	}
	if !strings.HasPrefix(params.Get("openid.return_to"), o.returnTo) {
		return "", fmt.Errorf("%w: return_to mismatch", ErrInvalidAssertion)
	}
	if params.Get("openid.op_endpoint") != o.endpoint {
		return "", fmt.Errorf("%w: op_endpoint mismatch", ErrInvalidAssertion)
	}
	if err := checkSigned(params.Get("openid.signed")); err != nil {
		return "", err
	}
	claimed := params.Get("openid.claimed_id")
	if params.Get("openid.identity") != claimed {
		return "", fmt.Errorf("%w: identity differs from claimed_id", ErrInvalidAssertion)
	}
	steamID, ok := SteamIDFromClaimedID(claimed)
	if !ok {
		return "", fmt.Errorf("%w: claimed_id", ErrInvalidAssertion)
	}

	form := url.Values{}
	for k, v := range params {
		form[k] = append([]string(nil), v...)
	}
	form.Set("openid.mode", "check_authentication")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openid verify: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return "", fmt.Errorf("openid verify: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !isValidResponse(string(body)) {
		return "", fmt.Errorf("%w: provider rejected", ErrInvalidAssertion)
	}
	return steamID, nil
}

func checkSigned(signed string) error {
	fields := make(map[string]bool)
	for _, f := range strings.Split(signed, ",") {
		fields[strings.TrimSpace(f)] = true
	}
	for _, want := range requiredSigned {
		if !fields[want] {
			return fmt.Errorf("%w: %s not signed", ErrInvalidAssertion, want)
		}
	}
	return nil
}

// SteamIDFromClaimedID extracts the 17 digit id from a Steam claimed identifier.
func SteamIDFromClaimedID(claimed string) (string, bool) {
	m := claimedIDPattern.FindStringSubmatch(claimed)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// isValidResponse reads the key-value form body for is_valid:true.
func isValidResponse(body string) bool {
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "is_valid:true" {
			return true
		}
	}
	return false
}
