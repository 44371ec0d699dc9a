package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/oauth2/twitch"

	"github.com/fangate-io/fangate/internal/domain/credential"
	"github.com/fangate-io/fangate/internal/domain/verification"
	sharedConfig "github.com/fangate-io/fangate/internal/shared/config"
)

const helixBaseURL = "https://api.twitch.tv/helix"

// TwitchAdapter checks channel follows and subscriptions through the Twitch
// Helix API. Member checks use the member's delegated credential; channel
// resolution uses an app access token obtained via client credentials.
type TwitchAdapter struct {
	config    *oauth2.Config
	appTokens *clientcredentials.Config
	clientID  string
	baseURL   string
	http      *http.Client
}

type helixUsersResponse struct {
	Data []struct {
		ID          string `json:"id"`
		Login       string `json:"login"`
		DisplayName string `json:"display_name"`
	} `json:"data"`
}

type helixFollowersResponse struct {
	Total int `json:"total"`
	Data  []struct {
		UserID     string `json:"user_id"`
		FollowedAt string `json:"followed_at"`
	} `json:"data"`
}

type helixSubscriptionsResponse struct {
	Data []struct {
		BroadcasterID string `json:"broadcaster_id"`
		Tier          string `json:"tier"`
		IsGift        bool   `json:"is_gift"`
	} `json:"data"`
}

// NewTwitchAdapter creates a Twitch adapter from OAuth configuration.
func NewTwitchAdapter(cfg sharedConfig.TwitchOAuthConfig) *TwitchAdapter {
	return &TwitchAdapter{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"user:read:follows", "user:read:subscriptions"},
			Endpoint:     twitch.Endpoint,
		},
		appTokens: &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     twitch.Endpoint.TokenURL,
		},
		clientID: cfg.ClientID,
		baseURL:  helixBaseURL,
		http:     &http.Client{Timeout: httpClientTimeout},
	}
}

// Platform returns the platform this adapter talks to.
func (a *TwitchAdapter) Platform() credential.Platform {
	return credential.PlatformTwitch
}

// Supports reports whether the adapter implements the given check kind.
func (a *TwitchAdapter) Supports(kind verification.Kind) bool {
	return kind == verification.KindTwitchFollow || kind == verification.KindTwitchSubscription
}

// AuthURL returns the authorization URL to send the member to.
func (a *TwitchAdapter) AuthURL(state string) string {
	return a.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for token material.
func (a *TwitchAdapter) Exchange(ctx context.Context, code string) (credential.TokenData, error) {
	token, err := a.config.Exchange(ctx, code)
	if err != nil {
		return credential.TokenData{}, fmt.Errorf("failed to exchange code: %w", err)
	}
	return tokenToData(token), nil
}

// Check runs a follow or subscription check against the target channel.
// A 404 on the subscription endpoint is Twitch's way of saying "not
// subscribed" and is a definitive answer, not a failure.
func (a *TwitchAdapter) Check(ctx context.Context, kind verification.Kind, cred *credential.Credential, target verification.ChannelTarget) verification.CheckOutcome {
	if !a.Supports(kind) {
		return verification.TransientOutcome(fmt.Sprintf("twitch adapter cannot run %s", kind))
	}
	if target.ID == "" {
		return verification.TransientOutcome("no twitch channel configured")
	}

	viewerID, outcome := a.lookupViewerID(ctx, cred)
	if viewerID == "" {
		return outcome
	}

	if kind == verification.KindTwitchFollow {
		return a.checkFollow(ctx, cred, viewerID, target.ID)
	}
	return a.checkSubscription(ctx, cred, viewerID, target.ID)
}

func (a *TwitchAdapter) lookupViewerID(ctx context.Context, cred *credential.Credential) (string, verification.CheckOutcome) {
	status, body, err := a.get(ctx, "/users", url.Values{}, cred.AccessToken())
	if err != nil {
		return "", verification.TransientOutcome(err.Error())
	}
	if status == http.StatusUnauthorized {
		return "", verification.NeedsAuthOutcome()
	}
	if status != http.StatusOK {
		return "", verification.TransientOutcome(fmt.Sprintf("twitch users lookup returned status %d", status))
	}

	var users helixUsersResponse
	if err := json.Unmarshal(body, &users); err != nil {
		return "", verification.TransientOutcome(fmt.Sprintf("invalid twitch response: %v", err))
	}
	if len(users.Data) == 0 {
		return "", verification.NeedsAuthOutcome()
	}
	return users.Data[0].ID, verification.CheckOutcome{}
}

func (a *TwitchAdapter) checkFollow(ctx context.Context, cred *credential.Credential, viewerID, broadcasterID string) verification.CheckOutcome {
	query := url.Values{}
	query.Set("broadcaster_id", broadcasterID)
	query.Set("user_id", viewerID)

	status, body, err := a.get(ctx, "/channels/followers", query, cred.AccessToken())
	if err != nil {
		return verification.TransientOutcome(err.Error())
	}

	switch status {
	case http.StatusOK:
		var followers helixFollowersResponse
		if err := json.Unmarshal(body, &followers); err != nil {
			return verification.TransientOutcome(fmt.Sprintf("invalid twitch response: %v", err))
		}
		return verification.DefinitiveOutcome(len(followers.Data) > 0, "")
	case http.StatusUnauthorized:
		return verification.NeedsAuthOutcome()
	default:
		return verification.TransientOutcome(fmt.Sprintf("twitch followers check returned status %d", status))
	}
}

func (a *TwitchAdapter) checkSubscription(ctx context.Context, cred *credential.Credential, viewerID, broadcasterID string) verification.CheckOutcome {
	query := url.Values{}
	query.Set("broadcaster_id", broadcasterID)
	query.Set("user_id", viewerID)

	status, body, err := a.get(ctx, "/subscriptions/user", query, cred.AccessToken())
	if err != nil {
		return verification.TransientOutcome(err.Error())
	}

	switch status {
	case http.StatusOK:
		var subs helixSubscriptionsResponse
		if err := json.Unmarshal(body, &subs); err != nil {
			return verification.TransientOutcome(fmt.Sprintf("invalid twitch response: %v", err))
		}
		if len(subs.Data) == 0 {
			return verification.DefinitiveOutcome(false, "")
		}
		return verification.DefinitiveOutcome(true, subscriptionTier(subs.Data[0].Tier))
	case http.StatusNotFound:
		// Helix reports "no subscription" as 404
		return verification.DefinitiveOutcome(false, "")
	case http.StatusUnauthorized:
		return verification.NeedsAuthOutcome()
	default:
		return verification.TransientOutcome(fmt.Sprintf("twitch subscription check returned status %d", status))
	}
}

// ResolveChannel maps a channel login to the broadcaster ID using an app
// access token, so resolution works without any member credential.
func (a *TwitchAdapter) ResolveChannel(ctx context.Context, login string) (string, error) {
	token, err := a.appTokens.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to obtain twitch app token: %w", err)
	}

	query := url.Values{}
	query.Set("login", login)

	status, body, err := a.get(ctx, "/users", query, token.AccessToken)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("twitch channel lookup returned status %d", status)
	}

	var users helixUsersResponse
	if err := json.Unmarshal(body, &users); err != nil {
		return "", fmt.Errorf("invalid twitch response: %w", err)
	}
	if len(users.Data) == 0 {
		return "", verification.ErrChannelNotFound
	}
	return users.Data[0].ID, nil
}

// Refresh exchanges the stored refresh token for fresh token material.
func (a *TwitchAdapter) Refresh(ctx context.Context, cred *credential.Credential) (credential.TokenData, error) {
	source := a.config.TokenSource(ctx, &oauth2.Token{RefreshToken: cred.RefreshToken()})
	token, err := source.Token()
	if err != nil {
		return credential.TokenData{}, fmt.Errorf("failed to refresh twitch token: %w", err)
	}
	return tokenToData(token), nil
}

func (a *TwitchAdapter) get(ctx context.Context, path string, query url.Values, accessToken string) (int, []byte, error) {
	target := a.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Client-Id", a.clientID)

	resp, err := a.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("twitch api request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read twitch response: %w", err)
	}
	return resp.StatusCode, body, nil
}

// subscriptionTier maps Helix tier codes to the human tier levels used in
// log labels: 1000 is tier 1, 2000 tier 2, 3000 tier 3.
func subscriptionTier(tier string) string {
	switch tier {
	case "1000":
		return "1"
	case "2000":
		return "2"
	case "3000":
		return "3"
	default:
		return ""
	}
}
