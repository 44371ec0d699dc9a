// Package platform implements the per-platform membership check adapters.
// Adapters translate provider HTTP responses into the three-way check
// outcome contract and never surface provider failures as Go errors.
package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/fangate-io/fangate/internal/domain/credential"
	"github.com/fangate-io/fangate/internal/domain/verification"
	sharedConfig "github.com/fangate-io/fangate/internal/shared/config"
)

const (
	// httpClientTimeout is the timeout for HTTP requests to platform APIs
	httpClientTimeout = 10 * time.Second

	youtubeAPIBaseURL = "https://www.googleapis.com/youtube/v3"
	youtubeScope      = "https://www.googleapis.com/auth/youtube.readonly"
)

// YouTubeAdapter checks channel subscriptions through the YouTube Data API
// using the member's delegated credential.
type YouTubeAdapter struct {
	config  *oauth2.Config
	apiKey  string
	baseURL string
	http    *http.Client
}

type youtubeListResponse struct {
	PageInfo struct {
		TotalResults int `json:"totalResults"`
	} `json:"pageInfo"`
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
}

// NewYouTubeAdapter creates a YouTube adapter from OAuth configuration.
func NewYouTubeAdapter(cfg sharedConfig.YouTubeOAuthConfig) *YouTubeAdapter {
	return &YouTubeAdapter{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{youtubeScope},
			Endpoint:     google.Endpoint,
		},
		apiKey:  cfg.APIKey,
		baseURL: youtubeAPIBaseURL,
		http:    &http.Client{Timeout: httpClientTimeout},
	}
}

// Platform returns the platform this adapter talks to.
func (a *YouTubeAdapter) Platform() credential.Platform {
	return credential.PlatformYouTube
}

// Supports reports whether the adapter implements the given check kind.
// YouTube exposes no follow concept, only subscriptions.
func (a *YouTubeAdapter) Supports(kind verification.Kind) bool {
	return kind == verification.KindYouTubeSubscription
}

// AuthURL returns the authorization URL to send the member to. Offline
// access with forced consent makes Google return a refresh token.
func (a *YouTubeAdapter) AuthURL(state string) string {
	return a.config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades an authorization code for token material.
func (a *YouTubeAdapter) Exchange(ctx context.Context, code string) (credential.TokenData, error) {
	token, err := a.config.Exchange(ctx, code)
	if err != nil {
		return credential.TokenData{}, fmt.Errorf("failed to exchange code: %w", err)
	}
	return tokenToData(token), nil
}

// Check runs the subscription check against the target channel.
func (a *YouTubeAdapter) Check(ctx context.Context, kind verification.Kind, cred *credential.Credential, target verification.ChannelTarget) verification.CheckOutcome {
	if kind != verification.KindYouTubeSubscription {
		return verification.TransientOutcome(fmt.Sprintf("youtube adapter cannot run %s", kind))
	}
	if target.ID == "" {
		return verification.TransientOutcome("no youtube channel configured")
	}

	query := url.Values{}
	query.Set("part", "snippet")
	query.Set("mine", "true")
	query.Set("forChannelId", target.ID)
	if a.apiKey != "" {
		query.Set("key", a.apiKey)
	}

	status, body, err := a.get(ctx, "/subscriptions", query, cred.AccessToken())
	if err != nil {
		return verification.TransientOutcome(err.Error())
	}

	switch {
	case status == http.StatusOK:
		var list youtubeListResponse
		if err := json.Unmarshal(body, &list); err != nil {
			return verification.TransientOutcome(fmt.Sprintf("invalid youtube response: %v", err))
		}
		return verification.DefinitiveOutcome(len(list.Items) > 0, "")
	case status == http.StatusUnauthorized:
		return verification.NeedsAuthOutcome()
	default:
		return verification.TransientOutcome(fmt.Sprintf("youtube api returned status %d", status))
	}
}

// ResolveChannel maps a channel handle to its canonical channel ID using
// the server API key.
func (a *YouTubeAdapter) ResolveChannel(ctx context.Context, login string) (string, error) {
	query := url.Values{}
	query.Set("part", "id")
	query.Set("forHandle", login)
	query.Set("key", a.apiKey)

	status, body, err := a.get(ctx, "/channels", query, "")
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("youtube channel lookup returned status %d", status)
	}

	var list youtubeListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return "", fmt.Errorf("invalid youtube response: %w", err)
	}
	if len(list.Items) == 0 {
		return "", verification.ErrChannelNotFound
	}
	return list.Items[0].ID, nil
}

// Refresh exchanges the stored refresh token for fresh token material.
func (a *YouTubeAdapter) Refresh(ctx context.Context, cred *credential.Credential) (credential.TokenData, error) {
	source := a.config.TokenSource(ctx, &oauth2.Token{RefreshToken: cred.RefreshToken()})
	token, err := source.Token()
	if err != nil {
		return credential.TokenData{}, fmt.Errorf("failed to refresh youtube token: %w", err)
	}
	return tokenToData(token), nil
}

func (a *YouTubeAdapter) get(ctx context.Context, path string, query url.Values, accessToken string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("youtube api request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read youtube response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func tokenToData(token *oauth2.Token) credential.TokenData {
	data := credential.TokenData{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
	}
	if !token.Expiry.IsZero() {
		data.ExpiresIn = int64(time.Until(token.Expiry).Seconds())
	}
	return data
}
