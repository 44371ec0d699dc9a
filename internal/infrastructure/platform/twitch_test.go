package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fangate-io/fangate/internal/domain/credential"
	"github.com/fangate-io/fangate/internal/domain/verification"
	sharedConfig "github.com/fangate-io/fangate/internal/shared/config"
)

func newTestTwitchAdapter(serverURL string) *TwitchAdapter {
	adapter := NewTwitchAdapter(sharedConfig.TwitchOAuthConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost/callback",
	})
	adapter.baseURL = serverURL
	return adapter
}

func twitchCredential() *credential.Credential {
	return credential.NewCredential(1, credential.PlatformTwitch, credential.TokenData{
		AccessToken: "access-token",
	})
}

// helixServer answers the viewer lookup on /users and delegates everything
// else to the handler.
func helixServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "client-id", r.Header.Get("Client-Id"))
		if r.URL.Path == "/users" && r.URL.Query().Get("login") == "" {
			w.Write([]byte(`{"data":[{"id":"viewer-1","login":"viewer","display_name":"Viewer"}]}`))
			return
		}
		handler(w, r)
	}))
}

func TestTwitchAdapter_CheckFollow(t *testing.T) {
	target := verification.ChannelTarget{ID: "12345", Login: "streamer"}

	t.Run("follow found is definitively met", func(t *testing.T) {
		server := helixServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/channels/followers", r.URL.Path)
			assert.Equal(t, "12345", r.URL.Query().Get("broadcaster_id"))
			assert.Equal(t, "viewer-1", r.URL.Query().Get("user_id"))
			w.Write([]byte(`{"total":1,"data":[{"user_id":"viewer-1","followed_at":"2026-01-01T00:00:00Z"}]}`))
		})
		defer server.Close()

		adapter := newTestTwitchAdapter(server.URL)
		outcome := adapter.Check(context.Background(), verification.KindTwitchFollow, twitchCredential(), target)

		assert.True(t, outcome.Definitive)
		assert.True(t, outcome.Met)
	})

	t.Run("empty follower list is definitively not met", func(t *testing.T) {
		server := helixServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"total":0,"data":[]}`))
		})
		defer server.Close()

		adapter := newTestTwitchAdapter(server.URL)
		outcome := adapter.Check(context.Background(), verification.KindTwitchFollow, twitchCredential(), target)

		assert.True(t, outcome.Definitive)
		assert.False(t, outcome.Met)
	})

	t.Run("rejected credential on viewer lookup is needs-auth", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		adapter := newTestTwitchAdapter(server.URL)
		outcome := adapter.Check(context.Background(), verification.KindTwitchFollow, twitchCredential(), target)

		assert.True(t, outcome.NeedsAuth)
	})

	t.Run("5xx is a transient failure", func(t *testing.T) {
		server := helixServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		defer server.Close()

		adapter := newTestTwitchAdapter(server.URL)
		outcome := adapter.Check(context.Background(), verification.KindTwitchFollow, twitchCredential(), target)

		assert.False(t, outcome.Definitive)
		assert.False(t, outcome.NeedsAuth)
		assert.NotEmpty(t, outcome.Err)
	})
}

func TestTwitchAdapter_CheckSubscription(t *testing.T) {
	target := verification.ChannelTarget{ID: "12345", Login: "streamer"}

	t.Run("subscription carries the tier", func(t *testing.T) {
		server := helixServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/subscriptions/user", r.URL.Path)
			w.Write([]byte(`{"data":[{"broadcaster_id":"12345","tier":"2000","is_gift":false}]}`))
		})
		defer server.Close()

		adapter := newTestTwitchAdapter(server.URL)
		outcome := adapter.Check(context.Background(), verification.KindTwitchSubscription, twitchCredential(), target)

		assert.True(t, outcome.Definitive)
		assert.True(t, outcome.Met)
		assert.Equal(t, "2", outcome.Tier)
	})

	t.Run("404 means not subscribed, a definitive answer", func(t *testing.T) {
		server := helixServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		defer server.Close()

		adapter := newTestTwitchAdapter(server.URL)
		outcome := adapter.Check(context.Background(), verification.KindTwitchSubscription, twitchCredential(), target)

		assert.True(t, outcome.Definitive)
		assert.False(t, outcome.Met)
		assert.Empty(t, outcome.Err)
	})

	t.Run("401 on the subscription endpoint is needs-auth", func(t *testing.T) {
		server := helixServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		defer server.Close()

		adapter := newTestTwitchAdapter(server.URL)
		outcome := adapter.Check(context.Background(), verification.KindTwitchSubscription, twitchCredential(), target)

		assert.True(t, outcome.NeedsAuth)
	})
}

func TestTwitchAdapter_Supports(t *testing.T) {
	adapter := newTestTwitchAdapter("http://localhost")

	assert.True(t, adapter.Supports(verification.KindTwitchFollow))
	assert.True(t, adapter.Supports(verification.KindTwitchSubscription))
	assert.False(t, adapter.Supports(verification.KindYouTubeSubscription))
}

func TestTwitchAdapter_ResolveChannel(t *testing.T) {
	t.Run("resolves a login with an app token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/oauth2/token" {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"access_token":"app-token","token_type":"bearer","expires_in":3600}`))
				return
			}
			assert.Equal(t, "/users", r.URL.Path)
			assert.Equal(t, "streamer", r.URL.Query().Get("login"))
			assert.Equal(t, "Bearer app-token", r.Header.Get("Authorization"))
			w.Write([]byte(`{"data":[{"id":"12345","login":"streamer","display_name":"Streamer"}]}`))
		}))
		defer server.Close()

		adapter := newTestTwitchAdapter(server.URL)
		adapter.appTokens.TokenURL = server.URL + "/oauth2/token"

		broadcasterID, err := adapter.ResolveChannel(context.Background(), "streamer")
		require.NoError(t, err)
		assert.Equal(t, "12345", broadcasterID)
	})

	t.Run("unknown login returns ErrChannelNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/oauth2/token" {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"access_token":"app-token","token_type":"bearer","expires_in":3600}`))
				return
			}
			w.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		adapter := newTestTwitchAdapter(server.URL)
		adapter.appTokens.TokenURL = server.URL + "/oauth2/token"

		_, err := adapter.ResolveChannel(context.Background(), "ghost")
		assert.ErrorIs(t, err, verification.ErrChannelNotFound)
	})
}

func TestSubscriptionTier(t *testing.T) {
	assert.Equal(t, "1", subscriptionTier("1000"))
	assert.Equal(t, "2", subscriptionTier("2000"))
	assert.Equal(t, "3", subscriptionTier("3000"))
	assert.Equal(t, "", subscriptionTier("9000"))
	assert.Equal(t, "", subscriptionTier(""))
}
