package credential

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fangate-io/fangate/internal/shared/biztime"
)

func TestNewCredential(t *testing.T) {
	t.Run("computes absolute expiry from lifetime", func(t *testing.T) {
		cred := NewCredential(1, PlatformTwitch, TokenData{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresIn:    3600,
		})

		require.NotNil(t, cred.ExpiresAt())
		assert.WithinDuration(t, biztime.NowUTC().Add(time.Hour), *cred.ExpiresAt(), time.Minute)
	})

	t.Run("no reported lifetime means no expiry", func(t *testing.T) {
		cred := NewCredential(1, PlatformYouTube, TokenData{AccessToken: "access"})

		assert.Nil(t, cred.ExpiresAt())
	})
}

func TestCredential_IsExpired(t *testing.T) {
	now := biztime.NowUTC()

	t.Run("expired when past expiry", func(t *testing.T) {
		past := now.Add(-time.Minute)
		cred := ReconstructCredential(1, 1, PlatformTwitch, "a", "r", "Bearer", "", &past, now, now)

		assert.True(t, cred.IsExpired(now))
	})

	t.Run("valid before expiry", func(t *testing.T) {
		future := now.Add(time.Minute)
		cred := ReconstructCredential(1, 1, PlatformTwitch, "a", "r", "Bearer", "", &future, now, now)

		assert.False(t, cred.IsExpired(now))
	})

	t.Run("nil expiry never expires", func(t *testing.T) {
		cred := ReconstructCredential(1, 1, PlatformTwitch, "a", "r", "Bearer", "", nil, now, now)

		assert.False(t, cred.IsExpired(now))
		assert.False(t, cred.IsExpired(now.Add(100*365*24*time.Hour)))
	})
}

func TestCredential_UpdateTokens(t *testing.T) {
	t.Run("keeps refresh token when the provider omits it", func(t *testing.T) {
		cred := NewCredential(1, PlatformTwitch, TokenData{
			AccessToken:  "old-access",
			RefreshToken: "old-refresh",
			ExpiresIn:    3600,
		})

		cred.UpdateTokens(TokenData{AccessToken: "new-access", ExpiresIn: 7200})

		assert.Equal(t, "new-access", cred.AccessToken())
		assert.Equal(t, "old-refresh", cred.RefreshToken())
	})

	t.Run("replaces refresh token when the provider rotates it", func(t *testing.T) {
		cred := NewCredential(1, PlatformTwitch, TokenData{
			AccessToken:  "old-access",
			RefreshToken: "old-refresh",
		})

		cred.UpdateTokens(TokenData{AccessToken: "new-access", RefreshToken: "new-refresh"})

		assert.Equal(t, "new-refresh", cred.RefreshToken())
	})

	t.Run("clears expiry when the new token has none", func(t *testing.T) {
		cred := NewCredential(1, PlatformTwitch, TokenData{
			AccessToken: "old-access",
			ExpiresIn:   3600,
		})
		require.NotNil(t, cred.ExpiresAt())

		cred.UpdateTokens(TokenData{AccessToken: "new-access"})

		assert.Nil(t, cred.ExpiresAt())
	})
}

func TestParsePlatform(t *testing.T) {
	for _, valid := range []string{"youtube", "twitch"} {
		platform, err := ParsePlatform(valid)
		require.NoError(t, err)
		assert.Equal(t, Platform(valid), platform)
	}

	_, err := ParsePlatform("vimeo")
	assert.Error(t, err)

	_, err = ParsePlatform("")
	assert.Error(t, err)
}
