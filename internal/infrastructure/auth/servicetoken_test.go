package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceTokenManager(t *testing.T) {
	manager := NewServiceTokenManager("test-secret", time.Hour)

	t.Run("round-trips the service name", func(t *testing.T) {
		signed, err := manager.Generate("chat-bot")
		require.NoError(t, err)
		require.NotEmpty(t, signed)

		serviceName, err := manager.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, "chat-bot", serviceName)
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		other := NewServiceTokenManager("other-secret", time.Hour)
		signed, err := other.Generate("chat-bot")
		require.NoError(t, err)

		_, err = manager.Verify(signed)
		assert.Error(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := NewServiceTokenManager("test-secret", -time.Hour)
		signed, err := expired.Generate("chat-bot")
		require.NoError(t, err)

		_, err = manager.Verify(signed)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := manager.Verify("not-a-token")
		assert.Error(t, err)
	})
}
