package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fangate-io/fangate/internal/domain/credential"
	"github.com/fangate-io/fangate/internal/domain/verification"
	"github.com/fangate-io/fangate/internal/shared/biztime"
)

func TestVerificationLogRepository_Append(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVerificationLogRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "member-log")

	t.Run("stores the entry with its detail", func(t *testing.T) {
		entry := verification.NewLogEntry(u.ID(), verification.KindTwitchSubscription, "subscribed_tier_2", map[string]interface{}{
			"channel_id": "12345",
			"tier":       "2",
		})

		err := repo.Append(ctx, entry)
		require.NoError(t, err)
		assert.NotZero(t, entry.ID())

		entries, err := repo.FindByUser(ctx, u.ID(), 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, verification.KindTwitchSubscription, entries[0].Kind())
		assert.Equal(t, credential.PlatformTwitch, entries[0].Platform())
		assert.Equal(t, "subscribed_tier_2", entries[0].Result())
		assert.Equal(t, "2", entries[0].Detail()["tier"])
	})

	t.Run("entry without detail round-trips", func(t *testing.T) {
		entry := verification.NewLogEntry(u.ID(), verification.KindTwitchFollow, "followed", nil)
		require.NoError(t, repo.Append(ctx, entry))

		entries, err := repo.FindByUser(ctx, u.ID(), 10)
		require.NoError(t, err)
		require.NotEmpty(t, entries)
	})
}

func TestVerificationLogRepository_FindByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVerificationLogRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "member-history")
	base := biztime.NowUTC().Add(-time.Hour)

	for i := 0; i < 5; i++ {
		entry := verification.ReconstructLogEntry(
			0, u.ID(),
			credential.PlatformTwitch, verification.KindTwitchFollow,
			fmt.Sprintf("result-%d", i), nil,
			base.Add(time.Duration(i)*time.Minute),
		)
		require.NoError(t, repo.Append(ctx, entry))
	}

	t.Run("newest first", func(t *testing.T) {
		entries, err := repo.FindByUser(ctx, u.ID(), 10)
		require.NoError(t, err)
		require.Len(t, entries, 5)
		assert.Equal(t, "result-4", entries[0].Result())
		assert.Equal(t, "result-0", entries[4].Result())
	})

	t.Run("honors the limit", func(t *testing.T) {
		entries, err := repo.FindByUser(ctx, u.ID(), 2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "result-4", entries[0].Result())
	})

	t.Run("zero limit falls back to the default", func(t *testing.T) {
		entries, err := repo.FindByUser(ctx, u.ID(), 0)
		require.NoError(t, err)
		assert.Len(t, entries, 5)
	})

	t.Run("unknown user has no history", func(t *testing.T) {
		entries, err := repo.FindByUser(ctx, 999, 10)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
