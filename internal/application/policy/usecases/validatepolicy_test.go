package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fangate-io/fangate/internal/domain/policy"
	"github.com/fangate-io/fangate/internal/shared/biztime"
	"github.com/fangate-io/fangate/internal/shared/errors"
)

func TestValidatePolicyUseCase_Execute(t *testing.T) {
	t.Run("consistent policy is valid", func(t *testing.T) {
		policyRepo := &mockPolicyRepository{
			FindByCommunityIDFunc: func(ctx context.Context, communityID string) (*policy.Policy, error) {
				return existingPolicy(), nil
			},
		}

		uc := NewValidatePolicyUseCase(policyRepo, &mockLogger{})
		response, err := uc.Execute(context.Background(), "community-1")

		require.NoError(t, err)
		assert.True(t, response.Valid)
		assert.Empty(t, response.Errors)
	})

	t.Run("required check without a channel is an error", func(t *testing.T) {
		now := biztime.NowUTC()
		broken := policy.ReconstructPolicy(
			1, "community-1", "Test Community",
			"", "", "",
			policy.Requirements{YouTubeSubscription: true, TwitchFollow: true},
			true,
			"role-verified", "",
			now, now,
		)
		policyRepo := &mockPolicyRepository{
			FindByCommunityIDFunc: func(ctx context.Context, communityID string) (*policy.Policy, error) {
				return broken, nil
			},
		}

		uc := NewValidatePolicyUseCase(policyRepo, &mockLogger{})
		response, err := uc.Execute(context.Background(), "community-1")

		require.NoError(t, err)
		assert.False(t, response.Valid)
		assert.Len(t, response.Errors, 2)
	})

	t.Run("unconfigured community is a not found error", func(t *testing.T) {
		uc := NewValidatePolicyUseCase(&mockPolicyRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), "community-1")

		assert.True(t, errors.IsNotFoundError(err))
	})
}
