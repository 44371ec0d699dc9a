package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEntitlementUseCase_Apply(t *testing.T) {
	t.Run("grants the role when not held", func(t *testing.T) {
		granted := false
		mutator := &mockRoleMutator{
			HasRoleFunc: func(ctx context.Context, communityID, memberID, roleID string) (bool, error) {
				return false, nil
			},
			GrantRoleFunc: func(ctx context.Context, communityID, memberID, roleID string) error {
				granted = true
				assert.Equal(t, "community-1", communityID)
				assert.Equal(t, "member-1", memberID)
				assert.Equal(t, "role-verified", roleID)
				return nil
			},
		}

		uc := NewApplyEntitlementUseCase(mutator, &mockLogger{})
		applied, err := uc.Apply(context.Background(), "community-1", "member-1", "role-verified")

		require.NoError(t, err)
		assert.True(t, applied)
		assert.True(t, granted)
	})

	t.Run("skips the grant when the role is already held", func(t *testing.T) {
		granted := false
		mutator := &mockRoleMutator{
			HasRoleFunc: func(ctx context.Context, communityID, memberID, roleID string) (bool, error) {
				return true, nil
			},
			GrantRoleFunc: func(ctx context.Context, communityID, memberID, roleID string) error {
				granted = true
				return nil
			},
		}

		uc := NewApplyEntitlementUseCase(mutator, &mockLogger{})
		applied, err := uc.Apply(context.Background(), "community-1", "member-1", "role-verified")

		require.NoError(t, err)
		assert.False(t, applied)
		assert.False(t, granted)
	})

	t.Run("propagates role check failures", func(t *testing.T) {
		mutator := &mockRoleMutator{
			HasRoleFunc: func(ctx context.Context, communityID, memberID, roleID string) (bool, error) {
				return false, assert.AnError
			},
		}

		uc := NewApplyEntitlementUseCase(mutator, &mockLogger{})
		applied, err := uc.Apply(context.Background(), "community-1", "member-1", "role-verified")

		require.Error(t, err)
		assert.False(t, applied)
	})

	t.Run("propagates grant failures", func(t *testing.T) {
		mutator := &mockRoleMutator{
			GrantRoleFunc: func(ctx context.Context, communityID, memberID, roleID string) error {
				return assert.AnError
			},
		}

		uc := NewApplyEntitlementUseCase(mutator, &mockLogger{})
		applied, err := uc.Apply(context.Background(), "community-1", "member-1", "role-verified")

		require.Error(t, err)
		assert.False(t, applied)
	})
}
