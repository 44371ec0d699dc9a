// Package usecases implements member verification: the fan-out orchestrator,
// the idempotent role applier, and the check history reader.
package usecases

import (
	"context"
	"fmt"

	"github.com/fangate-io/fangate/internal/shared/logger"
)

// RoleMutator abstracts the chat platform's role operations. The engine
// only ever grants; revocation is intentionally out of its reach.
type RoleMutator interface {
	HasRole(ctx context.Context, communityID, memberID, roleID string) (bool, error)
	GrantRole(ctx context.Context, communityID, memberID, roleID string) error
}

// ApplyEntitlementUseCase grants the verified role. Applying is idempotent:
// a member who already holds the role is left untouched.
type ApplyEntitlementUseCase struct {
	roleMutator RoleMutator
	logger      logger.Interface
}

// NewApplyEntitlementUseCase creates a new apply entitlement use case
func NewApplyEntitlementUseCase(roleMutator RoleMutator, logger logger.Interface) *ApplyEntitlementUseCase {
	return &ApplyEntitlementUseCase{
		roleMutator: roleMutator,
		logger:      logger,
	}
}

// Apply grants the role unless the member already holds it. Returns whether
// a grant actually happened.
func (uc *ApplyEntitlementUseCase) Apply(ctx context.Context, communityID, memberID, roleID string) (bool, error) {
	held, err := uc.roleMutator.HasRole(ctx, communityID, memberID, roleID)
	if err != nil {
		return false, fmt.Errorf("failed to check role: %w", err)
	}
	if held {
		uc.logger.Debugw("role already held",
			"community_id", communityID,
			"member_id", memberID,
			"role_id", roleID,
		)
		return false, nil
	}

	if err := uc.roleMutator.GrantRole(ctx, communityID, memberID, roleID); err != nil {
		return false, fmt.Errorf("failed to grant role: %w", err)
	}

	uc.logger.Infow("role granted",
		"community_id", communityID,
		"member_id", memberID,
		"role_id", roleID,
	)
	return true, nil
}
