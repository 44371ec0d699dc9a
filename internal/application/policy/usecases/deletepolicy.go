package usecases

import (
	"context"
	"fmt"

	policydto "github.com/fangate-io/fangate/internal/application/policy/dto"
	"github.com/fangate-io/fangate/internal/domain/policy"
	"github.com/fangate-io/fangate/internal/shared/errors"
	"github.com/fangate-io/fangate/internal/shared/logger"
)

// DeletePolicyUseCase removes a community policy.
type DeletePolicyUseCase struct {
	policyRepo policy.Repository
	logger     logger.Interface
}

// NewDeletePolicyUseCase creates a new delete policy use case
func NewDeletePolicyUseCase(policyRepo policy.Repository, logger logger.Interface) *DeletePolicyUseCase {
	return &DeletePolicyUseCase{
		policyRepo: policyRepo,
		logger:     logger,
	}
}

// Execute removes the community's policy after checking the actor may
// configure the community.
func (uc *DeletePolicyUseCase) Execute(ctx context.Context, request policydto.DeletePolicyRequest) error {
	if request.CommunityID == "" {
		return errors.NewValidationError("community ID is required")
	}

	existing, err := uc.policyRepo.FindByCommunityID(ctx, request.CommunityID)
	if err != nil {
		return fmt.Errorf("failed to load policy: %w", err)
	}
	if existing == nil {
		return errors.NewUnconfiguredError(request.CommunityID)
	}

	if !request.Actor.CanConfigure(existing.AdminRoleID()) {
		uc.logger.Warnw("policy delete rejected, insufficient permissions",
			"community_id", request.CommunityID,
		)
		return errors.NewForbiddenError("not allowed to configure this community")
	}

	if err := uc.policyRepo.Delete(ctx, request.CommunityID); err != nil {
		uc.logger.Errorw("failed to delete policy", "community_id", request.CommunityID, "error", err)
		return fmt.Errorf("failed to delete policy: %w", err)
	}

	uc.logger.Infow("policy deleted", "community_id", request.CommunityID)
	return nil
}
