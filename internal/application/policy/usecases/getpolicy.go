package usecases

import (
	"context"
	"fmt"

	policydto "github.com/fangate-io/fangate/internal/application/policy/dto"
	"github.com/fangate-io/fangate/internal/domain/policy"
	"github.com/fangate-io/fangate/internal/shared/errors"
	"github.com/fangate-io/fangate/internal/shared/logger"
)

// GetPolicyUseCase reads one community's policy.
type GetPolicyUseCase struct {
	policyRepo policy.Repository
	logger     logger.Interface
}

// NewGetPolicyUseCase creates a new get policy use case
func NewGetPolicyUseCase(policyRepo policy.Repository, logger logger.Interface) *GetPolicyUseCase {
	return &GetPolicyUseCase{
		policyRepo: policyRepo,
		logger:     logger,
	}
}

// Execute returns the policy for a community.
func (uc *GetPolicyUseCase) Execute(ctx context.Context, communityID string) (*policydto.PolicyResponse, error) {
	if communityID == "" {
		return nil, errors.NewValidationError("community ID is required")
	}

	p, err := uc.policyRepo.FindByCommunityID(ctx, communityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}
	if p == nil {
		return nil, errors.NewUnconfiguredError(communityID)
	}

	return PolicyToResponse(p), nil
}
