package usecases

import (
	"context"
	"fmt"

	policydto "github.com/fangate-io/fangate/internal/application/policy/dto"
	"github.com/fangate-io/fangate/internal/domain/policy"
	"github.com/fangate-io/fangate/internal/shared/errors"
	"github.com/fangate-io/fangate/internal/shared/logger"
)

// ValidatePolicyUseCase checks a community's policy for contradictions
// without changing it.
type ValidatePolicyUseCase struct {
	policyRepo policy.Repository
	logger     logger.Interface
}

// NewValidatePolicyUseCase creates a new validate policy use case
func NewValidatePolicyUseCase(policyRepo policy.Repository, logger logger.Interface) *ValidatePolicyUseCase {
	return &ValidatePolicyUseCase{
		policyRepo: policyRepo,
		logger:     logger,
	}
}

// Execute returns the validation report for a community's policy.
func (uc *ValidatePolicyUseCase) Execute(ctx context.Context, communityID string) (*policydto.ValidatePolicyResponse, error) {
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

	report := p.Validate()
	return &policydto.ValidatePolicyResponse{
		CommunityID: communityID,
		Valid:       report.Valid,
		Errors:      report.Errors,
		Warnings:    report.Warnings,
	}, nil
}
