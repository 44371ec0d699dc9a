package usecases

import (
	"context"
	"fmt"

	policydto "github.com/fangate-io/fangate/internal/application/policy/dto"
	"github.com/fangate-io/fangate/internal/domain/policy"
	"github.com/fangate-io/fangate/internal/shared/logger"
)

// ListPoliciesUseCase lists every configured community.
type ListPoliciesUseCase struct {
	policyRepo policy.Repository
	logger     logger.Interface
}

// NewListPoliciesUseCase creates a new list policies use case
func NewListPoliciesUseCase(policyRepo policy.Repository, logger logger.Interface) *ListPoliciesUseCase {
	return &ListPoliciesUseCase{
		policyRepo: policyRepo,
		logger:     logger,
	}
}

// Execute returns all configured policies.
func (uc *ListPoliciesUseCase) Execute(ctx context.Context) ([]*policydto.PolicyResponse, error) {
	policies, err := uc.policyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}

	responses := make([]*policydto.PolicyResponse, 0, len(policies))
	for _, p := range policies {
		responses = append(responses, PolicyToResponse(p))
	}
	return responses, nil
}
