package usecases

import (
	"context"
	"fmt"

	verificationdto "github.com/fangate-io/fangate/internal/application/verification/dto"
	"github.com/fangate-io/fangate/internal/domain/user"
	"github.com/fangate-io/fangate/internal/domain/verification"
	"github.com/fangate-io/fangate/internal/shared/errors"
	"github.com/fangate-io/fangate/internal/shared/logger"
)

// GetHistoryUseCase reads a member's recent verification checks.
type GetHistoryUseCase struct {
	userRepo user.Repository
	logRepo  verification.LogRepository
	logger   logger.Interface
}

// NewGetHistoryUseCase creates a new get history use case
func NewGetHistoryUseCase(
	userRepo user.Repository,
	logRepo verification.LogRepository,
	logger logger.Interface,
) *GetHistoryUseCase {
	return &GetHistoryUseCase{
		userRepo: userRepo,
		logRepo:  logRepo,
		logger:   logger,
	}
}

// Execute returns the member's most recent checks, newest first.
func (uc *GetHistoryUseCase) Execute(ctx context.Context, memberID string, limit int) (*verificationdto.HistoryResponse, error) {
	if memberID == "" {
		return nil, errors.NewValidationError("member ID is required")
	}

	member, err := uc.userRepo.FindByMemberID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if member == nil {
		return nil, errors.NewNotFoundError("member has no verification history")
	}

	entries, err := uc.logRepo.FindByUser(ctx, member.ID(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load verification history: %w", err)
	}

	response := &verificationdto.HistoryResponse{
		MemberID: memberID,
		Entries:  make([]verificationdto.HistoryEntry, 0, len(entries)),
	}
	for _, entry := range entries {
		response.Entries = append(response.Entries, verificationdto.HistoryEntry{
			Platform:  string(entry.Platform()),
			Kind:      string(entry.Kind()),
			Result:    entry.Result(),
			Detail:    entry.Detail(),
			CheckedAt: entry.CheckedAt(),
		})
	}
	return response, nil
}
