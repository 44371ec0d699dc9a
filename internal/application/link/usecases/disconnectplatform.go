package usecases

import (
	"context"
	"fmt"

	"github.com/fangate-io/fangate/internal/application/link/dto"
	"github.com/fangate-io/fangate/internal/domain/credential"
	"github.com/fangate-io/fangate/internal/domain/user"
	"github.com/fangate-io/fangate/internal/shared/errors"
	"github.com/fangate-io/fangate/internal/shared/logger"
)

// DisconnectPlatformUseCase removes a member's linked credentials.
type DisconnectPlatformUseCase struct {
	userRepo       user.Repository
	credentialRepo credential.Repository
	logger         logger.Interface
}

// NewDisconnectPlatformUseCase creates a new disconnect platform use case
func NewDisconnectPlatformUseCase(
	userRepo user.Repository,
	credentialRepo credential.Repository,
	logger logger.Interface,
) *DisconnectPlatformUseCase {
	return &DisconnectPlatformUseCase{
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		logger:         logger,
	}
}

// Execute removes the credential for one platform, or every credential when
// no platform is given.
func (uc *DisconnectPlatformUseCase) Execute(ctx context.Context, request dto.DisconnectRequest) error {
	if request.MemberID == "" {
		return errors.NewValidationError("member ID is required")
	}

	member, err := uc.userRepo.FindByMemberID(ctx, request.MemberID)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}
	if member == nil {
		return errors.NewNotFoundError("member has no linked accounts")
	}

	if request.Platform == "" {
		if err := uc.credentialRepo.DeleteAllForUser(ctx, member.ID()); err != nil {
			uc.logger.Errorw("failed to delete credentials", "member_id", request.MemberID, "error", err)
			return fmt.Errorf("failed to delete credentials: %w", err)
		}
		uc.logger.Infow("all platforms disconnected", "member_id", request.MemberID)
		return nil
	}

	platform, err := credential.ParsePlatform(request.Platform)
	if err != nil {
		return err
	}

	if err := uc.credentialRepo.Delete(ctx, member.ID(), platform); err != nil {
		uc.logger.Errorw("failed to delete credential",
			"member_id", request.MemberID,
			"platform", platform,
			"error", err,
		)
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	uc.logger.Infow("platform disconnected",
		"member_id", request.MemberID,
		"platform", platform,
	)
	return nil
}
