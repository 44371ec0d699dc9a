package usecases

import (
	"context"
	"fmt"

	"github.com/fangate-io/fangate/internal/application/link/dto"
	"github.com/fangate-io/fangate/internal/domain/credential"
	"github.com/fangate-io/fangate/internal/domain/user"
	"github.com/fangate-io/fangate/internal/shared/biztime"
	"github.com/fangate-io/fangate/internal/shared/errors"
	"github.com/fangate-io/fangate/internal/shared/logger"
)

// allPlatforms is the reporting order for link status.
var allPlatforms = []credential.Platform{credential.PlatformYouTube, credential.PlatformTwitch}

// GetLinkStatusUseCase reports which platforms a member has linked.
type GetLinkStatusUseCase struct {
	userRepo       user.Repository
	credentialRepo credential.Repository
	logger         logger.Interface
}

// NewGetLinkStatusUseCase creates a new get link status use case
func NewGetLinkStatusUseCase(
	userRepo user.Repository,
	credentialRepo credential.Repository,
	logger logger.Interface,
) *GetLinkStatusUseCase {
	return &GetLinkStatusUseCase{
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		logger:         logger,
	}
}

// Execute returns the per-platform link status for a member. An unknown
// member is reported as fully unlinked rather than an error.
func (uc *GetLinkStatusUseCase) Execute(ctx context.Context, memberID string) (*dto.LinkStatusResponse, error) {
	if memberID == "" {
		return nil, errors.NewValidationError("member ID is required")
	}

	response := &dto.LinkStatusResponse{
		MemberID:  memberID,
		Platforms: make([]dto.PlatformLinkStatus, 0, len(allPlatforms)),
	}

	member, err := uc.userRepo.FindByMemberID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if member == nil {
		for _, platform := range allPlatforms {
			response.Platforms = append(response.Platforms, dto.PlatformLinkStatus{Platform: string(platform)})
		}
		return response, nil
	}

	now := biztime.NowUTC()
	for _, platform := range allPlatforms {
		cred, err := uc.credentialRepo.FindByUserAndPlatform(ctx, member.ID(), platform)
		if err != nil {
			return nil, fmt.Errorf("failed to find credential: %w", err)
		}

		status := dto.PlatformLinkStatus{Platform: string(platform)}
		if cred != nil {
			status.Linked = true
			status.Expired = cred.IsExpired(now)
			status.ExpiresAt = cred.ExpiresAt()
		}
		response.Platforms = append(response.Platforms, status)
	}

	return response, nil
}
