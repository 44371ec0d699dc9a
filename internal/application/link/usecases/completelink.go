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

// LinkStateConsumer consumes a state value and returns the pending link
// identity. Consumption is one-time: a second call with the same state fails.
type LinkStateConsumer interface {
	VerifyAndGet(ctx context.Context, state string) (memberID, displayName, platform string, err error)
}

// CompleteLinkUseCase finishes an OAuth link from the provider redirect.
type CompleteLinkUseCase struct {
	stateStore     LinkStateConsumer
	providers      map[credential.Platform]OAuthProvider
	userRepo       user.Repository
	credentialRepo credential.Repository
	logger         logger.Interface
}

// NewCompleteLinkUseCase creates a new complete link use case
func NewCompleteLinkUseCase(
	stateStore LinkStateConsumer,
	providers map[credential.Platform]OAuthProvider,
	userRepo user.Repository,
	credentialRepo credential.Repository,
	logger logger.Interface,
) *CompleteLinkUseCase {
	return &CompleteLinkUseCase{
		stateStore:     stateStore,
		providers:      providers,
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		logger:         logger,
	}
}

// Execute validates the state, exchanges the authorization code, and stores
// the credential. Re-linking a platform replaces the previous credential.
func (uc *CompleteLinkUseCase) Execute(ctx context.Context, request dto.CompleteLinkRequest) (*dto.CompleteLinkResponse, error) {
	if request.State == "" {
		return nil, errors.NewValidationError("state is required")
	}
	if request.Code == "" {
		return nil, errors.NewValidationError("code is required")
	}

	memberID, displayName, platformName, err := uc.stateStore.VerifyAndGet(ctx, request.State)
	if err != nil {
		uc.logger.Warnw("link state rejected", "error", err)
		return nil, errors.NewUnauthorizedError("invalid or expired link state")
	}

	platform, err := credential.ParsePlatform(platformName)
	if err != nil {
		return nil, err
	}

	provider, ok := uc.providers[platform]
	if !ok {
		return nil, errors.NewValidationError(fmt.Sprintf("platform %s is not configured", platform))
	}

	tokenData, err := provider.Exchange(ctx, request.Code)
	if err != nil {
		uc.logger.Errorw("code exchange failed",
			"member_id", memberID,
			"platform", platform,
			"error", err,
		)
		return nil, errors.NewUnauthorizedError("authorization code exchange failed")
	}

	member := user.NewUser(memberID, displayName)
	if err := uc.userRepo.Upsert(ctx, member); err != nil {
		uc.logger.Errorw("failed to upsert user", "member_id", memberID, "error", err)
		return nil, fmt.Errorf("failed to store user: %w", err)
	}

	cred := credential.NewCredential(member.ID(), platform, tokenData)
	if err := uc.credentialRepo.Save(ctx, cred); err != nil {
		uc.logger.Errorw("failed to save credential",
			"member_id", memberID,
			"platform", platform,
			"error", err,
		)
		return nil, fmt.Errorf("failed to store credential: %w", err)
	}

	uc.logger.Infow("link completed",
		"member_id", memberID,
		"platform", platform,
	)

	return &dto.CompleteLinkResponse{
		MemberID:    memberID,
		DisplayName: displayName,
		Platform:    string(platform),
		ExpiresAt:   cred.ExpiresAt(),
	}, nil
}
