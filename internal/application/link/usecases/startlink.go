// Package usecases implements the account link flow: starting an OAuth
// authorization, completing it from the redirect, reporting link status,
// and disconnecting.
package usecases

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/fangate-io/fangate/internal/application/link/dto"
	"github.com/fangate-io/fangate/internal/domain/credential"
	"github.com/fangate-io/fangate/internal/shared/errors"
	"github.com/fangate-io/fangate/internal/shared/logger"
)

// OAuthProvider abstracts the per-platform OAuth client.
type OAuthProvider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (credential.TokenData, error)
}

// LinkStateStore stores the chat identity behind an in-flight authorization.
type LinkStateStore interface {
	Set(ctx context.Context, state, memberID, displayName, platform string) error
}

// StartLinkUseCase begins an OAuth link for a chat member.
type StartLinkUseCase struct {
	providers  map[credential.Platform]OAuthProvider
	stateStore LinkStateStore
	stateTTL   time.Duration
	logger     logger.Interface
}

// NewStartLinkUseCase creates a new start link use case
func NewStartLinkUseCase(
	providers map[credential.Platform]OAuthProvider,
	stateStore LinkStateStore,
	stateTTL time.Duration,
	logger logger.Interface,
) *StartLinkUseCase {
	return &StartLinkUseCase{
		providers:  providers,
		stateStore: stateStore,
		stateTTL:   stateTTL,
		logger:     logger,
	}
}

// Execute generates the state value, records the pending link, and returns
// the authorization URL to send the member to.
func (uc *StartLinkUseCase) Execute(ctx context.Context, request dto.StartLinkRequest) (*dto.StartLinkResponse, error) {
	if request.MemberID == "" {
		return nil, errors.NewValidationError("member ID is required")
	}

	platform, err := credential.ParsePlatform(request.Platform)
	if err != nil {
		uc.logger.Warnw("invalid platform in start link request", "platform", request.Platform)
		return nil, err
	}

	provider, ok := uc.providers[platform]
	if !ok {
		return nil, errors.NewValidationError(fmt.Sprintf("platform %s is not configured", platform))
	}

	state, err := generateState()
	if err != nil {
		uc.logger.Errorw("failed to generate link state", "error", err)
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}

	if err := uc.stateStore.Set(ctx, state, request.MemberID, request.DisplayName, string(platform)); err != nil {
		uc.logger.Errorw("failed to store link state", "error", err)
		return nil, fmt.Errorf("failed to store link state: %w", err)
	}

	uc.logger.Infow("link started",
		"member_id", request.MemberID,
		"platform", platform,
	)

	return &dto.StartLinkResponse{
		AuthURL:          provider.AuthURL(state),
		ExpiresInSeconds: int(uc.stateTTL.Seconds()),
	}, nil
}

// generateState produces an unguessable state value for the OAuth redirect.
func generateState() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
