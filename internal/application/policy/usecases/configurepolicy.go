// Package usecases implements community policy management: configuring,
// reading, listing, validating, and deleting per-community policies.
package usecases

import (
	"context"
	"fmt"

	policydto "github.com/fangate-io/fangate/internal/application/policy/dto"
	"github.com/fangate-io/fangate/internal/domain/policy"
	"github.com/fangate-io/fangate/internal/shared/errors"
	"github.com/fangate-io/fangate/internal/shared/logger"
)

// ChannelResolver maps a channel login name to the platform's canonical
// channel ID.
type ChannelResolver interface {
	ResolveChannel(ctx context.Context, login string) (string, error)
}

// ConfigurePolicyUseCase creates or updates a community policy.
type ConfigurePolicyUseCase struct {
	policyRepo     policy.Repository
	twitchResolver ChannelResolver
	logger         logger.Interface
}

// NewConfigurePolicyUseCase creates a new configure policy use case
func NewConfigurePolicyUseCase(
	policyRepo policy.Repository,
	twitchResolver ChannelResolver,
	logger logger.Interface,
) *ConfigurePolicyUseCase {
	return &ConfigurePolicyUseCase{
		policyRepo:     policyRepo,
		twitchResolver: twitchResolver,
		logger:         logger,
	}
}

// Execute applies the requested changes. A first configure creates the
// policy with default requirements; later configures only touch the fields
// the request carries.
func (uc *ConfigurePolicyUseCase) Execute(ctx context.Context, request policydto.ConfigurePolicyRequest) (*policydto.PolicyResponse, error) {
	if request.CommunityID == "" {
		return nil, errors.NewValidationError("community ID is required")
	}

	existing, err := uc.policyRepo.FindByCommunityID(ctx, request.CommunityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	adminRoleID := ""
	if existing != nil {
		adminRoleID = existing.AdminRoleID()
	}
	if !request.Actor.CanConfigure(adminRoleID) {
		uc.logger.Warnw("policy change rejected, insufficient permissions",
			"community_id", request.CommunityID,
		)
		return nil, errors.NewForbiddenError("not allowed to configure this community")
	}

	target := existing
	if target == nil {
		target = policy.NewPolicy(request.CommunityID, request.CommunityName)
	} else if request.CommunityName != "" {
		target.SetCommunityName(request.CommunityName)
	}

	applyChanges(target, request)

	if target.TwitchChannelLogin() != "" && target.TwitchChannelID() == "" {
		uc.resolveTwitchChannel(ctx, target)
	}

	if err := uc.policyRepo.Save(ctx, target); err != nil {
		uc.logger.Errorw("failed to save policy", "community_id", request.CommunityID, "error", err)
		return nil, fmt.Errorf("failed to save policy: %w", err)
	}

	uc.logger.Infow("policy configured",
		"community_id", request.CommunityID,
		"created", existing == nil,
	)

	return PolicyToResponse(target), nil
}

func applyChanges(target *policy.Policy, request policydto.ConfigurePolicyRequest) {
	if request.YouTubeChannelID != nil {
		target.SetYouTubeChannel(*request.YouTubeChannelID)
	}
	if request.TwitchChannelLogin != nil {
		target.SetTwitchChannel(*request.TwitchChannelLogin)
	}

	requirements := target.Requirements()
	if request.RequireYouTubeSub != nil {
		requirements.YouTubeSubscription = *request.RequireYouTubeSub
	}
	if request.RequireTwitchFollow != nil {
		requirements.TwitchFollow = *request.RequireTwitchFollow
	}
	if request.RequireTwitchSub != nil {
		requirements.TwitchSubscription = *request.RequireTwitchSub
	}
	target.SetRequirements(requirements)

	if request.AutoAssignRole != nil {
		target.SetAutoAssignRole(*request.AutoAssignRole)
	}
	if request.VerifiedRoleID != nil {
		target.SetVerifiedRoleID(*request.VerifiedRoleID)
	}
	if request.AdminRoleID != nil {
		target.SetAdminRoleID(*request.AdminRoleID)
	}
}

// resolveTwitchChannel caches the broadcaster ID for the configured login.
// Resolution failure is not fatal: verification resolves lazily later.
func (uc *ConfigurePolicyUseCase) resolveTwitchChannel(ctx context.Context, target *policy.Policy) {
	if uc.twitchResolver == nil {
		return
	}

	broadcasterID, err := uc.twitchResolver.ResolveChannel(ctx, target.TwitchChannelLogin())
	if err != nil {
		uc.logger.Warnw("twitch channel resolution failed",
			"login", target.TwitchChannelLogin(),
			"error", err,
		)
		return
	}
	target.CacheTwitchChannelID(broadcasterID)
}

// PolicyToResponse maps a policy entity to its transport representation.
func PolicyToResponse(p *policy.Policy) *policydto.PolicyResponse {
	return &policydto.PolicyResponse{
		CommunityID:         p.CommunityID(),
		CommunityName:       p.CommunityName(),
		YouTubeChannelID:    p.YouTubeChannelID(),
		TwitchChannelLogin:  p.TwitchChannelLogin(),
		TwitchChannelID:     p.TwitchChannelID(),
		RequireYouTubeSub:   p.Requirements().YouTubeSubscription,
		RequireTwitchFollow: p.Requirements().TwitchFollow,
		RequireTwitchSub:    p.Requirements().TwitchSubscription,
		AutoAssignRole:      p.AutoAssignRole(),
		VerifiedRoleID:      p.VerifiedRoleID(),
		AdminRoleID:         p.AdminRoleID(),
		CreatedAt:           p.CreatedAt(),
		UpdatedAt:           p.UpdatedAt(),
	}
}
