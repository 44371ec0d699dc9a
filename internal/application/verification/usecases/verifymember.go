package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	verificationdto "github.com/fangate-io/fangate/internal/application/verification/dto"
	"github.com/fangate-io/fangate/internal/domain/credential"
	"github.com/fangate-io/fangate/internal/domain/policy"
	"github.com/fangate-io/fangate/internal/domain/user"
	"github.com/fangate-io/fangate/internal/domain/verification"
	"github.com/fangate-io/fangate/internal/shared/biztime"
	"github.com/fangate-io/fangate/internal/shared/errors"
	"github.com/fangate-io/fangate/internal/shared/logger"
)

// EntitlementApplier grants the verified role once a decision passes.
type EntitlementApplier interface {
	Apply(ctx context.Context, communityID, memberID, roleID string) (bool, error)
}

// ChannelCache caches resolved channel IDs across verification runs.
type ChannelCache interface {
	Get(ctx context.Context, platform, login string) (string, error)
	Set(ctx context.Context, platform, login, channelID string) error
}

// VerifyMemberUseCase runs every check the community's policy requires,
// fanning out to the platform adapters concurrently, and aggregates the
// outcomes into a single decision.
type VerifyMemberUseCase struct {
	policyRepo     policy.Repository
	userRepo       user.Repository
	credentialRepo credential.Repository
	logRepo        verification.LogRepository
	adapters       map[credential.Platform]verification.Adapter
	applier        EntitlementApplier
	channelCache   ChannelCache
	checkTimeout   time.Duration
	logger         logger.Interface
}

// NewVerifyMemberUseCase creates a new verify member use case
func NewVerifyMemberUseCase(
	policyRepo policy.Repository,
	userRepo user.Repository,
	credentialRepo credential.Repository,
	logRepo verification.LogRepository,
	adapters map[credential.Platform]verification.Adapter,
	applier EntitlementApplier,
	channelCache ChannelCache,
	checkTimeout time.Duration,
	logger logger.Interface,
) *VerifyMemberUseCase {
	return &VerifyMemberUseCase{
		policyRepo:     policyRepo,
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		logRepo:        logRepo,
		adapters:       adapters,
		applier:        applier,
		channelCache:   channelCache,
		checkTimeout:   checkTimeout,
		logger:         logger,
	}
}

// plannedCheck is one required check with everything the fan-out needs.
type plannedCheck struct {
	kind    verification.Kind
	adapter verification.Adapter
	cred    *credential.Credential
	target  verification.ChannelTarget

	// outcome set without invoking the adapter, e.g. missing credential
	pre *verification.CheckOutcome
}

// Execute runs the verification. Checks run concurrently with a bounded
// per-check timeout; a missing credential short-circuits that check to
// needs-auth without touching the platform. Exactly one log entry is
// written per adapter invocation.
func (uc *VerifyMemberUseCase) Execute(ctx context.Context, request verificationdto.VerifyMemberRequest) (*verificationdto.VerifyMemberResponse, error) {
	if request.CommunityID == "" {
		return nil, errors.NewValidationError("community ID is required")
	}
	if request.MemberID == "" {
		return nil, errors.NewValidationError("member ID is required")
	}

	communityPolicy, err := uc.policyRepo.FindByCommunityID(ctx, request.CommunityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}
	if communityPolicy == nil {
		return nil, errors.NewUnconfiguredError(request.CommunityID)
	}

	member, err := uc.userRepo.FindByMemberID(ctx, request.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if member == nil {
		return nil, errors.NewUnauthenticatedError(request.MemberID)
	}

	planned, err := uc.plan(ctx, communityPolicy, member)
	if err != nil {
		return nil, err
	}

	results := uc.runChecks(ctx, planned)
	uc.appendLogs(ctx, member.ID(), planned, results)

	decision := &verification.Decision{
		CommunityID: request.CommunityID,
		MemberID:    request.MemberID,
		Checks:      results,
		CheckedAt:   biztime.NowUTC(),
	}

	response := uc.buildResponse(decision)
	uc.applyRole(ctx, communityPolicy, decision, response)

	uc.logger.Infow("verification completed",
		"community_id", request.CommunityID,
		"member_id", request.MemberID,
		"all_conditions_met", response.AllConditionsMet,
		"needs_auth", response.NeedsAuth,
		"role_granted", response.RoleGranted,
	)

	return response, nil
}

// plan builds the list of required checks with credentials and channel
// targets resolved.
func (uc *VerifyMemberUseCase) plan(ctx context.Context, communityPolicy *policy.Policy, member *user.User) ([]plannedCheck, error) {
	requirements := communityPolicy.Requirements()
	required := map[verification.Kind]bool{
		verification.KindYouTubeSubscription: requirements.YouTubeSubscription,
		verification.KindTwitchFollow:        requirements.TwitchFollow,
		verification.KindTwitchSubscription:  requirements.TwitchSubscription,
	}

	twitchTarget := uc.resolveTwitchTarget(ctx, communityPolicy)

	planned := make([]plannedCheck, 0, len(verification.AllKinds))
	for _, kind := range verification.AllKinds {
		if !required[kind] {
			continue
		}

		check := plannedCheck{kind: kind}
		if kind.Platform() == credential.PlatformYouTube {
			check.target = verification.ChannelTarget{ID: communityPolicy.YouTubeChannelID()}
		} else {
			check.target = twitchTarget
		}

		adapter, ok := uc.adapters[kind.Platform()]
		if !ok || !adapter.Supports(kind) {
			// A required check no adapter can run is a configuration
			// problem, not a crash and not a pass.
			outcome := verification.TransientOutcome(fmt.Sprintf("no adapter can run %s", kind))
			check.pre = &outcome
			planned = append(planned, check)
			continue
		}
		check.adapter = adapter

		cred, err := uc.credentialRepo.FindByUserAndPlatform(ctx, member.ID(), kind.Platform())
		if err != nil {
			return nil, fmt.Errorf("failed to load credential: %w", err)
		}
		if cred == nil {
			outcome := verification.NeedsAuthOutcome()
			check.pre = &outcome
			planned = append(planned, check)
			continue
		}

		if cred.IsExpired(biztime.NowUTC()) {
			cred = uc.refreshCredential(ctx, adapter, cred)
			if cred == nil {
				outcome := verification.NeedsAuthOutcome()
				check.pre = &outcome
				planned = append(planned, check)
				continue
			}
		}

		check.cred = cred
		planned = append(planned, check)
	}

	return planned, nil
}

// resolveTwitchTarget returns the broadcaster target, resolving the login
// to an ID through the cache and adapter when the policy has no cached ID.
func (uc *VerifyMemberUseCase) resolveTwitchTarget(ctx context.Context, communityPolicy *policy.Policy) verification.ChannelTarget {
	target := verification.ChannelTarget{
		ID:    communityPolicy.TwitchChannelID(),
		Login: communityPolicy.TwitchChannelLogin(),
	}
	if target.ID != "" || target.Login == "" {
		return target
	}

	if uc.channelCache != nil {
		cached, err := uc.channelCache.Get(ctx, string(credential.PlatformTwitch), target.Login)
		if err != nil {
			uc.logger.Warnw("channel cache read failed", "login", target.Login, "error", err)
		} else if cached != "" {
			target.ID = cached
			return target
		}
	}

	adapter, ok := uc.adapters[credential.PlatformTwitch]
	if !ok {
		return target
	}

	resolved, err := adapter.ResolveChannel(ctx, target.Login)
	if err != nil {
		uc.logger.Warnw("twitch channel resolution failed", "login", target.Login, "error", err)
		return target
	}
	target.ID = resolved

	if uc.channelCache != nil {
		if err := uc.channelCache.Set(ctx, string(credential.PlatformTwitch), target.Login, resolved); err != nil {
			uc.logger.Warnw("channel cache write failed", "login", target.Login, "error", err)
		}
	}

	communityPolicy.CacheTwitchChannelID(resolved)
	if err := uc.policyRepo.Save(ctx, communityPolicy); err != nil {
		uc.logger.Warnw("failed to persist resolved twitch channel", "error", err)
	}

	return target
}

// refreshCredential tries to renew an expired credential. Returns the
// refreshed credential, or nil when the member must re-authorize.
func (uc *VerifyMemberUseCase) refreshCredential(ctx context.Context, adapter verification.Adapter, cred *credential.Credential) *credential.Credential {
	if cred.RefreshToken() == "" {
		return nil
	}

	data, err := adapter.Refresh(ctx, cred)
	if err != nil {
		uc.logger.Warnw("credential refresh failed",
			"user_id", cred.UserID(),
			"platform", cred.Platform(),
			"error", err,
		)
		return nil
	}

	cred.UpdateTokens(data)
	if err := uc.credentialRepo.Save(ctx, cred); err != nil {
		uc.logger.Errorw("failed to persist refreshed credential",
			"user_id", cred.UserID(),
			"platform", cred.Platform(),
			"error", err,
		)
	}
	return cred
}

// runChecks fans the planned checks out to the adapters concurrently and
// collects their outcomes in plan order.
func (uc *VerifyMemberUseCase) runChecks(ctx context.Context, planned []plannedCheck) []verification.CheckResult {
	results := make([]verification.CheckResult, len(planned))

	var wg sync.WaitGroup
	for i, check := range planned {
		results[i] = verification.CheckResult{
			Kind:      check.kind,
			Required:  true,
			CheckedAt: biztime.NowUTC(),
		}

		if check.pre != nil {
			results[i].Outcome = *check.pre
			continue
		}

		wg.Add(1)
		go func(i int, check plannedCheck) {
			defer wg.Done()

			checkCtx, cancel := context.WithTimeout(ctx, uc.checkTimeout)
			defer cancel()

			outcome := check.adapter.Check(checkCtx, check.kind, check.cred, check.target)
			results[i].Outcome = outcome
			results[i].Label = verification.ResultLabel(check.kind, outcome)
			results[i].CheckedAt = biztime.NowUTC()
		}(i, check)
	}
	wg.Wait()

	return results
}

// appendLogs writes one audit entry per adapter-invoked check. Skipped
// checks leave no trace.
func (uc *VerifyMemberUseCase) appendLogs(ctx context.Context, userID uint, planned []plannedCheck, results []verification.CheckResult) {
	for i, check := range planned {
		if check.pre != nil {
			continue
		}

		detail := map[string]interface{}{
			"channel_id": check.target.ID,
		}
		if results[i].Outcome.Tier != "" {
			detail["tier"] = results[i].Outcome.Tier
		}
		if results[i].Outcome.Err != "" {
			detail["error"] = results[i].Outcome.Err
		}

		entry := verification.NewLogEntry(userID, check.kind, results[i].Label, detail)
		if err := uc.logRepo.Append(ctx, entry); err != nil {
			uc.logger.Errorw("failed to append verification log",
				"user_id", userID,
				"kind", check.kind,
				"error", err,
			)
		}
	}
}

func (uc *VerifyMemberUseCase) buildResponse(decision *verification.Decision) *verificationdto.VerifyMemberResponse {
	response := &verificationdto.VerifyMemberResponse{
		CommunityID:      decision.CommunityID,
		MemberID:         decision.MemberID,
		AllConditionsMet: decision.AllConditionsMet(),
		NeedsAuth:        decision.NeedsAuth(),
		Checks:           make([]verificationdto.CheckResult, 0, len(decision.Checks)),
		CheckedAt:        decision.CheckedAt,
	}

	for _, check := range decision.Checks {
		result := verificationdto.CheckResult{
			Kind:     string(check.Kind),
			Platform: string(check.Kind.Platform()),
			Required: check.Required,
			Label:    check.Label,
			Tier:     check.Outcome.Tier,
			Error:    check.Outcome.Err,
		}
		switch {
		case check.Outcome.NeedsAuth:
			result.Status = "needs_auth"
		case !check.Outcome.Definitive:
			result.Status = "error"
		case check.Outcome.Met:
			result.Status = "met"
		default:
			result.Status = "not_met"
		}
		response.Checks = append(response.Checks, result)
	}

	return response
}

// applyRole grants the verified role when the decision passes and the
// policy wants automatic assignment. A grant failure is reported in the
// response but never fails the decision.
func (uc *VerifyMemberUseCase) applyRole(ctx context.Context, communityPolicy *policy.Policy, decision *verification.Decision, response *verificationdto.VerifyMemberResponse) {
	if !decision.AllConditionsMet() || !communityPolicy.AutoAssignRole() {
		return
	}

	roleID := communityPolicy.VerifiedRoleID()
	if roleID == "" || uc.applier == nil {
		return
	}

	response.RoleID = roleID
	granted, err := uc.applier.Apply(ctx, decision.CommunityID, decision.MemberID, roleID)
	if err != nil {
		uc.logger.Errorw("role grant failed",
			"community_id", decision.CommunityID,
			"member_id", decision.MemberID,
			"role_id", roleID,
			"error", err,
		)
		response.GrantError = err.Error()
		return
	}
	response.RoleGranted = granted
}
