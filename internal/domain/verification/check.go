// Package verification defines the membership checks the engine runs, the
// three-way outcome contract for a single check, and the audit log of past
// checks.
package verification

import (
	"fmt"

	"github.com/fangate-io/fangate/internal/domain/credential"
)

// Kind identifies one membership check a policy can require.
type Kind string

const (
	KindYouTubeSubscription Kind = "youtube_subscription"
	KindTwitchFollow        Kind = "twitch_follow"
	KindTwitchSubscription  Kind = "twitch_subscription"
)

// AllKinds lists every check kind the engine knows, in reporting order.
var AllKinds = []Kind{KindYouTubeSubscription, KindTwitchFollow, KindTwitchSubscription}

// Platform returns the platform whose credential the check consumes.
func (k Kind) Platform() credential.Platform {
	if k == KindYouTubeSubscription {
		return credential.PlatformYouTube
	}
	return credential.PlatformTwitch
}

// IsValid checks whether the kind is one the engine knows.
func (k Kind) IsValid() bool {
	switch k {
	case KindYouTubeSubscription, KindTwitchFollow, KindTwitchSubscription:
		return true
	}
	return false
}

// CheckOutcome is the result of invoking one check against a platform.
// Exactly one of three states holds: a definitive answer (Definitive true,
// Met carries the answer), a credential failure (NeedsAuth true), or a
// transient failure (Err non-empty). Adapters never return Go errors for
// these states; the caller branches on the outcome.
type CheckOutcome struct {
	Definitive bool
	Met        bool
	Tier       string
	NeedsAuth  bool
	Err        string
}

// DefinitiveOutcome builds an outcome with a definitive answer. Tier is
// only meaningful for subscription checks with tier levels.
func DefinitiveOutcome(met bool, tier string) CheckOutcome {
	return CheckOutcome{Definitive: true, Met: met, Tier: tier}
}

// NeedsAuthOutcome builds an outcome for a rejected or unusable credential.
func NeedsAuthOutcome() CheckOutcome {
	return CheckOutcome{NeedsAuth: true}
}

// TransientOutcome builds an outcome for a failure that retrying may fix.
func TransientOutcome(reason string) CheckOutcome {
	return CheckOutcome{Err: reason}
}

// ResultLabel converts an outcome into the stable label recorded in the
// verification log, for example "followed" or "subscribed_tier_2".
func ResultLabel(kind Kind, outcome CheckOutcome) string {
	if outcome.NeedsAuth {
		return "needs_auth"
	}
	if !outcome.Definitive {
		return "check_failed"
	}
	switch kind {
	case KindTwitchFollow:
		if outcome.Met {
			return "followed"
		}
		return "not_followed"
	case KindTwitchSubscription:
		if outcome.Met {
			if outcome.Tier != "" {
				return fmt.Sprintf("subscribed_tier_%s", outcome.Tier)
			}
			return "subscribed"
		}
		return "not_subscribed"
	default:
		if outcome.Met {
			return "subscribed"
		}
		return "not_subscribed"
	}
}
