package verification

import (
	"context"
	"errors"

	"github.com/fangate-io/fangate/internal/domain/credential"
)

// ErrChannelNotFound is returned by ResolveChannel when no channel exists
// for the given name.
var ErrChannelNotFound = errors.New("channel not found")

// ChannelTarget identifies the channel a check runs against. ID is the
// platform's canonical channel identifier; Login is the human-facing name
// used when the ID has not been resolved yet.
type ChannelTarget struct {
	ID    string
	Login string
}

// Adapter is the per-platform client the orchestrator fans checks out to.
// Check methods honor the three-way outcome contract: they return a
// CheckOutcome for definitive answers, credential failures, and transient
// failures alike, and reserve Go errors for programming mistakes such as an
// unsupported kind.
type Adapter interface {
	// Platform returns the platform this adapter talks to.
	Platform() credential.Platform

	// Supports reports whether the adapter implements the given check kind.
	Supports(kind Kind) bool

	// Check runs one membership check with the member's credential against
	// the target channel.
	Check(ctx context.Context, kind Kind, cred *credential.Credential, target ChannelTarget) CheckOutcome

	// ResolveChannel maps a channel login name to the platform's canonical
	// channel ID. Returns ErrChannelNotFound when no such channel exists.
	ResolveChannel(ctx context.Context, login string) (string, error)

	// Refresh exchanges the credential's refresh token for new token
	// material. Returns an error when the platform rejects the refresh.
	Refresh(ctx context.Context, cred *credential.Credential) (credential.TokenData, error)
}
