package policy

import "context"

// Repository defines the interface for policy persistence. Each community
// has at most one policy, keyed by community ID.
type Repository interface {
	// Save creates the policy or updates the existing one for its community.
	Save(ctx context.Context, p *Policy) error

	// FindByCommunityID returns the community's policy, or nil when the
	// community has never been configured.
	FindByCommunityID(ctx context.Context, communityID string) (*Policy, error)

	// List returns every configured policy ordered by community ID.
	List(ctx context.Context) ([]*Policy, error)

	// Delete removes a community's policy. Deleting an absent policy is
	// not an error.
	Delete(ctx context.Context, communityID string) error
}
