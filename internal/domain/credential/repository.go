package credential

import (
	"context"
	"time"
)

// Repository defines the interface for credential persistence. A user holds
// at most one credential per platform; Save replaces any existing one.
type Repository interface {
	// Save stores the credential, replacing an existing credential for the
	// same (user, platform) pair.
	Save(ctx context.Context, c *Credential) error

	// FindByUserAndPlatform returns the stored credential, or nil when the
	// user has not linked that platform.
	FindByUserAndPlatform(ctx context.Context, userID uint, platform Platform) (*Credential, error)

	// Delete removes the credential for one platform. Removing an absent
	// credential is not an error.
	Delete(ctx context.Context, userID uint, platform Platform) error

	// DeleteAllForUser removes every credential the user holds.
	DeleteAllForUser(ctx context.Context, userID uint) error

	// DeleteExpired removes credentials whose expiry is at or before the
	// cutoff and reports how many were removed per platform. Credentials
	// without an expiry are left untouched.
	DeleteExpired(ctx context.Context, cutoff time.Time) (map[Platform]int64, error)
}
