package user

import "context"

// Repository defines the interface for user persistence.
type Repository interface {
	// Upsert creates the user or refreshes the display name when the
	// member is already known.
	Upsert(ctx context.Context, u *User) error

	// FindByMemberID returns the user for a chat member ID, or nil when
	// the member has never linked an account.
	FindByMemberID(ctx context.Context, memberID string) (*User, error)

	// FindByID returns the user for an internal ID, or nil when absent.
	FindByID(ctx context.Context, id uint) (*User, error)
}
