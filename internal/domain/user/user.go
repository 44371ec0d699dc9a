// Package user defines the chat member identity the engine keys all
// credentials and verification history on.
package user

import (
	"time"

	"github.com/fangate-io/fangate/internal/shared/biztime"
)

// User represents a chat community member known to the engine. A member
// becomes known the first time they start an account link.
type User struct {
	id          uint
	memberID    string
	displayName string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewUser creates a user from the chat platform identity.
func NewUser(memberID, displayName string) *User {
	now := biztime.NowUTC()
	return &User{
		memberID:    memberID,
		displayName: displayName,
		createdAt:   now,
		updatedAt:   now,
	}
}

// ReconstructUser recreates a user from persistent storage.
func ReconstructUser(id uint, memberID, displayName string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:          id,
		memberID:    memberID,
		displayName: displayName,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (u *User) ID() uint             { return u.id }
func (u *User) MemberID() string     { return u.memberID }
func (u *User) DisplayName() string  { return u.displayName }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// Rename updates the cached display name. The chat platform is the source
// of truth for names, so this is refreshed on every link.
func (u *User) Rename(displayName string) {
	u.displayName = displayName
	u.updatedAt = biztime.NowUTC()
}

// SetID assigns the database-generated identifier after creation.
func (u *User) SetID(id uint) {
	u.id = id
}
