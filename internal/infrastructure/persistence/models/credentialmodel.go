package models

import "time"

// CredentialModel is the persistence model for delegated OAuth credentials.
// One row per (user, platform); re-linking replaces the row in place.
type CredentialModel struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"`
	UserID       uint       `gorm:"uniqueIndex:idx_credentials_user_platform;not null"`
	Platform     string     `gorm:"uniqueIndex:idx_credentials_user_platform;size:16;not null"`
	AccessToken  string     `gorm:"type:text;not null"`
	RefreshToken string     `gorm:"type:text"`
	TokenType    string     `gorm:"size:32"`
	Scope        string     `gorm:"size:512"`
	ExpiresAt    *time.Time `gorm:"index"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CredentialModel
func (CredentialModel) TableName() string {
	return "credentials"
}
