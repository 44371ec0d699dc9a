package models

import (
	"time"

	"gorm.io/datatypes"
)

// VerificationLogModel is the persistence model for the audit log of
// executed platform checks.
type VerificationLogModel struct {
	ID        uint           `gorm:"primaryKey;autoIncrement"`
	UserID    uint           `gorm:"index;not null"`
	Platform  string         `gorm:"size:16;not null"`
	CheckKind string         `gorm:"size:32;not null"`
	Result    string         `gorm:"size:64;not null"`
	Detail    datatypes.JSON `gorm:"type:json"`
	CheckedAt time.Time      `gorm:"index;not null"`

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for VerificationLogModel
func (VerificationLogModel) TableName() string {
	return "verification_logs"
}
