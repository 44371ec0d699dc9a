// Package models contains the gorm persistence models and their table
// mappings. Domain objects are mapped in the repository layer.
package models

import "time"

// UserModel is the persistence model for chat members.
type UserModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	MemberID    string    `gorm:"uniqueIndex;size:64;not null"`
	DisplayName string    `gorm:"size:255"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}
