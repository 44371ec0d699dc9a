package models

import "time"

// CommunityPolicyModel is the persistence model for per-community
// verification policies.
type CommunityPolicyModel struct {
	ID                  uint      `gorm:"primaryKey;autoIncrement"`
	CommunityID         string    `gorm:"uniqueIndex;size:64;not null"`
	CommunityName       string    `gorm:"size:255"`
	YouTubeChannelID    string    `gorm:"column:youtube_channel_id;size:64"`
	TwitchChannelLogin  string    `gorm:"size:64"`
	TwitchChannelID     string    `gorm:"size:64"`
	RequireYouTubeSub   bool      `gorm:"column:require_youtube_sub;not null;default:true"`
	RequireTwitchFollow bool      `gorm:"not null;default:true"`
	RequireTwitchSub    bool      `gorm:"not null;default:false"`
	AutoAssignRole      bool      `gorm:"not null;default:true"`
	VerifiedRoleID      string    `gorm:"size:64"`
	AdminRoleID         string    `gorm:"size:64"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName returns the table name for CommunityPolicyModel
func (CommunityPolicyModel) TableName() string {
	return "community_policies"
}
