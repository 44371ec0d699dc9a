// Package dto defines the request and response payloads for community
// policy management.
package dto

import (
	"time"

	"github.com/fangate-io/fangate/internal/shared/auth"
)

// ConfigurePolicyRequest creates or updates a community policy. Optional
// fields left nil keep their current value on update and their default on
// create.
type ConfigurePolicyRequest struct {
	CommunityID         string  `json:"community_id" validate:"required"`
	CommunityName       string  `json:"community_name"`
	YouTubeChannelID    *string `json:"youtube_channel_id"`
	TwitchChannelLogin  *string `json:"twitch_channel_login"`
	RequireYouTubeSub   *bool   `json:"require_youtube_sub"`
	RequireTwitchFollow *bool   `json:"require_twitch_follow"`
	RequireTwitchSub    *bool   `json:"require_twitch_sub"`
	AutoAssignRole      *bool   `json:"auto_assign_role"`
	VerifiedRoleID      *string `json:"verified_role_id"`
	AdminRoleID         *string `json:"admin_role_id"`

	Actor auth.MemberPermissions `json:"actor"`
}

// DeletePolicyRequest removes a community policy.
type DeletePolicyRequest struct {
	CommunityID string                 `json:"community_id" validate:"required"`
	Actor       auth.MemberPermissions `json:"actor"`
}

// PolicyResponse is the transport representation of a community policy.
type PolicyResponse struct {
	CommunityID         string    `json:"community_id"`
	CommunityName       string    `json:"community_name"`
	YouTubeChannelID    string    `json:"youtube_channel_id"`
	TwitchChannelLogin  string    `json:"twitch_channel_login"`
	TwitchChannelID     string    `json:"twitch_channel_id"`
	RequireYouTubeSub   bool      `json:"require_youtube_sub"`
	RequireTwitchFollow bool      `json:"require_twitch_follow"`
	RequireTwitchSub    bool      `json:"require_twitch_sub"`
	AutoAssignRole      bool      `json:"auto_assign_role"`
	VerifiedRoleID      string    `json:"verified_role_id"`
	AdminRoleID         string    `json:"admin_role_id"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ValidatePolicyResponse reports whether a policy is internally consistent.
type ValidatePolicyResponse struct {
	CommunityID string   `json:"community_id"`
	Valid       bool     `json:"valid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
}
