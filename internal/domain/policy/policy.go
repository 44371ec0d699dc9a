// Package policy defines the per-community verification policy: which
// platform memberships a member must hold and which role is granted when
// all required checks pass.
package policy

import (
	"time"

	"github.com/fangate-io/fangate/internal/shared/biztime"
)

// Requirements holds the membership checks a community demands.
type Requirements struct {
	YouTubeSubscription bool
	TwitchFollow        bool
	TwitchSubscription  bool
}

// Policy is the verification configuration for one chat community.
type Policy struct {
	id                 uint
	communityID        string
	communityName      string
	youtubeChannelID   string
	twitchChannelLogin string
	twitchChannelID    string
	requirements       Requirements
	autoAssignRole     bool
	verifiedRoleID     string
	adminRoleID        string
	createdAt          time.Time
	updatedAt          time.Time
}

// NewPolicy creates a policy for a community with default requirements:
// YouTube subscription and Twitch follow required, Twitch subscription
// optional, automatic role assignment on.
func NewPolicy(communityID, communityName string) *Policy {
	now := biztime.NowUTC()
	return &Policy{
		communityID:   communityID,
		communityName: communityName,
		requirements: Requirements{
			YouTubeSubscription: true,
			TwitchFollow:        true,
			TwitchSubscription:  false,
		},
		autoAssignRole: true,
		createdAt:      now,
		updatedAt:      now,
	}
}

// ReconstructPolicy recreates a policy from persistent storage.
func ReconstructPolicy(
	id uint,
	communityID, communityName string,
	youtubeChannelID, twitchChannelLogin, twitchChannelID string,
	requirements Requirements,
	autoAssignRole bool,
	verifiedRoleID, adminRoleID string,
	createdAt, updatedAt time.Time,
) *Policy {
	return &Policy{
		id:                 id,
		communityID:        communityID,
		communityName:      communityName,
		youtubeChannelID:   youtubeChannelID,
		twitchChannelLogin: twitchChannelLogin,
		twitchChannelID:    twitchChannelID,
		requirements:       requirements,
		autoAssignRole:     autoAssignRole,
		verifiedRoleID:     verifiedRoleID,
		adminRoleID:        adminRoleID,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (p *Policy) ID() uint                   { return p.id }
func (p *Policy) CommunityID() string        { return p.communityID }
func (p *Policy) CommunityName() string      { return p.communityName }
func (p *Policy) YouTubeChannelID() string   { return p.youtubeChannelID }
func (p *Policy) TwitchChannelLogin() string { return p.twitchChannelLogin }
func (p *Policy) TwitchChannelID() string    { return p.twitchChannelID }
func (p *Policy) Requirements() Requirements { return p.requirements }
func (p *Policy) AutoAssignRole() bool       { return p.autoAssignRole }
func (p *Policy) VerifiedRoleID() string     { return p.verifiedRoleID }
func (p *Policy) AdminRoleID() string        { return p.adminRoleID }
func (p *Policy) CreatedAt() time.Time       { return p.createdAt }
func (p *Policy) UpdatedAt() time.Time       { return p.updatedAt }

// SetCommunityName refreshes the cached community name.
func (p *Policy) SetCommunityName(name string) {
	p.communityName = name
	p.touch()
}

// SetYouTubeChannel sets the YouTube channel members must subscribe to.
func (p *Policy) SetYouTubeChannel(channelID string) {
	p.youtubeChannelID = channelID
	p.touch()
}

// SetTwitchChannel sets the Twitch channel by login name and clears the
// cached broadcaster ID so it is resolved again on next use.
func (p *Policy) SetTwitchChannel(login string) {
	if login == p.twitchChannelLogin {
		return
	}
	p.twitchChannelLogin = login
	p.twitchChannelID = ""
	p.touch()
}

// CacheTwitchChannelID stores the broadcaster ID resolved for the
// configured Twitch login.
func (p *Policy) CacheTwitchChannelID(broadcasterID string) {
	p.twitchChannelID = broadcasterID
	p.touch()
}

// SetRequirements replaces the full requirement set.
func (p *Policy) SetRequirements(r Requirements) {
	p.requirements = r
	p.touch()
}

// SetAutoAssignRole toggles automatic role assignment.
func (p *Policy) SetAutoAssignRole(enabled bool) {
	p.autoAssignRole = enabled
	p.touch()
}

// SetVerifiedRoleID sets the role granted on full verification.
func (p *Policy) SetVerifiedRoleID(roleID string) {
	p.verifiedRoleID = roleID
	p.touch()
}

// SetAdminRoleID sets the role allowed to configure the community.
func (p *Policy) SetAdminRoleID(roleID string) {
	p.adminRoleID = roleID
	p.touch()
}

// SetID assigns the database-generated identifier after creation.
func (p *Policy) SetID(id uint) {
	p.id = id
}

func (p *Policy) touch() {
	p.updatedAt = biztime.NowUTC()
}
