// Package credential manages the delegated OAuth credentials members grant
// the engine for membership checks on external platforms.
package credential

import (
	"time"

	"github.com/fangate-io/fangate/internal/shared/biztime"
	"github.com/fangate-io/fangate/internal/shared/errors"
)

// Platform identifies an external platform a credential belongs to.
type Platform string

const (
	PlatformYouTube Platform = "youtube"
	PlatformTwitch  Platform = "twitch"
)

// IsValid checks whether the platform is one the engine supports.
func (p Platform) IsValid() bool {
	return p == PlatformYouTube || p == PlatformTwitch
}

// ParsePlatform converts a string into a Platform.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(s)
	if !p.IsValid() {
		return "", errors.NewValidationError("unsupported platform", s)
	}
	return p, nil
}

// TokenData carries the raw token material returned by an OAuth exchange.
// ExpiresIn is the provider-reported lifetime in seconds; zero means the
// provider did not report an expiry.
type TokenData struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int64
	Scope        string
}

// Credential is a stored delegated credential for one (user, platform)
// pair. ExpiresAt is nil when the provider reported no expiry; such
// credentials are never swept.
type Credential struct {
	id           uint
	userID       uint
	platform     Platform
	accessToken  string
	refreshToken string
	tokenType    string
	scope        string
	expiresAt    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewCredential builds a credential from freshly exchanged token data.
func NewCredential(userID uint, platform Platform, data TokenData) *Credential {
	now := biztime.NowUTC()
	c := &Credential{
		userID:       userID,
		platform:     platform,
		accessToken:  data.AccessToken,
		refreshToken: data.RefreshToken,
		tokenType:    data.TokenType,
		scope:        data.Scope,
		createdAt:    now,
		updatedAt:    now,
	}
	if data.ExpiresIn > 0 {
		exp := now.Add(time.Duration(data.ExpiresIn) * time.Second)
		c.expiresAt = &exp
	}
	return c
}

// ReconstructCredential recreates a credential from persistent storage.
func ReconstructCredential(
	id, userID uint,
	platform Platform,
	accessToken, refreshToken, tokenType, scope string,
	expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) *Credential {
	return &Credential{
		id:           id,
		userID:       userID,
		platform:     platform,
		accessToken:  accessToken,
		refreshToken: refreshToken,
		tokenType:    tokenType,
		scope:        scope,
		expiresAt:    expiresAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (c *Credential) ID() uint              { return c.id }
func (c *Credential) UserID() uint          { return c.userID }
func (c *Credential) Platform() Platform    { return c.platform }
func (c *Credential) AccessToken() string   { return c.accessToken }
func (c *Credential) RefreshToken() string  { return c.refreshToken }
func (c *Credential) TokenType() string     { return c.tokenType }
func (c *Credential) Scope() string         { return c.scope }
func (c *Credential) ExpiresAt() *time.Time { return c.expiresAt }
func (c *Credential) CreatedAt() time.Time  { return c.createdAt }
func (c *Credential) UpdatedAt() time.Time  { return c.updatedAt }

// IsExpired reports whether the credential has passed its expiry.
// Credentials without an expiry never expire.
func (c *Credential) IsExpired(now time.Time) bool {
	return c.expiresAt != nil && !now.Before(*c.expiresAt)
}

// UpdateTokens replaces the token material after a refresh. A provider
// that omits the refresh token on renewal keeps the previous one.
func (c *Credential) UpdateTokens(data TokenData) {
	now := biztime.NowUTC()
	c.accessToken = data.AccessToken
	if data.RefreshToken != "" {
		c.refreshToken = data.RefreshToken
	}
	if data.TokenType != "" {
		c.tokenType = data.TokenType
	}
	if data.Scope != "" {
		c.scope = data.Scope
	}
	c.expiresAt = nil
	if data.ExpiresIn > 0 {
		exp := now.Add(time.Duration(data.ExpiresIn) * time.Second)
		c.expiresAt = &exp
	}
	c.updatedAt = now
}

// SetID assigns the database-generated identifier after creation.
func (c *Credential) SetID(id uint) {
	c.id = id
}
