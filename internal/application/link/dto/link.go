// Package dto defines the request and response payloads for the account
// link flow.
package dto

import "time"

// StartLinkRequest begins an OAuth link for a chat member.
type StartLinkRequest struct {
	MemberID    string `json:"member_id" binding:"required"`
	DisplayName string `json:"display_name"`
	Platform    string `json:"platform" binding:"required"`
}

// StartLinkResponse carries the authorization URL the member must visit.
type StartLinkResponse struct {
	AuthURL          string `json:"auth_url"`
	ExpiresInSeconds int    `json:"expires_in_seconds"`
}

// CompleteLinkRequest finishes a link from the OAuth redirect.
type CompleteLinkRequest struct {
	State string `json:"state" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

// CompleteLinkResponse reports the stored link.
type CompleteLinkResponse struct {
	MemberID    string     `json:"member_id"`
	DisplayName string     `json:"display_name"`
	Platform    string     `json:"platform"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// DisconnectRequest removes linked credentials. An empty platform removes
// every credential the member holds.
type DisconnectRequest struct {
	MemberID string `json:"member_id" validate:"required"`
	Platform string `json:"platform"`
}

// PlatformLinkStatus describes one platform link for a member.
type PlatformLinkStatus struct {
	Platform  string     `json:"platform"`
	Linked    bool       `json:"linked"`
	Expired   bool       `json:"expired"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// LinkStatusResponse reports all platform links for a member.
type LinkStatusResponse struct {
	MemberID  string               `json:"member_id"`
	Platforms []PlatformLinkStatus `json:"platforms"`
}
