// Package dto defines the request and response payloads for member
// verification.
package dto

import "time"

// VerifyMemberRequest runs a full verification for a member in a community.
type VerifyMemberRequest struct {
	CommunityID string `json:"community_id" validate:"required"`
	MemberID    string `json:"member_id" validate:"required"`
}

// CheckResult reports one check's contribution to the decision.
// Status is one of: met, not_met, needs_auth, error.
type CheckResult struct {
	Kind     string `json:"kind"`
	Platform string `json:"platform"`
	Required bool   `json:"required"`
	Status   string `json:"status"`
	Label    string `json:"label,omitempty"`
	Tier     string `json:"tier,omitempty"`
	Error    string `json:"error,omitempty"`
}

// VerifyMemberResponse is the aggregated verification decision.
type VerifyMemberResponse struct {
	CommunityID      string        `json:"community_id"`
	MemberID         string        `json:"member_id"`
	AllConditionsMet bool          `json:"all_conditions_met"`
	NeedsAuth        bool          `json:"needs_auth"`
	RoleGranted      bool          `json:"role_granted"`
	RoleID           string        `json:"role_id,omitempty"`
	GrantError       string        `json:"grant_error,omitempty"`
	Checks           []CheckResult `json:"checks"`
	CheckedAt        time.Time     `json:"checked_at"`
}

// HistoryEntry is one recorded platform check.
type HistoryEntry struct {
	Platform  string                 `json:"platform"`
	Kind      string                 `json:"kind"`
	Result    string                 `json:"result"`
	Detail    map[string]interface{} `json:"detail,omitempty"`
	CheckedAt time.Time              `json:"checked_at"`
}

// HistoryResponse lists a member's recent checks, newest first.
type HistoryResponse struct {
	MemberID string         `json:"member_id"`
	Entries  []HistoryEntry `json:"entries"`
}
