// Package chatplatform implements the REST client for the chat platform's
// member and role operations.
package chatplatform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fangate-io/fangate/internal/shared/auth"
	sharedConfig "github.com/fangate-io/fangate/internal/shared/config"
)

const roleClientTimeout = 10 * time.Second

// RoleClient talks to the chat platform's REST API with the bot token. It
// implements the role operations the entitlement applier needs.
type RoleClient struct {
	baseURL  string
	botToken string
	http     *http.Client
}

type memberInfo struct {
	Roles []string `json:"roles"`
}

// NewRoleClient creates a role client from chat platform configuration.
func NewRoleClient(cfg sharedConfig.ChatPlatformConfig) *RoleClient {
	return &RoleClient{
		baseURL:  cfg.APIBaseURL,
		botToken: cfg.BotToken,
		http:     &http.Client{Timeout: roleClientTimeout},
	}
}

// HasRole reports whether the member already holds the role.
func (c *RoleClient) HasRole(ctx context.Context, communityID, memberID, roleID string) (bool, error) {
	target := fmt.Sprintf("%s/guilds/%s/members/%s", c.baseURL, communityID, memberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("member lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("member lookup returned status %d: %s", resp.StatusCode, string(body))
	}

	var member memberInfo
	if err := json.NewDecoder(resp.Body).Decode(&member); err != nil {
		return false, fmt.Errorf("failed to decode member: %w", err)
	}
	return auth.HasRole(member.Roles, roleID), nil
}

// GrantRole adds the role to the member.
func (c *RoleClient) GrantRole(ctx context.Context, communityID, memberID, roleID string) error {
	target := fmt.Sprintf("%s/guilds/%s/members/%s/roles/%s", c.baseURL, communityID, memberID, roleID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("role grant failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("role grant returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func (c *RoleClient) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bot "+c.botToken)
}
