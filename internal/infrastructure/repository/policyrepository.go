package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fangate-io/fangate/internal/domain/policy"
	"github.com/fangate-io/fangate/internal/infrastructure/persistence/models"
)

type policyRepository struct {
	db *gorm.DB
}

// NewPolicyRepository creates a new gorm-backed policy repository.
func NewPolicyRepository(db *gorm.DB) policy.Repository {
	return &policyRepository{db: db}
}

func (r *policyRepository) Save(ctx context.Context, p *policy.Policy) error {
	var existing models.CommunityPolicyModel
	err := r.db.WithContext(ctx).Where("community_id = ?", p.CommunityID()).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to query policy: %w", err)
		}
		model := policyToModel(p)
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return fmt.Errorf("failed to create policy: %w", err)
		}
		p.SetID(model.ID)
		return nil
	}

	updates := map[string]interface{}{
		"community_name":        p.CommunityName(),
		"youtube_channel_id":    p.YouTubeChannelID(),
		"twitch_channel_login":  p.TwitchChannelLogin(),
		"twitch_channel_id":     p.TwitchChannelID(),
		"require_youtube_sub":   p.Requirements().YouTubeSubscription,
		"require_twitch_follow": p.Requirements().TwitchFollow,
		"require_twitch_sub":    p.Requirements().TwitchSubscription,
		"auto_assign_role":      p.AutoAssignRole(),
		"verified_role_id":      p.VerifiedRoleID(),
		"admin_role_id":         p.AdminRoleID(),
		"updated_at":            p.UpdatedAt(),
	}
	if err := r.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update policy: %w", err)
	}
	p.SetID(existing.ID)
	return nil
}

func (r *policyRepository) FindByCommunityID(ctx context.Context, communityID string) (*policy.Policy, error) {
	var model models.CommunityPolicyModel
	err := r.db.WithContext(ctx).Where("community_id = ?", communityID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find policy: %w", err)
	}
	return policyToDomain(&model), nil
}

func (r *policyRepository) List(ctx context.Context) ([]*policy.Policy, error) {
	var modelList []models.CommunityPolicyModel
	err := r.db.WithContext(ctx).Order("community_id").Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}

	policies := make([]*policy.Policy, 0, len(modelList))
	for i := range modelList {
		policies = append(policies, policyToDomain(&modelList[i]))
	}
	return policies, nil
}

func (r *policyRepository) Delete(ctx context.Context, communityID string) error {
	err := r.db.WithContext(ctx).
		Where("community_id = ?", communityID).
		Delete(&models.CommunityPolicyModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete policy: %w", err)
	}
	return nil
}

func policyToModel(p *policy.Policy) *models.CommunityPolicyModel {
	return &models.CommunityPolicyModel{
		ID:                  p.ID(),
		CommunityID:         p.CommunityID(),
		CommunityName:       p.CommunityName(),
		YouTubeChannelID:    p.YouTubeChannelID(),
		TwitchChannelLogin:  p.TwitchChannelLogin(),
		TwitchChannelID:     p.TwitchChannelID(),
		RequireYouTubeSub:   p.Requirements().YouTubeSubscription,
		RequireTwitchFollow: p.Requirements().TwitchFollow,
		RequireTwitchSub:    p.Requirements().TwitchSubscription,
		AutoAssignRole:      p.AutoAssignRole(),
		VerifiedRoleID:      p.VerifiedRoleID(),
		AdminRoleID:         p.AdminRoleID(),
		CreatedAt:           p.CreatedAt(),
		UpdatedAt:           p.UpdatedAt(),
	}
}

func policyToDomain(m *models.CommunityPolicyModel) *policy.Policy {
	return policy.ReconstructPolicy(
		m.ID,
		m.CommunityID, m.CommunityName,
		m.YouTubeChannelID, m.TwitchChannelLogin, m.TwitchChannelID,
		policy.Requirements{
			YouTubeSubscription: m.RequireYouTubeSub,
			TwitchFollow:        m.RequireTwitchFollow,
			TwitchSubscription:  m.RequireTwitchSub,
		},
		m.AutoAssignRole,
		m.VerifiedRoleID, m.AdminRoleID,
		m.CreatedAt, m.UpdatedAt,
	)
}
