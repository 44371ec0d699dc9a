package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/fangate-io/fangate/internal/domain/credential"
	"github.com/fangate-io/fangate/internal/infrastructure/persistence/models"
)

type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new gorm-backed credential repository.
func NewCredentialRepository(db *gorm.DB) credential.Repository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) Save(ctx context.Context, c *credential.Credential) error {
	var existing models.CredentialModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND platform = ?", c.UserID(), string(c.Platform())).
		First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to query credential: %w", err)
		}
		model := credentialToModel(c)
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return fmt.Errorf("failed to create credential: %w", err)
		}
		c.SetID(model.ID)
		return nil
	}

	updates := map[string]interface{}{
		"access_token":  c.AccessToken(),
		"refresh_token": c.RefreshToken(),
		"token_type":    c.TokenType(),
		"scope":         c.Scope(),
		"expires_at":    c.ExpiresAt(),
		"updated_at":    c.UpdatedAt(),
	}
	if err := r.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update credential: %w", err)
	}
	c.SetID(existing.ID)
	return nil
}

func (r *credentialRepository) FindByUserAndPlatform(ctx context.Context, userID uint, platform credential.Platform) (*credential.Credential, error) {
	var model models.CredentialModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND platform = ?", userID, string(platform)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find credential: %w", err)
	}
	return credentialToDomain(&model), nil
}

func (r *credentialRepository) Delete(ctx context.Context, userID uint, platform credential.Platform) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND platform = ?", userID, string(platform)).
		Delete(&models.CredentialModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}

func (r *credentialRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CredentialModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete credentials: %w", err)
	}
	return nil
}

// DeleteExpired removes credentials whose expiry strictly precedes the
// cutoff. Rows without an expiry are never removed. Deleting per platform
// makes each reported count the exact number of rows the delete removed.
func (r *credentialRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (map[credential.Platform]int64, error) {
	removed := make(map[credential.Platform]int64)
	for _, platform := range []credential.Platform{credential.PlatformYouTube, credential.PlatformTwitch} {
		result := r.db.WithContext(ctx).
			Where("platform = ? AND expires_at IS NOT NULL AND expires_at < ?", string(platform), cutoff).
			Delete(&models.CredentialModel{})
		if result.Error != nil {
			return nil, fmt.Errorf("failed to delete expired %s credentials: %w", platform, result.Error)
		}
		if result.RowsAffected > 0 {
			removed[platform] = result.RowsAffected
		}
	}
	return removed, nil
}

func credentialToModel(c *credential.Credential) *models.CredentialModel {
	return &models.CredentialModel{
		ID:           c.ID(),
		UserID:       c.UserID(),
		Platform:     string(c.Platform()),
		AccessToken:  c.AccessToken(),
		RefreshToken: c.RefreshToken(),
		TokenType:    c.TokenType(),
		Scope:        c.Scope(),
		ExpiresAt:    c.ExpiresAt(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func credentialToDomain(m *models.CredentialModel) *credential.Credential {
	return credential.ReconstructCredential(
		m.ID, m.UserID,
		credential.Platform(m.Platform),
		m.AccessToken, m.RefreshToken, m.TokenType, m.Scope,
		m.ExpiresAt,
		m.CreatedAt, m.UpdatedAt,
	)
}
