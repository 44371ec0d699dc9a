// Package repository implements the domain repository interfaces on gorm.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fangate-io/fangate/internal/domain/user"
	"github.com/fangate-io/fangate/internal/infrastructure/persistence/models"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new gorm-backed user repository.
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Upsert(ctx context.Context, u *user.User) error {
	var existing models.UserModel
	err := r.db.WithContext(ctx).Where("member_id = ?", u.MemberID()).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to query user: %w", err)
		}
		model := userToModel(u)
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		u.SetID(model.ID)
		return nil
	}

	updates := map[string]interface{}{
		"display_name": u.DisplayName(),
		"updated_at":   u.UpdatedAt(),
	}
	if err := r.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	u.SetID(existing.ID)
	return nil
}

func (r *userRepository) FindByMemberID(ctx context.Context, memberID string) (*user.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).Where("member_id = ?", memberID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by member id: %w", err)
	}
	return userToDomain(&model), nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return userToDomain(&model), nil
}

func userToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:          u.ID(),
		MemberID:    u.MemberID(),
		DisplayName: u.DisplayName(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}

func userToDomain(m *models.UserModel) *user.User {
	return user.ReconstructUser(m.ID, m.MemberID, m.DisplayName, m.CreatedAt, m.UpdatedAt)
}
