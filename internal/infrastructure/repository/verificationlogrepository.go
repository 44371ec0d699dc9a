package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fangate-io/fangate/internal/domain/credential"
	"github.com/fangate-io/fangate/internal/domain/verification"
	"github.com/fangate-io/fangate/internal/infrastructure/persistence/models"
)

type verificationLogRepository struct {
	db *gorm.DB
}

// NewVerificationLogRepository creates a new gorm-backed verification log repository.
func NewVerificationLogRepository(db *gorm.DB) verification.LogRepository {
	return &verificationLogRepository{db: db}
}

func (r *verificationLogRepository) Append(ctx context.Context, entry *verification.LogEntry) error {
	model, err := logEntryToModel(entry)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append verification log: %w", err)
	}
	entry.SetID(model.ID)
	return nil
}

func (r *verificationLogRepository) FindByUser(ctx context.Context, userID uint, limit int) ([]*verification.LogEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	var modelList []models.VerificationLogModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("checked_at DESC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query verification log: %w", err)
	}

	entries := make([]*verification.LogEntry, 0, len(modelList))
	for i := range modelList {
		entry, err := logEntryToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func logEntryToModel(entry *verification.LogEntry) (*models.VerificationLogModel, error) {
	var detail datatypes.JSON
	if entry.Detail() != nil {
		raw, err := json.Marshal(entry.Detail())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal log detail: %w", err)
		}
		detail = datatypes.JSON(raw)
	}
	return &models.VerificationLogModel{
		ID:        entry.ID(),
		UserID:    entry.UserID(),
		Platform:  string(entry.Platform()),
		CheckKind: string(entry.Kind()),
		Result:    entry.Result(),
		Detail:    detail,
		CheckedAt: entry.CheckedAt(),
	}, nil
}

func logEntryToDomain(m *models.VerificationLogModel) (*verification.LogEntry, error) {
	var detail map[string]interface{}
	if len(m.Detail) > 0 {
		if err := json.Unmarshal(m.Detail, &detail); err != nil {
			return nil, fmt.Errorf("failed to unmarshal log detail: %w", err)
		}
	}
	return verification.ReconstructLogEntry(
		m.ID, m.UserID,
		credential.Platform(m.Platform),
		verification.Kind(m.CheckKind),
		m.Result, detail, m.CheckedAt,
	), nil
}
