package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/dadscape/diary-api/internal/domain"
	"github.com/dadscape/diary-api/internal/infrastructure/database/models"
)

type APIKeyRepository struct {
	db *gorm.DB
}

func NewAPIKeyRepository(db *gorm.DB) *APIKeyRepository {
	return &APIKeyRepository{db: db}
}

// FindActive matches the token against active keys only. Revoked keys
// fall through to not-found, so callers cannot tell the two apart.
func (r *APIKeyRepository) FindActive(ctx context.Context, key string) (domain.APIKey, error) {
	var row models.APIKey
	err := r.db.WithContext(ctx).Where("key = ? AND active = 1", key).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.APIKey{}, domain.NotFoundError{Resource: "API key"}
		}
		return domain.APIKey{}, errors.Wrap(err, "failed to fetch api key")
	}
	return row.ToDomain(), nil
}

func (r *APIKeyRepository) TouchLastUsed(ctx context.Context, id int64, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&models.APIKey{}).
		Where("id = ?", id).
		Update("last_used", at).Error
	if err != nil {
		return errors.Wrap(err, "failed to update api key last_used")
	}
	return nil
}
