package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/dadscape/diary-api/internal/domain"
	"github.com/dadscape/diary-api/internal/infrastructure/database/models"
)

type ConfigRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

func (r *ConfigRepository) Get(ctx context.Context, key string) (domain.ConfigEntry, error) {
	var row models.ConfigEntry
	err := r.db.WithContext(ctx).Where("key = ?", key).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ConfigEntry{}, domain.NotFoundError{Resource: "Config entry"}
		}
		return domain.ConfigEntry{}, errors.Wrap(err, "failed to fetch config entry")
	}
	return row.ToDomain(), nil
}

// Upsert checks for an existing row then updates or inserts, rather than
// relying on native upsert syntax. Two independently committed
// statements; concurrent setters race at the statement level.
func (r *ConfigRepository) Upsert(ctx context.Context, entry domain.ConfigEntry) error {
	var existing models.ConfigEntry
	err := r.db.WithContext(ctx).Where("key = ?", entry.Key).Take(&existing).Error
	switch {
	case err == nil:
		err = r.db.WithContext(ctx).
			Model(&models.ConfigEntry{}).
			Where("key = ?", entry.Key).
			Updates(map[string]any{
				"value":      entry.Value,
				"updated_by": entry.UpdatedBy,
			}).Error
		if err != nil {
			return errors.Wrap(err, "failed to update config entry")
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		row := models.ConfigEntry{
			Key:       entry.Key,
			Value:     entry.Value,
			UpdatedBy: entry.UpdatedBy,
		}
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return errors.Wrap(err, "failed to insert config entry")
		}
		return nil
	default:
		return errors.Wrap(err, "failed to fetch config entry")
	}
}
