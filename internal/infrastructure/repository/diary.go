package repository

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/dadscape/diary-api/internal/domain"
	"github.com/dadscape/diary-api/internal/infrastructure/database/models"
	"github.com/dadscape/diary-api/internal/usecase"
)

type DiaryRepository struct {
	db *gorm.DB
}

func NewDiaryRepository(db *gorm.DB) *DiaryRepository {
	return &DiaryRepository{db: db}
}

func (r *DiaryRepository) List(ctx context.Context, filter usecase.DiaryFilter) ([]domain.ClanDiary, error) {
	query := r.db.WithContext(ctx).Model(&models.Diary{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", boolToInt(*filter.Active))
	}

	var rows []models.Diary
	if err := query.Order("created_date DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list diaries")
	}

	diaries := make([]domain.ClanDiary, 0, len(rows))
	for _, row := range rows {
		diary, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		diaries = append(diaries, diary)
	}
	return diaries, nil
}

func (r *DiaryRepository) GetByID(ctx context.Context, id string) (domain.ClanDiary, error) {
	var row models.Diary
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ClanDiary{}, domain.NotFoundError{Resource: "Diary"}
		}
		return domain.ClanDiary{}, errors.Wrap(err, "failed to fetch diary")
	}
	return row.ToDomain()
}

func (r *DiaryRepository) Create(ctx context.Context, diary domain.ClanDiary) error {
	row, err := models.DiaryFromDomain(diary)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return errors.Wrap(err, "failed to insert diary")
	}
	return nil
}

// Update assembles a (column, value) assignment set from the typed patch.
// Nil fields are skipped; last_modified and last_modified_by are always
// written. Parameters stay bound, never concatenated.
func (r *DiaryRepository) Update(ctx context.Context, id string, patch usecase.DiaryPatch) error {
	assignments := map[string]any{
		"last_modified":    patch.LastModified,
		"last_modified_by": patch.LastModifiedBy,
	}
	if patch.Name != nil {
		assignments["name"] = *patch.Name
	}
	if patch.Description != nil {
		assignments["description"] = *patch.Description
	}
	if patch.Category != nil {
		assignments["category"] = *patch.Category
	}
	if patch.Version != nil {
		assignments["version"] = *patch.Version
	}
	if patch.Active != nil {
		assignments["active"] = boolToInt(*patch.Active)
	}
	if patch.Tiers != nil {
		blob, err := json.Marshal(*patch.Tiers)
		if err != nil {
			return errors.Wrap(err, "failed to serialize tiers")
		}
		assignments["tiers_json"] = string(blob)
	}

	err := r.db.WithContext(ctx).
		Model(&models.Diary{}).
		Where("id = ?", id).
		Updates(assignments).Error
	if err != nil {
		return errors.Wrap(err, "failed to update diary")
	}
	return nil
}

func (r *DiaryRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Diary{}, "id = ?", id).Error; err != nil {
		return errors.Wrap(err, "failed to delete diary")
	}
	return nil
}

func (r *DiaryRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&models.Diary{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch categories")
	}
	return categories, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
