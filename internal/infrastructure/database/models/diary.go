package models

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/dadscape/diary-api/internal/domain"
)

// Diary is the persisted form of a clan diary. The nested tier/task
// structure lives in tiers_json as one flattened text blob; the store
// has no knowledge of its shape.
type Diary struct {
	ID             string    `gorm:"primaryKey;type:text"`
	Name           string    `gorm:"type:text;not null"`
	Description    string    `gorm:"type:text"`
	Category       string    `gorm:"type:text;not null;index:idx_diaries_category"`
	Version        string    `gorm:"type:text;not null"`
	CreatedDate    int64     `gorm:"not null"`
	CreatedBy      string    `gorm:"type:text;not null;index:idx_diaries_created_by"`
	LastModified   int64     `gorm:"not null"`
	LastModifiedBy string    `gorm:"type:text;not null"`
	Active         int       `gorm:"not null;default:1;index:idx_diaries_active"`
	TiersJSON      string    `gorm:"column:tiers_json;type:text;not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Diary) TableName() string { return "diaries" }

// ToDomain deserializes the tier blob. A malformed blob is a hard error:
// it means stored data is corrupt, not that the diary is missing.
func (d Diary) ToDomain() (domain.ClanDiary, error) {
	var tiers []domain.DiaryTier
	if err := json.Unmarshal([]byte(d.TiersJSON), &tiers); err != nil {
		return domain.ClanDiary{}, errors.Wrapf(err, "malformed tiers_json for diary %s", d.ID)
	}
	if tiers == nil {
		tiers = []domain.DiaryTier{}
	}

	return domain.ClanDiary{
		ID:             d.ID,
		Name:           d.Name,
		Description:    d.Description,
		Category:       d.Category,
		Version:        d.Version,
		CreatedDate:    d.CreatedDate,
		CreatedBy:      d.CreatedBy,
		LastModified:   d.LastModified,
		LastModifiedBy: d.LastModifiedBy,
		Tiers:          tiers,
		Active:         d.Active == 1,
	}, nil
}

// DiaryFromDomain serializes the tier structure for storage.
func DiaryFromDomain(d domain.ClanDiary) (Diary, error) {
	tiers := d.Tiers
	if tiers == nil {
		tiers = []domain.DiaryTier{}
	}
	blob, err := json.Marshal(tiers)
	if err != nil {
		return Diary{}, errors.Wrap(err, "failed to serialize tiers")
	}

	active := 0
	if d.Active {
		active = 1
	}

	return Diary{
		ID:             d.ID,
		Name:           d.Name,
		Description:    d.Description,
		Category:       d.Category,
		Version:        d.Version,
		CreatedDate:    d.CreatedDate,
		CreatedBy:      d.CreatedBy,
		LastModified:   d.LastModified,
		LastModifiedBy: d.LastModifiedBy,
		Active:         active,
		TiersJSON:      string(blob),
	}, nil
}
