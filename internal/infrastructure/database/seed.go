package database

import (
	"encoding/json"
	"os"
	"time"

	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dadscape/diary-api/internal/domain"
	"github.com/dadscape/diary-api/internal/infrastructure/database/models"
)

// SeedFile describes development fixtures: API keys, roster entries, a
// few diaries and an initial message of the day.
type SeedFile struct {
	APIKeys []SeedAPIKey `yaml:"apiKeys"`
	Members []SeedMember `yaml:"members"`
	Diaries []SeedDiary  `yaml:"diaries"`
	Motd    *SeedMotd    `yaml:"motd"`
}

type SeedAPIKey struct {
	Key         string `yaml:"key"`
	Description string `yaml:"description"`
	CreatedBy   string `yaml:"createdBy"`
	Active      bool   `yaml:"active"`
}

type SeedMember struct {
	RSN  string `yaml:"rsn"`
	Rank int    `yaml:"rank"`
}

type SeedDiary struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Category    string     `yaml:"category"`
	CreatedBy   string     `yaml:"createdBy"`
	Active      bool       `yaml:"active"`
	Tiers       []SeedTier `yaml:"tiers"`
}

type SeedTier struct {
	TierName          string     `yaml:"tierName"`
	TierColor         string     `yaml:"tierColor"`
	RewardDescription string     `yaml:"rewardDescription"`
	Order             int        `yaml:"order"`
	Tasks             []SeedTask `yaml:"tasks"`
}

type SeedTask struct {
	ID           string            `yaml:"id"`
	Description  string            `yaml:"description"`
	Type         string            `yaml:"type"`
	Requirements map[string]string `yaml:"requirements"`
	Hint         string            `yaml:"hint"`
	Order        int               `yaml:"order"`
}

type SeedMotd struct {
	Text      string `yaml:"text"`
	UpdatedBy string `yaml:"updatedBy"`
}

// LoadSeedFile parses a YAML fixture file.
func LoadSeedFile(path string) (SeedFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return SeedFile{}, err
	}
	defer file.Close()

	var seed SeedFile
	if err := yaml.NewDecoder(file).Decode(&seed); err != nil {
		return SeedFile{}, errors.Wrap(err, "failed to parse seed file")
	}
	return seed, nil
}

// ApplySeed upserts all fixtures. Existing rows are overwritten by key,
// so re-seeding is idempotent.
func ApplySeed(db *gorm.DB, seed SeedFile) error {
	now := time.Now().UnixMilli()

	for _, k := range seed.APIKeys {
		active := 0
		if k.Active {
			active = 1
		}
		row := models.APIKey{
			Key:         k.Key,
			Description: k.Description,
			CreatedBy:   k.CreatedBy,
			Active:      active,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.Assignments(map[string]any{
				"description": k.Description,
				"created_by":  k.CreatedBy,
				"active":      active,
			}),
		}).Create(&row).Error
		if err != nil {
			return errors.Wrapf(err, "failed to seed api key %q", k.Description)
		}
	}

	for _, m := range seed.Members {
		row := models.ClanMember{
			RSN:        m.RSN,
			Rank:       m.Rank,
			JoinedDate: now,
			LastSeen:   now,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "rsn"}},
			DoUpdates: clause.Assignments(map[string]any{"rank": m.Rank, "last_seen": now}),
		}).Create(&row).Error
		if err != nil {
			return errors.Wrapf(err, "failed to seed member %q", m.RSN)
		}
	}

	for _, d := range seed.Diaries {
		tiers := make([]domain.DiaryTier, 0, len(d.Tiers))
		for _, t := range d.Tiers {
			tasks := make([]domain.DiaryTask, 0, len(t.Tasks))
			for _, task := range t.Tasks {
				tasks = append(tasks, domain.DiaryTask{
					ID:           task.ID,
					Description:  task.Description,
					Type:         domain.TaskType(task.Type),
					Requirements: task.Requirements,
					Hint:         task.Hint,
					Order:        task.Order,
				})
			}
			tiers = append(tiers, domain.DiaryTier{
				TierName:          t.TierName,
				TierColor:         t.TierColor,
				Tasks:             tasks,
				RewardDescription: t.RewardDescription,
				Order:             t.Order,
			})
		}

		blob, err := json.Marshal(tiers)
		if err != nil {
			return errors.Wrapf(err, "failed to serialize tiers for seed diary %q", d.Name)
		}

		active := 0
		if d.Active {
			active = 1
		}
		row := models.Diary{
			ID:             d.ID,
			Name:           d.Name,
			Description:    d.Description,
			Category:       d.Category,
			Version:        "1.0",
			CreatedDate:    now,
			CreatedBy:      d.CreatedBy,
			LastModified:   now,
			LastModifiedBy: d.CreatedBy,
			Active:         active,
			TiersJSON:      string(blob),
		}
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":        d.Name,
				"description": d.Description,
				"category":    d.Category,
				"active":      active,
				"tiers_json":  string(blob),
			}),
		}).Create(&row).Error
		if err != nil {
			return errors.Wrapf(err, "failed to seed diary %q", d.Name)
		}
	}

	if seed.Motd != nil {
		row := models.ConfigEntry{
			Key:       domain.MotdConfigKey,
			Value:     seed.Motd.Text,
			UpdatedBy: seed.Motd.UpdatedBy,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.Assignments(map[string]any{
				"value":      seed.Motd.Text,
				"updated_by": seed.Motd.UpdatedBy,
			}),
		}).Create(&row).Error
		if err != nil {
			return errors.Wrap(err, "failed to seed motd")
		}
	}

	return nil
}
