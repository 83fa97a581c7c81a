package models

import (
	"time"

	"github.com/dadscape/diary-api/internal/domain"
)

// ClanMember is the roster table. The NOCASE collation makes rsn
// equality and uniqueness case-insensitive at the store level.
type ClanMember struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	RSN        string    `gorm:"column:rsn;type:text COLLATE NOCASE;not null;uniqueIndex"`
	Rank       int       `gorm:"column:rank;not null"`
	JoinedDate int64     `gorm:"not null"`
	LastSeen   int64     `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (ClanMember) TableName() string { return "clan_members" }

func (m ClanMember) ToDomain() domain.ClanMember {
	return domain.ClanMember{
		ID:         m.ID,
		RSN:        m.RSN,
		Rank:       m.Rank,
		JoinedDate: m.JoinedDate,
		LastSeen:   m.LastSeen,
	}
}

type APIKey struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Key         string     `gorm:"column:key;type:text;not null;uniqueIndex"`
	Description string     `gorm:"type:text"`
	CreatedBy   string     `gorm:"type:text;not null"`
	Active      int        `gorm:"not null;default:1"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	LastUsed    *time.Time `gorm:"column:last_used"`
}

func (APIKey) TableName() string { return "api_keys" }

func (k APIKey) ToDomain() domain.APIKey {
	return domain.APIKey{
		ID:          k.ID,
		Key:         k.Key,
		Description: k.Description,
		CreatedBy:   k.CreatedBy,
		Active:      k.Active == 1,
		LastUsed:    k.LastUsed,
	}
}

// ConfigEntry is the generic key-value settings table; only the "motd"
// key is currently used.
type ConfigEntry struct {
	Key       string    `gorm:"primaryKey;type:text"`
	Value     string    `gorm:"type:text"`
	UpdatedBy string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ConfigEntry) TableName() string { return "config" }

func (e ConfigEntry) ToDomain() domain.ConfigEntry {
	return domain.ConfigEntry{
		Key:       e.Key,
		Value:     e.Value,
		UpdatedBy: e.UpdatedBy,
	}
}

// UserProgress tracks per-member task completion. Rows cascade away with
// their diary. Reserved surface: migrated but not yet exposed over HTTP.
type UserProgress struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	DiaryID       string    `gorm:"type:text;not null;uniqueIndex:uniq_progress;index:idx_user_progress_diary_rsn,priority:1"`
	Diary         Diary     `gorm:"foreignKey:DiaryID;constraint:OnDelete:CASCADE"`
	RSN           string    `gorm:"column:rsn;type:text;not null;uniqueIndex:uniq_progress;index:idx_user_progress_diary_rsn,priority:2"`
	TaskID        string    `gorm:"type:text;not null;uniqueIndex:uniq_progress"`
	Completed     int       `gorm:"not null;default:0"`
	CompletedDate *int64    `gorm:"column:completed_date"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (UserProgress) TableName() string { return "user_progress" }
