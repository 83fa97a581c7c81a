package usecase

import (
	"context"
	"time"

	"github.com/dadscape/diary-api/internal/domain"
)

// DiaryFilter narrows diary listings. Zero values mean "no filter".
type DiaryFilter struct {
	Category string
	Active   *bool
}

// DiaryPatch is a structured partial update. Nil pointer fields are left
// untouched; LastModified and LastModifiedBy are always applied.
type DiaryPatch struct {
	Name           *string
	Description    *string
	Category       *string
	Version        *string
	Tiers          *[]domain.DiaryTier
	Active         *bool
	LastModified   int64
	LastModifiedBy string
}

// DiaryRepository defines storage operations for diaries.
type DiaryRepository interface {
	List(ctx context.Context, filter DiaryFilter) ([]domain.ClanDiary, error)
	GetByID(ctx context.Context, id string) (domain.ClanDiary, error)
	Create(ctx context.Context, diary domain.ClanDiary) error
	Update(ctx context.Context, id string, patch DiaryPatch) error
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
}

// MemberRepository defines roster lookups. RSN matching is
// case-insensitive.
type MemberRepository interface {
	GetByRSN(ctx context.Context, rsn string) (domain.ClanMember, error)
}

// APIKeyRepository defines credential lookups for authentication.
type APIKeyRepository interface {
	FindActive(ctx context.Context, key string) (domain.APIKey, error)
	TouchLastUsed(ctx context.Context, id int64, at time.Time) error
}

// ConfigRepository defines key-value settings persistence.
type ConfigRepository interface {
	Get(ctx context.Context, key string) (domain.ConfigEntry, error)
	Upsert(ctx context.Context, entry domain.ConfigEntry) error
}
