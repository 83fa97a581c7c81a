package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/dadscape/diary-api/internal/domain"
	"github.com/dadscape/diary-api/internal/infrastructure/database/models"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// GetByRSN looks a member up case-insensitively. The explicit collation
// keeps the comparison insensitive even against rows created before the
// column collation existed.
func (r *MemberRepository) GetByRSN(ctx context.Context, rsn string) (domain.ClanMember, error) {
	var row models.ClanMember
	err := r.db.WithContext(ctx).Where("rsn = ? COLLATE NOCASE", rsn).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ClanMember{}, domain.NotFoundError{Resource: "Clan member"}
		}
		return domain.ClanMember{}, errors.Wrap(err, "failed to fetch clan member")
	}
	return row.ToDomain(), nil
}
