package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/dadscape/diary-api/internal/domain"
)

// MemberUsecase answers the three authorization questions the guards
// ask of the clan roster. It trusts the caller-asserted RSN; verifying
// that the RSN belongs to whoever holds the API key is out of scope.
type MemberUsecase struct {
	repo MemberRepository
}

func NewMemberUsecase(repo MemberRepository) *MemberUsecase {
	return &MemberUsecase{repo: repo}
}

// Get resolves a roster entry by RSN, case-insensitively. It is the
// single lookup the rank checks below go through.
func (uc *MemberUsecase) Get(ctx context.Context, rsn string) (domain.ClanMember, error) {
	return uc.repo.GetByRSN(ctx, rsn)
}

// CheckAdmin requires the member to exist and hold at least minRank.
func (uc *MemberUsecase) CheckAdmin(ctx context.Context, rsn string, minRank int) error {
	member, err := uc.Get(ctx, rsn)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.AuthorizationError{
				Message: fmt.Sprintf("User %q is not registered in the clan members table. Contact an administrator.", rsn),
			}
		}
		return err
	}

	if member.Rank < minRank {
		return domain.AuthorizationError{
			Message: fmt.Sprintf("Insufficient permissions. User %q has rank %d, but requires rank %d or higher for admin actions.", rsn, member.Rank, minRank),
		}
	}
	return nil
}

// CheckOwner requires the exact owner sentinel rank. A missing member and
// a non-owner member are reported identically.
func (uc *MemberUsecase) CheckOwner(ctx context.Context, rsn string) error {
	member, err := uc.Get(ctx, rsn)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.AuthorizationError{Message: "This action requires clan owner permissions"}
		}
		return err
	}

	if !member.IsOwner() {
		return domain.AuthorizationError{Message: "This action requires clan owner permissions"}
	}
	return nil
}

// CheckMember only requires the member to exist; rank is irrelevant.
func (uc *MemberUsecase) CheckMember(ctx context.Context, rsn string) error {
	_, err := uc.Get(ctx, rsn)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.AuthorizationError{
				Message: fmt.Sprintf("User %q is not a registered clan member", rsn),
			}
		}
		return err
	}
	return nil
}
