package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dadscape/diary-api/internal/domain"
)

type mockMemberRepo struct {
	members map[string]domain.ClanMember
}

func (m *mockMemberRepo) GetByRSN(ctx context.Context, rsn string) (domain.ClanMember, error) {
	member, ok := m.members[strings.ToLower(rsn)]
	if !ok {
		return domain.ClanMember{}, domain.NotFoundError{Resource: "Clan member"}
	}
	return member, nil
}

func rosterWith(members ...domain.ClanMember) *mockMemberRepo {
	repo := &mockMemberRepo{members: map[string]domain.ClanMember{}}
	for _, m := range members {
		repo.members[strings.ToLower(m.RSN)] = m
	}
	return repo
}

func TestMemberGet(t *testing.T) {
	uc := NewMemberUsecase(rosterWith(
		domain.ClanMember{RSN: "TestAdmin", Rank: domain.RankAdmin},
	))
	ctx := context.Background()

	member, err := uc.Get(ctx, "testadmin")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if member.RSN != "TestAdmin" || member.Rank != domain.RankAdmin {
		t.Fatalf("unexpected member %+v", member)
	}

	if _, err := uc.Get(ctx, "Stranger"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestCheckAdmin(t *testing.T) {
	uc := NewMemberUsecase(rosterWith(
		domain.ClanMember{RSN: "TestAdmin", Rank: domain.RankAdmin},
		domain.ClanMember{RSN: "TestUser", Rank: domain.RankRecruit},
	))
	ctx := context.Background()

	if err := uc.CheckAdmin(ctx, "TestAdmin", domain.RankAdmin); err != nil {
		t.Fatalf("admin should pass: %v", err)
	}

	// lookup is case-insensitive
	if err := uc.CheckAdmin(ctx, "testadmin", domain.RankAdmin); err != nil {
		t.Fatalf("case-insensitive lookup should pass: %v", err)
	}

	err := uc.CheckAdmin(ctx, "TestUser", domain.RankAdmin)
	if !errors.Is(err, domain.ErrAuthorization) {
		t.Fatalf("expected authorization error, got %v", err)
	}
	if !strings.Contains(err.Error(), "rank 10") || !strings.Contains(err.Error(), "rank 100") {
		t.Fatalf("expected actual and required rank in message: %q", err.Error())
	}

	err = uc.CheckAdmin(ctx, "Stranger", domain.RankAdmin)
	if !errors.Is(err, domain.ErrAuthorization) {
		t.Fatalf("expected authorization error for unknown member, got %v", err)
	}
	if !strings.Contains(err.Error(), "Stranger") {
		t.Fatalf("expected user named in message: %q", err.Error())
	}
}

func TestCheckAdminDefaultThresholdIsOpen(t *testing.T) {
	uc := NewMemberUsecase(rosterWith(domain.ClanMember{RSN: "TestUser", Rank: domain.RankFriend}))

	if err := uc.CheckAdmin(context.Background(), "TestUser", 0); err != nil {
		t.Fatalf("rank 0 member should pass a zero threshold: %v", err)
	}
}

func TestCheckOwner(t *testing.T) {
	uc := NewMemberUsecase(rosterWith(
		domain.ClanMember{RSN: "ClanOwner", Rank: domain.RankOwner},
		domain.ClanMember{RSN: "Deputy", Rank: domain.RankDeputyOwner},
	))
	ctx := context.Background()

	if err := uc.CheckOwner(ctx, "ClanOwner"); err != nil {
		t.Fatalf("owner should pass: %v", err)
	}
	if err := uc.CheckOwner(ctx, "Deputy"); !errors.Is(err, domain.ErrAuthorization) {
		t.Fatalf("deputy owner must be rejected, got %v", err)
	}
	if err := uc.CheckOwner(ctx, "Ghost"); !errors.Is(err, domain.ErrAuthorization) {
		t.Fatalf("unknown member must be rejected, got %v", err)
	}
}

func TestCheckMember(t *testing.T) {
	uc := NewMemberUsecase(rosterWith(domain.ClanMember{RSN: "TestUser", Rank: domain.RankGuest}))
	ctx := context.Background()

	if err := uc.CheckMember(ctx, "TestUser"); err != nil {
		t.Fatalf("any rank passes the membership check: %v", err)
	}
	if err := uc.CheckMember(ctx, "Ghost"); !errors.Is(err, domain.ErrAuthorization) {
		t.Fatalf("unknown member must be rejected, got %v", err)
	}
}
