package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dadscape/diary-api/internal/domain"
)

type mockKeyRepo struct {
	keys      map[string]domain.APIKey
	touched   []int64
	touchFail error
}

func (m *mockKeyRepo) FindActive(ctx context.Context, key string) (domain.APIKey, error) {
	record, ok := m.keys[key]
	if !ok || !record.Active {
		return domain.APIKey{}, domain.NotFoundError{Resource: "API key"}
	}
	return record, nil
}

func (m *mockKeyRepo) TouchLastUsed(ctx context.Context, id int64, at time.Time) error {
	if m.touchFail != nil {
		return m.touchFail
	}
	m.touched = append(m.touched, id)
	return nil
}

func TestAuthenticateValidKey(t *testing.T) {
	repo := &mockKeyRepo{keys: map[string]domain.APIKey{
		"good-key": {ID: 7, Key: "good-key", CreatedBy: "system", Active: true},
	}}
	uc := NewAuthUsecase(repo)

	key, err := uc.Authenticate(context.Background(), "good-key")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if key.CreatedBy != "system" {
		t.Fatalf("expected creator identity, got %q", key.CreatedBy)
	}
	if len(repo.touched) != 1 || repo.touched[0] != 7 {
		t.Fatal("expected last_used to be touched")
	}
}

func TestAuthenticateUnknownAndInactiveLookAlike(t *testing.T) {
	repo := &mockKeyRepo{keys: map[string]domain.APIKey{
		"revoked": {ID: 1, Key: "revoked", Active: false},
	}}
	uc := NewAuthUsecase(repo)

	_, errUnknown := uc.Authenticate(context.Background(), "nope")
	_, errRevoked := uc.Authenticate(context.Background(), "revoked")

	if !errors.Is(errUnknown, domain.ErrAuthentication) || !errors.Is(errRevoked, domain.ErrAuthentication) {
		t.Fatalf("expected authentication errors, got %v / %v", errUnknown, errRevoked)
	}
	if errUnknown.Error() != errRevoked.Error() {
		t.Fatal("unknown and revoked keys must be indistinguishable to the caller")
	}
}

func TestAuthenticateTouchFailureDoesNotBlock(t *testing.T) {
	repo := &mockKeyRepo{
		keys: map[string]domain.APIKey{
			"good-key": {ID: 7, Key: "good-key", CreatedBy: "system", Active: true},
		},
		touchFail: errors.New("disk full"),
	}
	uc := NewAuthUsecase(repo)

	if _, err := uc.Authenticate(context.Background(), "good-key"); err != nil {
		t.Fatalf("last_used failure must not fail authentication: %v", err)
	}
}
