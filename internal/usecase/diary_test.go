package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dadscape/diary-api/internal/domain"
)

type mockDiaryRepo struct {
	diaries map[string]domain.ClanDiary
	patches map[string]DiaryPatch
	deleted []string
}

func newMockDiaryRepo() *mockDiaryRepo {
	return &mockDiaryRepo{
		diaries: map[string]domain.ClanDiary{},
		patches: map[string]DiaryPatch{},
	}
}

func (m *mockDiaryRepo) List(ctx context.Context, filter DiaryFilter) ([]domain.ClanDiary, error) {
	var out []domain.ClanDiary
	for _, d := range m.diaries {
		if filter.Category != "" && d.Category != filter.Category {
			continue
		}
		if filter.Active != nil && d.Active != *filter.Active {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *mockDiaryRepo) GetByID(ctx context.Context, id string) (domain.ClanDiary, error) {
	d, ok := m.diaries[id]
	if !ok {
		return domain.ClanDiary{}, domain.NotFoundError{Resource: "Diary"}
	}
	return d, nil
}

func (m *mockDiaryRepo) Create(ctx context.Context, diary domain.ClanDiary) error {
	m.diaries[diary.ID] = diary
	return nil
}

func (m *mockDiaryRepo) Update(ctx context.Context, id string, patch DiaryPatch) error {
	m.patches[id] = patch
	d := m.diaries[id]
	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.Category != nil {
		d.Category = *patch.Category
	}
	if patch.Version != nil {
		d.Version = *patch.Version
	}
	if patch.Tiers != nil {
		d.Tiers = *patch.Tiers
	}
	if patch.Active != nil {
		d.Active = *patch.Active
	}
	d.LastModified = patch.LastModified
	d.LastModifiedBy = patch.LastModifiedBy
	m.diaries[id] = d
	return nil
}

func (m *mockDiaryRepo) Delete(ctx context.Context, id string) error {
	delete(m.diaries, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockDiaryRepo) Categories(ctx context.Context) ([]string, error) {
	return nil, nil
}

func TestDiaryCreateAssignsServerFields(t *testing.T) {
	repo := newMockDiaryRepo()
	uc := NewDiaryUsecase(repo)

	diary, err := uc.Create(context.Background(), DiaryCreateInput{
		Name:      "Combat Diary",
		Category:  "PvM",
		CreatedBy: "TestAdmin",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if diary.ID == "" {
		t.Fatal("expected a generated id")
	}
	if diary.Version != "1.0" {
		t.Fatalf("expected version 1.0, got %s", diary.Version)
	}
	if !diary.Active {
		t.Fatal("expected active to default true")
	}
	if len(diary.Tiers) != 0 || diary.Tiers == nil {
		t.Fatal("expected empty, non-nil tiers")
	}
	if diary.CreatedBy != diary.LastModifiedBy {
		t.Fatal("expected creator and modifier to match on create")
	}
	if diary.CreatedDate != diary.LastModified {
		t.Fatal("expected both timestamps identical on create")
	}

	second, err := uc.Create(context.Background(), DiaryCreateInput{
		Name:      "Skilling Diary",
		Category:  "Skilling",
		CreatedBy: "TestAdmin",
	})
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if second.ID == diary.ID {
		t.Fatal("expected fresh id per create")
	}
}

func TestDiaryCreateListsMissingFields(t *testing.T) {
	uc := NewDiaryUsecase(newMockDiaryRepo())

	_, err := uc.Create(context.Background(), DiaryCreateInput{Name: "only name"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "category") || !strings.Contains(msg, "createdBy") {
		t.Fatalf("expected missing fields to be named, got %q", msg)
	}
	if strings.Contains(msg, "name,") || strings.HasSuffix(msg, "name") {
		t.Fatalf("supplied field must not be reported missing: %q", msg)
	}
}

func TestDiaryUpdatePatchesOnlySuppliedFields(t *testing.T) {
	repo := newMockDiaryRepo()
	repo.diaries["d1"] = domain.ClanDiary{
		ID:           "d1",
		Name:         "Original",
		Description:  "before",
		Category:     "PvM",
		Version:      "1.0",
		CreatedDate:  1000,
		CreatedBy:    "TestAdmin",
		LastModified: 1000,
		Active:       true,
		Tiers:        []domain.DiaryTier{},
	}
	uc := NewDiaryUsecase(repo)

	desc := "after"
	updated, err := uc.Update(context.Background(), "d1", DiaryUpdateInput{
		Description:    &desc,
		LastModifiedBy: "Editor",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	patch := repo.patches["d1"]
	if patch.Name != nil || patch.Category != nil || patch.Version != nil || patch.Active != nil || patch.Tiers != nil {
		t.Fatal("absent fields must not appear in the patch")
	}
	if patch.Description == nil || *patch.Description != "after" {
		t.Fatal("supplied description missing from patch")
	}
	if patch.LastModifiedBy != "Editor" {
		t.Fatalf("expected modifier Editor, got %s", patch.LastModifiedBy)
	}
	if patch.LastModified <= 1000 {
		t.Fatal("expected last modified timestamp to advance")
	}

	if updated.Name != "Original" || updated.Description != "after" {
		t.Fatalf("unexpected updated entity: %+v", updated)
	}
}

func TestDiaryUpdateAppliesZeroValues(t *testing.T) {
	repo := newMockDiaryRepo()
	repo.diaries["d1"] = domain.ClanDiary{ID: "d1", Description: "text", Active: true}
	uc := NewDiaryUsecase(repo)

	empty := ""
	inactive := false
	updated, err := uc.Update(context.Background(), "d1", DiaryUpdateInput{
		Description:    &empty,
		Active:         &inactive,
		LastModifiedBy: "Editor",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Description != "" {
		t.Fatal("explicit empty string must be applied")
	}
	if updated.Active {
		t.Fatal("explicit false must be applied")
	}
}

func TestDiaryUpdateUnknownID(t *testing.T) {
	uc := NewDiaryUsecase(newMockDiaryRepo())

	_, err := uc.Update(context.Background(), "nope", DiaryUpdateInput{LastModifiedBy: "x"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDiaryDeleteUnknownID(t *testing.T) {
	repo := newMockDiaryRepo()
	uc := NewDiaryUsecase(repo)

	err := uc.Delete(context.Background(), "nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatal("delete must not reach the repository for unknown ids")
	}
}
