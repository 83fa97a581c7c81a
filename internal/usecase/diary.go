package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dadscape/diary-api/internal/domain"
)

// DiaryCreateInput carries the caller-supplied fields for a new diary.
// Everything else (id, version, timestamps, active flag) is assigned here.
type DiaryCreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	CreatedBy   string `json:"createdBy"`
}

// DiaryUpdateInput is the wire form of a partial update. Nil means the
// field was absent from the request and stays unchanged; empty string and
// false are real values and are applied.
type DiaryUpdateInput struct {
	Name           *string             `json:"name"`
	Description    *string             `json:"description"`
	Category       *string             `json:"category"`
	Version        *string             `json:"version"`
	Tiers          *[]domain.DiaryTier `json:"tiers"`
	Active         *bool               `json:"active"`
	LastModifiedBy string              `json:"lastModifiedBy"`
}

type DiaryUsecase struct {
	repo DiaryRepository
}

func NewDiaryUsecase(repo DiaryRepository) *DiaryUsecase {
	return &DiaryUsecase{repo: repo}
}

func (uc *DiaryUsecase) List(ctx context.Context, filter DiaryFilter) ([]domain.ClanDiary, error) {
	return uc.repo.List(ctx, filter)
}

func (uc *DiaryUsecase) Get(ctx context.Context, id string) (domain.ClanDiary, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *DiaryUsecase) Create(ctx context.Context, input DiaryCreateInput) (domain.ClanDiary, error) {
	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Category == "" {
		missing = append(missing, "category")
	}
	if input.CreatedBy == "" {
		missing = append(missing, "createdBy")
	}
	if len(missing) > 0 {
		return domain.ClanDiary{}, domain.ValidationError{
			Message: fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")),
		}
	}

	now := time.Now().UnixMilli()
	diary := domain.ClanDiary{
		ID:             uuid.NewString(),
		Name:           input.Name,
		Description:    input.Description,
		Category:       input.Category,
		Version:        "1.0",
		CreatedDate:    now,
		CreatedBy:      input.CreatedBy,
		LastModified:   now,
		LastModifiedBy: input.CreatedBy,
		Tiers:          []domain.DiaryTier{},
		Active:         true,
	}

	if err := uc.repo.Create(ctx, diary); err != nil {
		return domain.ClanDiary{}, err
	}
	return diary, nil
}

// Update applies a partial update and returns the re-read committed row,
// so the response reflects exactly what was stored.
func (uc *DiaryUsecase) Update(ctx context.Context, id string, input DiaryUpdateInput) (domain.ClanDiary, error) {
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return domain.ClanDiary{}, err
	}

	patch := DiaryPatch{
		Name:           input.Name,
		Description:    input.Description,
		Category:       input.Category,
		Version:        input.Version,
		Tiers:          input.Tiers,
		Active:         input.Active,
		LastModified:   time.Now().UnixMilli(),
		LastModifiedBy: input.LastModifiedBy,
	}

	if err := uc.repo.Update(ctx, id, patch); err != nil {
		return domain.ClanDiary{}, err
	}
	return uc.repo.GetByID(ctx, id)
}

func (uc *DiaryUsecase) Delete(ctx context.Context, id string) error {
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *DiaryUsecase) Categories(ctx context.Context) ([]string, error) {
	return uc.repo.Categories(ctx)
}
