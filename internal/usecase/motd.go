package usecase

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dadscape/diary-api/internal/domain"
)

// MotdSetInput distinguishes an absent motd field (nil, rejected) from an
// empty string (valid value that clears the message).
type MotdSetInput struct {
	Motd *string `json:"motd"`
	RSN  string  `json:"rsn"`
}

type MotdUsecase struct {
	repo ConfigRepository
}

func NewMotdUsecase(repo ConfigRepository) *MotdUsecase {
	return &MotdUsecase{repo: repo}
}

// Get returns the message of the day, or an empty string when it has
// never been set.
func (uc *MotdUsecase) Get(ctx context.Context) (string, error) {
	entry, err := uc.repo.Get(ctx, domain.MotdConfigKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return entry.Value, nil
}

func (uc *MotdUsecase) Set(ctx context.Context, input MotdSetInput) (string, error) {
	if input.Motd == nil {
		return "", domain.ValidationError{Message: "MOTD text is required in request body"}
	}

	// bound is in characters, not bytes
	text := *input.Motd
	if utf8.RuneCountInString(text) > domain.MotdMaxLength {
		return "", domain.ValidationError{
			Message: fmt.Sprintf("MOTD must be %d characters or less", domain.MotdMaxLength),
		}
	}

	updatedBy := input.RSN
	if updatedBy == "" {
		updatedBy = "unknown"
	}

	err := uc.repo.Upsert(ctx, domain.ConfigEntry{
		Key:       domain.MotdConfigKey,
		Value:     text,
		UpdatedBy: updatedBy,
	})
	if err != nil {
		return "", err
	}
	return text, nil
}
