package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	pkgerrors "github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/dadscape/diary-api/internal/domain"
)

var tracer = otel.Tracer("auth")

type AuthUsecase struct {
	keys APIKeyRepository
}

func NewAuthUsecase(keys APIKeyRepository) *AuthUsecase {
	return &AuthUsecase{keys: keys}
}

// Authenticate validates a presented API key against the active key set.
// "Not found" and "revoked" are deliberately indistinguishable to the
// caller. The last-used timestamp update is best-effort: a failure there
// is logged but never blocks the request.
func (uc *AuthUsecase) Authenticate(ctx context.Context, key string) (domain.APIKey, error) {
	ctx, span := tracer.Start(ctx, "Auth.Usecase.Authenticate")
	defer span.End()

	record, err := uc.keys.FindActive(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.APIKey{}, domain.AuthenticationError{Message: "Invalid or inactive API key"}
		}
		span.RecordError(pkgerrors.Wrap(err, "api key lookup failed"))
		return domain.APIKey{}, err
	}

	if err := uc.keys.TouchLastUsed(ctx, record.ID, time.Now()); err != nil {
		span.RecordError(err)
		slog.WarnContext(ctx, "failed to update api key last_used",
			slog.Int64("keyID", record.ID),
			slog.String("error", err.Error()),
		)
	}

	return record, nil
}
