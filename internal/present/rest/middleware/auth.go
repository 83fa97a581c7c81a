package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/dadscape/diary-api/internal/domain"
	"github.com/dadscape/diary-api/internal/present/rest/presenter"
	"github.com/dadscape/diary-api/internal/usecase"
)

var tracer = otel.Tracer("middleware")

type AuthMiddleware struct {
	auth *usecase.AuthUsecase
}

func NewAuthMiddleware(auth *usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAuth validates the bearer API key and attaches the key's
// creator identity to the request context. Rejections are all 401; the
// error text never distinguishes an unknown key from a revoked one.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.RequireAuth")
		defer span.End()

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return presenter.Unauthorized(c, "Missing or invalid authorization header. Expected: Authorization: Bearer <api-key>")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if strings.TrimSpace(token) == "" {
			return presenter.Unauthorized(c, "API key is empty")
		}

		key, err := m.auth.Authenticate(ctx, token)
		if err != nil {
			span.RecordError(err)
			if errors.Is(err, domain.ErrAuthentication) {
				return presenter.Unauthorized(c, err.Error())
			}
			return presenter.Error(c, err, "Authentication failed")
		}

		ctx = context.WithValue(ctx, domain.RequesterKeyCtxKey, key.Key)
		ctx = context.WithValue(ctx, domain.RequesterIdentityCtxKey, key.CreatedBy)
		span.SetAttributes(attribute.String("RequesterIdentity", key.CreatedBy))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// OptionalAuth performs the identical lookup but proceeds anonymously on
// any failure instead of rejecting.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.OptionalAuth")
		defer span.End()

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if strings.HasPrefix(authHeader, "Bearer ") {
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if strings.TrimSpace(token) != "" {
				key, err := m.auth.Authenticate(ctx, token)
				if err == nil {
					ctx = context.WithValue(ctx, domain.RequesterKeyCtxKey, key.Key)
					ctx = context.WithValue(ctx, domain.RequesterIdentityCtxKey, key.CreatedBy)
					span.SetAttributes(attribute.String("RequesterIdentity", key.CreatedBy))
				} else {
					span.RecordError(err)
				}
			}
		}

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
