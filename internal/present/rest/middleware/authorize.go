package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/dadscape/diary-api/internal/domain"
	"github.com/dadscape/diary-api/internal/present/rest/presenter"
	"github.com/dadscape/diary-api/internal/usecase"
)

// RankMiddleware enforces clan-rank requirements against a caller-asserted
// RSN. It assumes the auth middleware already ran; the credential itself
// is not re-checked here.
type RankMiddleware struct {
	members      *usecase.MemberUsecase
	minAdminRank int
}

func NewRankMiddleware(members *usecase.MemberUsecase, minAdminRank int) *RankMiddleware {
	return &RankMiddleware{members: members, minAdminRank: minAdminRank}
}

// RequireAdmin rejects callers whose asserted RSN is unknown or ranked
// below the configured minimum.
func (m *RankMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Rank.Middleware.RequireAdmin")
		defer span.End()
		c.SetRequest(c.Request().WithContext(ctx))

		rsn := extractRSN(c, false)
		if rsn == "" {
			return presenter.BadRequest(c, `RSN (RuneScape Name) is required for admin actions. Include "rsn" in request body or query params.`)
		}

		if err := m.members.CheckAdmin(ctx, rsn, m.minAdminRank); err != nil {
			span.RecordError(err)
			if errors.Is(err, domain.ErrAuthorization) {
				return presenter.Forbidden(c, err.Error())
			}
			return presenter.Error(c, err, "Authorization check failed")
		}

		return next(c)
	}
}

// RequireOwner rejects everyone but the clan owner (exact sentinel rank).
func (m *RankMiddleware) RequireOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Rank.Middleware.RequireOwner")
		defer span.End()
		c.SetRequest(c.Request().WithContext(ctx))

		rsn := extractRSN(c, false)
		if rsn == "" {
			return presenter.BadRequest(c, "RSN is required for owner-only actions")
		}

		if err := m.members.CheckOwner(ctx, rsn); err != nil {
			span.RecordError(err)
			if errors.Is(err, domain.ErrAuthorization) {
				return presenter.Forbidden(c, err.Error())
			}
			return presenter.Error(c, err, "Authorization check failed")
		}

		return next(c)
	}
}

// RequireMember only checks that the asserted RSN exists in the roster;
// rank is irrelevant.
func (m *RankMiddleware) RequireMember(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Rank.Middleware.RequireMember")
		defer span.End()
		c.SetRequest(c.Request().WithContext(ctx))

		rsn := extractRSN(c, true)
		if rsn == "" {
			return presenter.BadRequest(c, "RSN is required")
		}

		if err := m.members.CheckMember(ctx, rsn); err != nil {
			span.RecordError(err)
			if errors.Is(err, domain.ErrAuthorization) {
				return presenter.Forbidden(c, err.Error())
			}
			return presenter.Error(c, err, "Membership check failed")
		}

		return next(c)
	}
}

// extractRSN resolves the asserted username: body rsn, then query rsn,
// then the createdBy/lastModifiedBy body aliases. The membership variant
// additionally falls back to a :rsn route parameter instead of the
// aliases. The body is restored so handlers can still bind it.
func extractRSN(c echo.Context, paramFallback bool) string {
	body := peekJSONBody(c)

	if v, ok := body["rsn"].(string); ok && v != "" {
		return v
	}
	if v := c.QueryParam("rsn"); v != "" {
		return v
	}
	if paramFallback {
		return c.Param("rsn")
	}
	if v, ok := body["createdBy"].(string); ok && v != "" {
		return v
	}
	if v, ok := body["lastModifiedBy"].(string); ok && v != "" {
		return v
	}
	return ""
}

// peekJSONBody reads the request body non-destructively. Non-JSON or
// empty bodies yield nil.
func peekJSONBody(c echo.Context) map[string]any {
	req := c.Request()
	if req.Body == nil {
		return nil
	}

	raw, err := io.ReadAll(req.Body)
	req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return nil
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil
	}
	return body
}
