package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dadscape/diary-api/internal/present/rest/middleware"
	"github.com/dadscape/diary-api/internal/present/rest/presenter"
	"github.com/dadscape/diary-api/internal/usecase"
)

type Handler struct {
	diary *usecase.DiaryUsecase
	motd  *usecase.MotdUsecase
}

func NewHandler(
	diary *usecase.DiaryUsecase,
	motd *usecase.MotdUsecase,
) *Handler {
	return &Handler{
		diary: diary,
		motd:  motd,
	}
}

// RegisterRoutes wires the request pipeline: auth guard on everything
// under /api, rank guard on mutating routes, plus any extra middleware
// (rate limiting) scoped to the API group only.
func (h *Handler) RegisterRoutes(
	e *echo.Echo,
	auth *middleware.AuthMiddleware,
	rank *middleware.RankMiddleware,
	extra ...echo.MiddlewareFunc,
) {
	e.GET("/health", h.handleHealth)

	api := e.Group("/api", extra...)
	api.Use(auth.RequireAuth)

	diaries := api.Group("/diaries")
	diaries.GET("", h.handleListDiaries)
	diaries.GET("/categories", h.handleCategories)
	diaries.GET("/:id", h.handleGetDiary)
	diaries.POST("", h.handleCreateDiary, rank.RequireAdmin)
	diaries.PUT("/:id", h.handleUpdateDiary, rank.RequireAdmin)
	diaries.DELETE("/:id", h.handleDeleteDiary, rank.RequireAdmin)

	motd := api.Group("/motd")
	motd.GET("", h.handleGetMotd)
	motd.POST("", h.handleSetMotd, rank.RequireAdmin)
	motd.PUT("", h.handleSetMotd, rank.RequireAdmin)
}

// Health carries the timestamp beside the message rather than under
// data, so existing monitoring keeps parsing it.
func (h *Handler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"message":   "DadScape Diary API is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) handleListDiaries(c echo.Context) error {
	ctx := c.Request().Context()

	filter := usecase.DiaryFilter{Category: c.QueryParam("category")}
	if c.QueryParams().Has("active") {
		active := c.QueryParam("active") == "true"
		filter.Active = &active
	}

	diaries, err := h.diary.List(ctx, filter)
	if err != nil {
		return presenter.Error(c, err, "Failed to fetch diaries")
	}
	return presenter.OK(c, diaries)
}

func (h *Handler) handleCategories(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.diary.Categories(ctx)
	if err != nil {
		return presenter.Error(c, err, "Failed to fetch categories")
	}
	if categories == nil {
		categories = []string{}
	}
	return presenter.OK(c, categories)
}

func (h *Handler) handleGetDiary(c echo.Context) error {
	ctx := c.Request().Context()

	diary, err := h.diary.Get(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err, "Failed to fetch diary")
	}
	return presenter.OK(c, diary)
}

func (h *Handler) handleCreateDiary(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.DiaryCreateInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}

	diary, err := h.diary.Create(ctx, input)
	if err != nil {
		return presenter.Error(c, err, "Failed to create diary")
	}
	return presenter.Created(c, diary, "Diary created successfully")
}

func (h *Handler) handleUpdateDiary(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.DiaryUpdateInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}

	diary, err := h.diary.Update(ctx, c.Param("id"), input)
	if err != nil {
		return presenter.Error(c, err, "Failed to update diary")
	}
	return presenter.OKMessage(c, diary, "Diary updated successfully")
}

func (h *Handler) handleDeleteDiary(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.diary.Delete(ctx, c.Param("id")); err != nil {
		return presenter.Error(c, err, "Failed to delete diary")
	}
	return presenter.Message(c, "Diary deleted successfully")
}

func (h *Handler) handleGetMotd(c echo.Context) error {
	ctx := c.Request().Context()

	motd, err := h.motd.Get(ctx)
	if err != nil {
		return presenter.Error(c, err, "Failed to fetch message of the day")
	}
	return presenter.OK(c, motd)
}

func (h *Handler) handleSetMotd(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.MotdSetInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}

	motd, err := h.motd.Set(ctx, input)
	if err != nil {
		return presenter.Error(c, err, "Failed to update message of the day")
	}
	return presenter.OKMessage(c, motd, "Message of the day updated successfully")
}
