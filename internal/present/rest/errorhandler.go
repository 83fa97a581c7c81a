package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dadscape/diary-api/internal/present/rest/presenter"
)

// HTTPErrorHandler is the final pipeline stage: unmatched routes become a
// 404 envelope naming the method and path, and anything else that escaped
// the handlers becomes a 500 envelope. Internal detail goes to the log,
// never to the caller.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	req := c.Request()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound:
			_ = presenter.NotFound(c, fmt.Sprintf("Route not found: %s %s", req.Method, req.URL.Path))
			return
		case http.StatusMethodNotAllowed:
			_ = c.JSON(http.StatusMethodNotAllowed, presenter.Envelope{
				Success: false,
				Error:   fmt.Sprintf("Method not allowed: %s %s", req.Method, req.URL.Path),
			})
			return
		}
	}

	slog.ErrorContext(req.Context(), "unhandled request error",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("error", err.Error()),
	)
	_ = presenter.InternalError(c, "Internal server error")
}
