package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"loandesk-backend/internal/adapter/middleware"
	"loandesk-backend/internal/domain/errs"
)

// bindValid binds the body into req and runs the validator. On failure it
// has already written the response and returns false.
func bindValid(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

// respondError maps domain errors onto status codes. Anything unknown is
// reported as a bare 500; the cause is left for the request logger.
func respondError(c echo.Context, err error) error {
	var ve *errs.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: ve.Field, Message: ve.Reason}},
		})
	case errors.Is(err, errs.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		c.Set(middleware.ContextKeyError, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func actorID(c echo.Context) string {
	return strings.TrimSpace(c.Request().Header.Get(middleware.HeaderUserID))
}

// pageParams reads ?before=<RFC3339> and ?limit=<n>.
func pageParams(c echo.Context) (time.Time, int, error) {
	var before time.Time
	if raw := c.QueryParam("before"); raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return before, 0, errs.Invalid("before", "must be an RFC3339 timestamp")
		}
		before = t
	}
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return before, 0, errs.Invalid("limit", "must be a positive integer")
		}
		limit = n
	}
	return before, limit, nil
}
