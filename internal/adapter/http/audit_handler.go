package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loandesk-backend/internal/usecase/audit"
)

type AuditHandler struct{ uc *audit.Usecase }

func NewAuditHandler(uc *audit.Usecase) *AuditHandler { return &AuditHandler{uc: uc} }

func (h *AuditHandler) List(c echo.Context) error {
	before, limit, err := pageParams(c)
	if err != nil {
		return respondError(c, err)
	}
	page, err := h.uc.List(c.Request().Context(), c.Param("workspace_id"), before, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}
