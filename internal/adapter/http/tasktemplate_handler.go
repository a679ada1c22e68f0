package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domain "loandesk-backend/internal/domain/tasktemplate"
	"loandesk-backend/internal/usecase/tasktemplate"
)

type TaskTemplateHandler struct{ uc *tasktemplate.Usecase }

func NewTaskTemplateHandler(uc *tasktemplate.Usecase) *TaskTemplateHandler {
	return &TaskTemplateHandler{uc: uc}
}

type taskTemplateReq struct {
	Title            string `json:"title"             validate:"required,max=255"`
	Role             string `json:"role"              validate:"required,role"`
	Instructions     string `json:"instructions"`
	Required         bool   `json:"required"`
	DueInDays        int    `json:"due_in_days"       validate:"gte=0,lte=3650"`
	AllowAttachments bool   `json:"allow_attachments"`
	Priority         string `json:"priority"          validate:"omitempty,priority"`
	Order            int    `json:"order"             validate:"gte=0"`
}

func (h *TaskTemplateHandler) Create(c echo.Context) error {
	var req taskTemplateReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.Create(c.Request().Context(), c.Param("workspace_id"), tasktemplate.Input{
		Title:            req.Title,
		Role:             domain.Role(req.Role),
		Instructions:     req.Instructions,
		Required:         req.Required,
		DueInDays:        req.DueInDays,
		AllowAttachments: req.AllowAttachments,
		Priority:         domain.Priority(req.Priority),
		Order:            req.Order,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *TaskTemplateHandler) List(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context(), c.Param("workspace_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *TaskTemplateHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("workspace_id"), c.Param("template_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TaskTemplateHandler) Update(c echo.Context) error {
	var in tasktemplate.UpdateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.Update(c.Request().Context(), c.Param("workspace_id"), c.Param("template_id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TaskTemplateHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("workspace_id"), c.Param("template_id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
