package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domain "loandesk-backend/internal/domain/task"
	"loandesk-backend/internal/usecase/task"
)

type TaskHandler struct{ uc *task.Usecase }

func NewTaskHandler(uc *task.Usecase) *TaskHandler { return &TaskHandler{uc: uc} }

type taskStatusReq struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed"`
}

// a null or missing user_id clears the assignee
type taskAssigneeReq struct {
	UserID *string `json:"user_id" validate:"omitempty,hex32"`
}

func (h *TaskHandler) ListByLoanFile(c echo.Context) error {
	list, err := h.uc.ListByLoanFile(c.Request().Context(), c.Param("workspace_id"), c.Param("loan_file_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *TaskHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("workspace_id"), c.Param("task_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	var req taskStatusReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("workspace_id"), c.Param("task_id"), domain.Status(req.Status))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TaskHandler) Reassign(c echo.Context) error {
	var req taskAssigneeReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.Reassign(c.Request().Context(), c.Param("workspace_id"), c.Param("task_id"), req.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
