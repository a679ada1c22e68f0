package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domain "loandesk-backend/internal/domain/workspace"
	"loandesk-backend/internal/usecase/workspace"
)

type WorkspaceHandler struct{ uc *workspace.Usecase }

func NewWorkspaceHandler(uc *workspace.Usecase) *WorkspaceHandler { return &WorkspaceHandler{uc: uc} }

type createWorkspaceReq struct {
	Name string `json:"name" validate:"required,max=255"`
	Slug string `json:"slug" validate:"required,max=100"`
}

type updateWorkspaceReq struct {
	Name *string `json:"name" validate:"omitempty,max=255"`
	Slug *string `json:"slug" validate:"omitempty,max=100"`
}

type addMemberReq struct {
	UserID string `json:"user_id" validate:"required,hex32"`
	Role   string `json:"role"    validate:"required,member_role"`
}

// Create makes the caller the owner.
func (h *WorkspaceHandler) Create(c echo.Context) error {
	var req createWorkspaceReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	w, err := h.uc.Create(c.Request().Context(), workspace.CreateInput{Name: req.Name, Slug: req.Slug, OwnerID: actorID(c)})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, w)
}

func (h *WorkspaceHandler) List(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *WorkspaceHandler) Get(c echo.Context) error {
	w, err := h.uc.Get(c.Request().Context(), c.Param("workspace_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, w)
}

func (h *WorkspaceHandler) Update(c echo.Context) error {
	var req updateWorkspaceReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	w, err := h.uc.Update(c.Request().Context(), c.Param("workspace_id"), workspace.UpdateInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, w)
}

func (h *WorkspaceHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("workspace_id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *WorkspaceHandler) AddMember(c echo.Context) error {
	var req addMemberReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	m, err := h.uc.AddMember(c.Request().Context(), c.Param("workspace_id"), workspace.MemberInput{
		UserID: req.UserID,
		Role:   domain.Role(req.Role),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *WorkspaceHandler) ListMembers(c echo.Context) error {
	list, err := h.uc.ListMembers(c.Request().Context(), c.Param("workspace_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *WorkspaceHandler) RemoveMember(c echo.Context) error {
	if err := h.uc.RemoveMember(c.Request().Context(), c.Param("workspace_id"), c.Param("user_id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
