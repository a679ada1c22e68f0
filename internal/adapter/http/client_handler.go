package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loandesk-backend/internal/usecase/client"
	"loandesk-backend/internal/usecase/loanfile"
)

type ClientHandler struct {
	uc    *client.Usecase
	files *loanfile.Usecase
}

func NewClientHandler(uc *client.Usecase, files *loanfile.Usecase) *ClientHandler {
	return &ClientHandler{uc: uc, files: files}
}

type createClientReq struct {
	Name  string `json:"name"  validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
	Phone string `json:"phone" validate:"max=50"`
	Notes string `json:"notes"`
}

type updateClientReq struct {
	Name  *string `json:"name"  validate:"omitempty,max=255"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
	Phone *string `json:"phone" validate:"omitempty,max=50"`
	Notes *string `json:"notes"`
}

func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.Create(c.Request().Context(), c.Param("workspace_id"), client.CreateInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ClientHandler) List(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context(), c.Param("workspace_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ClientHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("workspace_id"), c.Param("client_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ClientHandler) Update(c echo.Context) error {
	var req updateClientReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.Update(c.Request().Context(), c.Param("workspace_id"), c.Param("client_id"), client.UpdateInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("workspace_id"), c.Param("client_id"), actorID(c)); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ClientHandler) ListLoanFiles(c echo.Context) error {
	list, err := h.files.ListByClient(c.Request().Context(), c.Param("workspace_id"), c.Param("client_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
