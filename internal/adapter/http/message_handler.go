package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loandesk-backend/internal/usecase/message"
)

type MessageHandler struct{ uc *message.Usecase }

func NewMessageHandler(uc *message.Usecase) *MessageHandler { return &MessageHandler{uc: uc} }

type createMessageReq struct {
	Body string `json:"body" validate:"required"`
}

func (h *MessageHandler) Create(c echo.Context) error {
	var req createMessageReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.Create(c.Request().Context(), c.Param("workspace_id"), c.Param("loan_file_id"), message.CreateInput{
		SenderID: actorID(c),
		Body:     req.Body,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *MessageHandler) List(c echo.Context) error {
	before, limit, err := pageParams(c)
	if err != nil {
		return respondError(c, err)
	}
	page, err := h.uc.List(c.Request().Context(), c.Param("workspace_id"), c.Param("loan_file_id"), before, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *MessageHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("workspace_id"), c.Param("message_id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
