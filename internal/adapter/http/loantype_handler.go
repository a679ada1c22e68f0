package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	ltDomain "loandesk-backend/internal/domain/loantype"
	"loandesk-backend/internal/usecase/loantype"
)

type LoanTypeHandler struct{ uc *loantype.Usecase }

func NewLoanTypeHandler(uc *loantype.Usecase) *LoanTypeHandler { return &LoanTypeHandler{uc: uc} }

type loanTypeReq struct {
	Name        string   `json:"name"        validate:"required,max=255"`
	Description string   `json:"description"`
	Category    string   `json:"category"    validate:"max=100"`
	Stages      []string `json:"stages"      validate:"dive,required,max=100"`
	MinAmount   float64  `json:"min_amount"  validate:"gte=0,dec2"`
	MaxAmount   float64  `json:"max_amount"  validate:"gte=0,dec2"`
	MinRate     float64  `json:"min_rate"    validate:"gte=0,lte=100"`
	MaxRate     float64  `json:"max_rate"    validate:"gte=0,lte=100"`
	Status      string   `json:"status"      validate:"omitempty,oneof=active inactive"`
}

type attachTemplateReq struct {
	TemplateID string `json:"template_id" validate:"required,hex32"`
}

func (h *LoanTypeHandler) Create(c echo.Context) error {
	var req loanTypeReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.Create(c.Request().Context(), c.Param("workspace_id"), loantype.Input{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Stages:      req.Stages,
		MinAmount:   req.MinAmount,
		MaxAmount:   req.MaxAmount,
		MinRate:     req.MinRate,
		MaxRate:     req.MaxRate,
		Status:      ltDomain.Status(req.Status),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *LoanTypeHandler) List(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context(), c.Param("workspace_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *LoanTypeHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("workspace_id"), c.Param("loan_type_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Update is a partial update; the usecase re-validates the merged result.
func (h *LoanTypeHandler) Update(c echo.Context) error {
	var in loantype.UpdateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.Update(c.Request().Context(), c.Param("workspace_id"), c.Param("loan_type_id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanTypeHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("workspace_id"), c.Param("loan_type_id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LoanTypeHandler) ListTemplates(c echo.Context) error {
	list, err := h.uc.ListTemplates(c.Request().Context(), c.Param("workspace_id"), c.Param("loan_type_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *LoanTypeHandler) AttachTemplate(c echo.Context) error {
	var req attachTemplateReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	err := h.uc.AttachTemplate(c.Request().Context(), c.Param("workspace_id"), c.Param("loan_type_id"), req.TemplateID)
	if err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LoanTypeHandler) DetachTemplate(c echo.Context) error {
	err := h.uc.DetachTemplate(c.Request().Context(), c.Param("workspace_id"), c.Param("loan_type_id"), c.Param("template_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
