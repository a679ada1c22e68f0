package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domain "loandesk-backend/internal/domain/loanfile"
	"loandesk-backend/internal/usecase/loanfile"
	"loandesk-backend/internal/usecase/provisioning"
)

type LoanFileHandler struct {
	provision *provisioning.Usecase
	uc        *loanfile.Usecase
}

func NewLoanFileHandler(p *provisioning.Usecase, uc *loanfile.Usecase) *LoanFileHandler {
	return &LoanFileHandler{provision: p, uc: uc}
}

type createLoanFileReq struct {
	LoanTypeID string `json:"loan_type_id" validate:"required,hex32"`
	ClientID   string `json:"client_id"    validate:"required,hex32"`
	AdvisorID  string `json:"advisor_id"   validate:"required,hex32"`
}

type loanFileStatusReq struct {
	Status string `json:"status" validate:"required,oneof=draft in_progress under_review approved closed"`
}

type loanFileStageReq struct {
	Stage string `json:"stage" validate:"required,max=100"`
}

// Create provisions a loan file together with its tasks.
func (h *LoanFileHandler) Create(c echo.Context) error {
	var req createLoanFileReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	res, err := h.provision.CreateFromLoanType(c.Request().Context(), provisioning.CreateInput{
		WorkspaceID: c.Param("workspace_id"),
		LoanTypeID:  req.LoanTypeID,
		ClientID:    req.ClientID,
		AdvisorID:   req.AdvisorID,
		ActorID:     actorID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *LoanFileHandler) List(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context(), c.Param("workspace_id"), domain.Status(c.QueryParam("status")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *LoanFileHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("workspace_id"), c.Param("loan_file_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanFileHandler) UpdateStatus(c echo.Context) error {
	var req loanFileStatusReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("workspace_id"), c.Param("loan_file_id"),
		domain.Status(req.Status), actorID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanFileHandler) UpdateStage(c echo.Context) error {
	var req loanFileStageReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.UpdateStage(c.Request().Context(), c.Param("workspace_id"), c.Param("loan_file_id"),
		req.Stage, actorID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
