package http

import (
	"encoding/json"
	"net/http"

	"github.com/zenwork-hr/leave-backend-go/internal/domain/company"
	"github.com/zenwork-hr/leave-backend-go/internal/handler/http/middleware"
	"github.com/zenwork-hr/leave-backend-go/internal/handler/http/response"
	setupService "github.com/zenwork-hr/leave-backend-go/internal/service/setup"
)

type SetupHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	Enable(w http.ResponseWriter, r *http.Request)
	Advance(w http.ResponseWriter, r *http.Request)
	Back(w http.ResponseWriter, r *http.Request)
}

type setupHandlerImpl struct {
	setupService setupService.SetupService
}

func NewSetupHandler(setupService setupService.SetupService) SetupHandler {
	return &setupHandlerImpl{setupService: setupService}
}

func (h *setupHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.setupService.Status(r.Context(), middleware.CompanyID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

func (h *setupHandlerImpl) Enable(w http.ResponseWriter, r *http.Request) {
	var req company.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	status, err := h.setupService.Enable(r.Context(), middleware.CompanyID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Setup enabled", status)
}

func (h *setupHandlerImpl) Advance(w http.ResponseWriter, r *http.Request) {
	status, err := h.setupService.Advance(r.Context(), middleware.CompanyID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

func (h *setupHandlerImpl) Back(w http.ResponseWriter, r *http.Request) {
	status, err := h.setupService.Back(r.Context(), middleware.CompanyID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}
