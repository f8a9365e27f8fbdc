package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/leavetype"
	"github.com/zenwork-hr/leave-backend-go/internal/handler/http/middleware"
	"github.com/zenwork-hr/leave-backend-go/internal/handler/http/response"
	leavetypeService "github.com/zenwork-hr/leave-backend-go/internal/service/leavetype"
)

type LeaveTypeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type leaveTypeHandlerImpl struct {
	leaveTypeService leavetypeService.LeaveTypeService
}

func NewLeaveTypeHandler(leaveTypeService leavetypeService.LeaveTypeService) LeaveTypeHandler {
	return &leaveTypeHandlerImpl{leaveTypeService: leaveTypeService}
}

func (h *leaveTypeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leavetype.CreateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveTypeService.Create(r.Context(), middleware.CompanyID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave type created successfully", result)
}

func (h *leaveTypeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.leaveTypeService.Get(r.Context(), id, middleware.CompanyID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *leaveTypeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.leaveTypeService.List(r.Context(), middleware.CompanyID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *leaveTypeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req leavetype.UpdateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveTypeService.Update(r.Context(), id, middleware.CompanyID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type updated successfully", result)
}

func (h *leaveTypeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.leaveTypeService.Delete(r.Context(), id, middleware.CompanyID(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Leave type deleted successfully"})
}
