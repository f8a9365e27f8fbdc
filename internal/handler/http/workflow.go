package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/workflow"
	"github.com/zenwork-hr/leave-backend-go/internal/handler/http/middleware"
	"github.com/zenwork-hr/leave-backend-go/internal/handler/http/response"
	workflowService "github.com/zenwork-hr/leave-backend-go/internal/service/workflow"
)

type WorkflowHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type workflowHandlerImpl struct {
	workflowService workflowService.WorkflowService
}

func NewWorkflowHandler(workflowService workflowService.WorkflowService) WorkflowHandler {
	return &workflowHandlerImpl{workflowService: workflowService}
}

func (h *workflowHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req workflow.SaveWorkflowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workflowService.Create(r.Context(), middleware.CompanyID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Workflow created successfully", result)
}

func (h *workflowHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.workflowService.Get(r.Context(), id, middleware.CompanyID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workflowHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.workflowService.List(r.Context(), middleware.CompanyID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *workflowHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req workflow.SaveWorkflowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workflowService.Update(r.Context(), id, middleware.CompanyID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Workflow updated successfully", result)
}

func (h *workflowHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.workflowService.Delete(r.Context(), id, middleware.CompanyID(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Workflow deleted successfully"})
}
