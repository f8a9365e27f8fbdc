package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/role"
	"github.com/zenwork-hr/leave-backend-go/internal/handler/http/middleware"
	"github.com/zenwork-hr/leave-backend-go/internal/handler/http/response"
	roleService "github.com/zenwork-hr/leave-backend-go/internal/service/role"
)

type RoleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	SeedDefaults(w http.ResponseWriter, r *http.Request)
}

type roleHandlerImpl struct {
	roleService roleService.RoleService
}

func NewRoleHandler(roleService roleService.RoleService) RoleHandler {
	return &roleHandlerImpl{roleService: roleService}
}

func (h *roleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req role.CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.roleService.Create(r.Context(), middleware.CompanyID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Role created successfully", result)
}

func (h *roleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.roleService.Get(r.Context(), id, middleware.CompanyID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *roleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.roleService.List(r.Context(), middleware.CompanyID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *roleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req role.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.roleService.Update(r.Context(), id, middleware.CompanyID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role updated successfully", result)
}

func (h *roleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.roleService.Delete(r.Context(), id, middleware.CompanyID(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Role deleted successfully"})
}

func (h *roleHandlerImpl) SeedDefaults(w http.ResponseWriter, r *http.Request) {
	results, err := h.roleService.EnsureDefaults(r.Context(), middleware.CompanyID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Default roles ensured", results)
}
