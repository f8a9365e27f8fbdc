package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/assignment"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/variant"
	"github.com/zenwork-hr/leave-backend-go/internal/handler/http/middleware"
	"github.com/zenwork-hr/leave-backend-go/internal/handler/http/response"
	variantService "github.com/zenwork-hr/leave-backend-go/internal/service/variant"
)

// VariantHandler serves the three policy families. One handler parameterized
// by variant.Type backs /leave-variants, /comp-off-variants and
// /pto-variants.
type VariantHandler interface {
	Create(t variant.Type) http.HandlerFunc
	Get(t variant.Type) http.HandlerFunc
	List(t variant.Type) http.HandlerFunc
	Update(t variant.Type) http.HandlerFunc
	Delete(t variant.Type) http.HandlerFunc

	BulkAssign(w http.ResponseWriter, r *http.Request)
	ListAssignments(w http.ResponseWriter, r *http.Request)
}

type variantHandlerImpl struct {
	variantService variantService.VariantService
}

func NewVariantHandler(variantService variantService.VariantService) VariantHandler {
	return &variantHandlerImpl{variantService: variantService}
}

func (h *variantHandlerImpl) Create(t variant.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req variant.CreateVariantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}

		result, err := h.variantService.Create(r.Context(), middleware.CompanyID(r), t, req)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		response.Created(w, "Variant created successfully", result)
	}
}

func (h *variantHandlerImpl) Get(t variant.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		result, err := h.variantService.Get(r.Context(), id, middleware.CompanyID(r), t)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		response.Success(w, result)
	}
}

func (h *variantHandlerImpl) List(t variant.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := h.variantService.List(r.Context(), middleware.CompanyID(r), t)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		response.Success(w, results)
	}
}

func (h *variantHandlerImpl) Update(t variant.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req variant.UpdateVariantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}

		result, err := h.variantService.Update(r.Context(), id, middleware.CompanyID(r), t, req)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		response.SuccessWithMessage(w, "Variant updated successfully", result)
	}
}

func (h *variantHandlerImpl) Delete(t variant.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := h.variantService.Delete(r.Context(), id, middleware.CompanyID(r), t); err != nil {
			response.HandleError(w, err)
			return
		}

		response.Success(w, map[string]string{"message": "Variant deleted successfully"})
	}
}

func (h *variantHandlerImpl) BulkAssign(w http.ResponseWriter, r *http.Request) {
	var req assignment.BulkAssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.variantService.BulkAssign(r.Context(), middleware.CompanyID(r), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Assignments replaced successfully"})
}

func (h *variantHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	variantID := chi.URLParam(r, "id")

	results, err := h.variantService.ListAssignments(r.Context(), variantID, middleware.CompanyID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
