package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/zenwork-hr/leave-backend-go/internal/domain/employee"
	"github.com/zenwork-hr/leave-backend-go/internal/handler/http/middleware"
	"github.com/zenwork-hr/leave-backend-go/internal/handler/http/response"
	"github.com/zenwork-hr/leave-backend-go/internal/service/roster"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UpdateSelection(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	rosterService roster.RosterService
}

func NewEmployeeHandler(rosterService roster.RosterService) EmployeeHandler {
	return &employeeHandlerImpl{rosterService: rosterService}
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := employee.Filter{
		Search:        q.Get("search"),
		Genders:       splitParam(q.Get("gender")),
		WorkerTypes:   splitParam(q.Get("worker_type")),
		Attributes:    splitParam(q.Get("attribute")),
		SubAttributes: splitParam(q.Get("sub_attribute")),
		Status:        q.Get("status"),
	}

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result, err := h.rosterService.List(r.Context(), middleware.CompanyID(r), f, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Employees, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.Total,
		TotalPages: totalPages(result.Total, result.Limit),
		Degraded:   result.Degraded,
	})
}

type selectionRequest struct {
	Action      string   `json:"action"` // toggle, select, deselect, clear
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

// UpdateSelection mutates the assignment selection. Picks are keyed by
// employee id, so they survive filter and search changes on the grid.
func (h *employeeHandlerImpl) UpdateSelection(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	sel := h.rosterService.Selection(middleware.CompanyID(r))

	switch req.Action {
	case "toggle":
		for _, id := range req.EmployeeIDs {
			sel.Toggle(id)
		}
	case "select":
		sel.Add(req.EmployeeIDs...)
	case "deselect":
		sel.Remove(req.EmployeeIDs...)
	case "clear":
		sel.Clear()
	default:
		response.BadRequest(w, "action must be toggle, select, deselect or clear", nil)
		return
	}

	response.Success(w, map[string]interface{}{
		"selected_ids": sel.IDs(),
		"count":        sel.Count(),
	})
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
