package response

import (
	"errors"
	"net/http"

	"github.com/zenwork-hr/leave-backend-go/internal/domain/assignment"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/auth"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/company"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/employee"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/leavetype"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/role"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/variant"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/workflow"
	"github.com/zenwork-hr/leave-backend-go/internal/pkg/validator"
	"github.com/zenwork-hr/leave-backend-go/internal/service/setup"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, auth.ErrCompanyIDRequired):
		Forbidden(w, "Company context required")

	// Company / setup errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, setup.ErrSetupNotEnabled):
		Conflict(w, "Setup has not been enabled")
	case errors.Is(err, setup.ErrSetupAlreadyCompleted):
		Conflict(w, "Setup has already been completed")

	// Leave type errors
	case errors.Is(err, leavetype.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leavetype.ErrLeaveTypeNameExists):
		Conflict(w, "Leave type name already exists")

	// Variant / assignment errors
	case errors.Is(err, variant.ErrVariantNotFound):
		NotFound(w, "Variant not found")
	case errors.Is(err, variant.ErrUnknownType):
		BadRequest(w, "Unknown variant type", nil)
	case errors.Is(err, assignment.ErrKindMismatch):
		BadRequest(w, "Assignment type does not match the variant type", nil)

	// Role errors
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, role.ErrRoleNameExists):
		Conflict(w, "Role name already exists")

	// Workflow errors
	case errors.Is(err, workflow.ErrWorkflowNotFound):
		NotFound(w, "Workflow not found")

	// Employee directory errors
	case errors.Is(err, employee.ErrDirectoryUnavailable):
		BadGateway(w, "Employee directory is unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
