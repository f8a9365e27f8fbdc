package assignment

import (
	"fmt"

	"github.com/zenwork-hr/leave-backend-go/internal/pkg/validator"
)

type AssignmentInput struct {
	UserID         string `json:"user_id"`
	LeaveVariantID string `json:"leave_variant_id"`
	AssignmentType string `json:"assignment_type"`
}

// BulkAssignRequest replaces the assignment set of each referenced variant in
// a single call.
type BulkAssignRequest struct {
	Assignments []AssignmentInput `json:"assignments"`
}

func (r *BulkAssignRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Assignments) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "assignments",
			Message: "assignments must not be empty",
		})
	}

	for i, a := range r.Assignments {
		prefix := fmt.Sprintf("assignments[%d]", i)
		if validator.IsEmpty(a.UserID) {
			errs = append(errs, validator.ValidationError{Field: prefix + ".user_id", Message: "user_id is required"})
		}
		if validator.IsEmpty(a.LeaveVariantID) {
			errs = append(errs, validator.ValidationError{Field: prefix + ".leave_variant_id", Message: "leave_variant_id is required"})
		}
		if !Kind(a.AssignmentType).Valid() {
			errs = append(errs, validator.ValidationError{Field: prefix + ".assignment_type", Message: "assignment_type must be leave_variant, comp_off_variant or pto_variant"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignmentResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	VariantID string `json:"variant_id"`
	Kind      Kind   `json:"assignment_type"`
}

func NewAssignmentResponse(a Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		VariantID: a.VariantID,
		Kind:      a.Kind,
	}
}
