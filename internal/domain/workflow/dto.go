package workflow

import (
	"fmt"
	"time"

	"github.com/zenwork-hr/leave-backend-go/internal/pkg/validator"
)

type StepInput struct {
	Title   string   `json:"title,omitempty"`
	RoleIDs []string `json:"role_ids"`
	Kind    string   `json:"kind"`

	AutoForward bool `json:"auto_forward,omitempty"`
	AutoApprove bool `json:"auto_approve,omitempty"`
	Days        int  `json:"days,omitempty"`
	Hours       int  `json:"hours,omitempty"`
}

// SaveWorkflowRequest carries the full workflow; create and update share the
// payload shape and differ only in method and target id.
type SaveWorkflowRequest struct {
	Name          string      `json:"name"`
	EffectiveDate string      `json:"effective_date"` // YYYY-MM-DD
	Process       string      `json:"process"`
	SubProcesses  []string    `json:"sub_processes"`
	Steps         []StepInput `json:"steps"`
}

// Validate checks the payload shape and step-chain invariants. A step title
// may be empty; only the chain structure is enforced. The effective-date
// lower bound needs the company record and is checked by the service.
func (r *SaveWorkflowRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 255 characters"})
	}

	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "effective_date must be a valid YYYY-MM-DD date"})
	}

	process := Process(r.Process)
	allowedSubs := SubProcessesFor(process)
	if allowedSubs == nil {
		errs = append(errs, validator.ValidationError{Field: "process", Message: "process must be application, pto or comp-off"})
	} else {
		if len(r.SubProcesses) == 0 {
			errs = append(errs, validator.ValidationError{Field: "sub_processes", Message: "sub_processes must not be empty"})
		} else if !validator.IsSubset(r.SubProcesses, allowedSubs) {
			errs = append(errs, validator.ValidationError{
				Field:   "sub_processes",
				Message: fmt.Sprintf("sub_processes for %s may only contain: %v", r.Process, allowedSubs),
			})
		}
	}

	if len(r.Steps) == 0 {
		errs = append(errs, validator.ValidationError{Field: "steps", Message: "at least one approval step is required"})
	}
	for i, s := range r.Steps {
		prefix := fmt.Sprintf("steps[%d]", i)
		last := i == len(r.Steps)-1

		switch StepKind(s.Kind) {
		case StepIntermediate:
			if last {
				errs = append(errs, validator.ValidationError{Field: prefix + ".kind", Message: "the last step must be final"})
			}
			if s.AutoApprove {
				errs = append(errs, validator.ValidationError{Field: prefix + ".auto_approve", Message: "auto_approve is only valid on the final step"})
			}
		case StepFinal:
			if !last {
				errs = append(errs, validator.ValidationError{Field: prefix + ".kind", Message: "only the last step may be final"})
			}
			if s.AutoForward {
				errs = append(errs, validator.ValidationError{Field: prefix + ".auto_forward", Message: "auto_forward is only valid on intermediate steps"})
			}
			if s.AutoApprove {
				if s.Days < 0 || s.Hours < 0 {
					errs = append(errs, validator.ValidationError{Field: prefix, Message: "auto-approval timer must not be negative"})
				} else if s.Days == 0 && s.Hours == 0 {
					errs = append(errs, validator.ValidationError{Field: prefix, Message: "auto-approval requires a non-zero timer"})
				}
			}
		default:
			errs = append(errs, validator.ValidationError{Field: prefix + ".kind", Message: "kind must be intermediate or final"})
		}

		if len(s.RoleIDs) == 0 {
			errs = append(errs, validator.ValidationError{Field: prefix + ".role_ids", Message: "each step needs at least one approver role"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity builds the entity. Callers must Validate first.
func (r *SaveWorkflowRequest) ToEntity(companyID string) Workflow {
	effective, _ := validator.IsValidDate(r.EffectiveDate)
	steps := make(Steps, 0, len(r.Steps))
	for _, s := range r.Steps {
		steps = append(steps, Step{
			Title:       s.Title,
			RoleIDs:     s.RoleIDs,
			Kind:        StepKind(s.Kind),
			AutoForward: s.AutoForward,
			AutoApprove: s.AutoApprove,
			Days:        s.Days,
			Hours:       s.Hours,
		})
	}
	return Workflow{
		CompanyID:     companyID,
		Name:          r.Name,
		EffectiveDate: effective,
		Process:       Process(r.Process),
		SubProcesses:  r.SubProcesses,
		Steps:         steps,
	}
}

type WorkflowResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	EffectiveDate string    `json:"effective_date"`
	Process       Process   `json:"process"`
	SubProcesses  []string  `json:"sub_processes"`
	Steps         Steps     `json:"steps"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewWorkflowResponse(w Workflow) WorkflowResponse {
	return WorkflowResponse{
		ID:            w.ID,
		Name:          w.Name,
		EffectiveDate: w.EffectiveDate.Format("2006-01-02"),
		Process:       w.Process,
		SubProcesses:  w.SubProcesses,
		Steps:         w.Steps,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}
