package company

import (
	"time"

	"github.com/zenwork-hr/leave-backend-go/internal/pkg/validator"
)

type CreateCompanyRequest struct {
	Name          string `json:"name"`
	EffectiveDate string `json:"effective_date"` // YYYY-MM-DD
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "effective_date must be a valid YYYY-MM-DD date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateCompanyRequest) ToEntity() Company {
	effective, _ := validator.IsValidDate(r.EffectiveDate)
	return Company{
		Name:          r.Name,
		EffectiveDate: effective,
	}
}

type CompanyResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	EffectiveDate  string    `json:"effective_date"`
	SetupStep      int       `json:"setup_step"`
	SetupCompleted bool      `json:"setup_completed"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewCompanyResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:             c.ID,
		Name:           c.Name,
		EffectiveDate:  c.EffectiveDate.Format("2006-01-02"),
		SetupStep:      c.SetupStep,
		SetupCompleted: c.SetupCompleted,
		CreatedAt:      c.CreatedAt,
	}
}
