package variant

import (
	"math"
	"time"

	"github.com/zenwork-hr/leave-backend-go/internal/pkg/validator"
)

var allowedGenders = []string{"male", "female"}

// CreateVariantRequest is the full payload for creating a variant of any
// type. The same rule set validates leave, comp-off and BTO/PTO variants.
type CreateVariantRequest struct {
	LeaveTypeID string `json:"leave_type_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`

	LeavesGrantedOn    string      `json:"leaves_granted_on"`
	PaidDaysInYear     float64     `json:"paid_days_in_year"`
	GrantFrequency     string      `json:"grant_frequency"`
	ProRataCalculation string      `json:"pro_rata_calculation"`
	OnboardingSlabs    []SlabInput `json:"onboarding_slabs,omitempty"`
	ExitSlabs          []SlabInput `json:"exit_slabs,omitempty"`

	ApplicableGenders   []string `json:"applicable_genders"`
	ApplicableAfterType string   `json:"applicable_after_type"`
	ApplicableAfterDays int      `json:"applicable_after_days,omitempty"`

	MustBePlannedInAdvance int    `json:"must_be_planned_in_advance,omitempty"`
	GracePeriod            int    `json:"grace_period,omitempty"`
	AllowHalfDay           bool   `json:"allow_half_day"`
	Withdrawal             string `json:"withdrawal,omitempty"`

	SupportingDocuments     bool   `json:"supporting_documents"`
	SupportingDocumentsText string `json:"supporting_documents_text,omitempty"`

	Encashment            bool   `json:"encashment"`
	EncashmentCalculation string `json:"encashment_calculation,omitempty"`
	MaxEncashmentDays     *int   `json:"max_encashment_days,omitempty"`

	// Employees staged for assignment before the variant has an id. The
	// service assigns them in the same transaction once the create returns.
	AssignEmployeeIDs []string `json:"assign_employee_ids,omitempty"`
}

// Validate runs the whole rule set and reports every violation.
func (r *CreateVariantRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 255 characters"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}

	if r.SupportingDocuments && validator.IsEmpty(r.SupportingDocumentsText) {
		errs = append(errs, validator.ValidationError{
			Field:   "supporting_documents_text",
			Message: "supporting_documents_text is required when supporting_documents is enabled",
		})
	}

	switch GrantedOn(r.LeavesGrantedOn) {
	case GrantedOnCalendarDays, GrantedOnCompliance:
	default:
		errs = append(errs, validator.ValidationError{Field: "leaves_granted_on", Message: "leaves_granted_on must be calendar_days or compliance"})
	}

	freq := GrantFrequency(r.GrantFrequency)
	if freq.PeriodsPerYear() == 0 {
		errs = append(errs, validator.ValidationError{Field: "grant_frequency", Message: "grant_frequency must be per_month, per_quarter, per_half_year or per_year"})
	}

	if r.PaidDaysInYear < 0 {
		errs = append(errs, validator.ValidationError{Field: "paid_days_in_year", Message: "paid_days_in_year must not be negative"})
	} else if r.AllowHalfDay {
		if math.Mod(r.PaidDaysInYear*2, 1) != 0 {
			errs = append(errs, validator.ValidationError{Field: "paid_days_in_year", Message: "paid_days_in_year supports half-day precision only"})
		}
	} else if math.Mod(r.PaidDaysInYear, 1) != 0 {
		errs = append(errs, validator.ValidationError{Field: "paid_days_in_year", Message: "paid_days_in_year must be a whole number unless half days are enabled"})
	}

	switch ProRataMethod(r.ProRataCalculation) {
	case ProRataFullMonth, ProRataRoundingOff:
	case ProRataSlabSystem:
		if len(r.OnboardingSlabs) == 0 && len(r.ExitSlabs) == 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "pro_rata_calculation",
				Message: "slab_system requires at least one onboarding or exit slab",
			})
		}
		if len(r.OnboardingSlabs) > 0 {
			errs = append(errs, ValidateSlabSet("onboarding_slabs", r.OnboardingSlabs, r.PaidDaysInYear, freq)...)
		}
		if len(r.ExitSlabs) > 0 {
			errs = append(errs, ValidateSlabSet("exit_slabs", r.ExitSlabs, r.PaidDaysInYear, freq)...)
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "pro_rata_calculation", Message: "pro_rata_calculation must be full_month, slab_system or rounding_off"})
	}

	if len(r.ApplicableGenders) == 0 {
		errs = append(errs, validator.ValidationError{Field: "applicable_genders", Message: "applicable_genders must not be empty"})
	} else if !validator.IsSubset(r.ApplicableGenders, allowedGenders) {
		errs = append(errs, validator.ValidationError{Field: "applicable_genders", Message: "applicable_genders may only contain male and female"})
	}

	switch ApplicableAfterType(r.ApplicableAfterType) {
	case ApplicableAfterDays:
		if r.ApplicableAfterDays <= 0 {
			errs = append(errs, validator.ValidationError{Field: "applicable_after_days", Message: "applicable_after_days must be positive when applicable_after_type is days"})
		}
	case ApplicableAfterProbationEnd, ApplicableAfterJoining:
	default:
		errs = append(errs, validator.ValidationError{Field: "applicable_after_type", Message: "applicable_after_type must be days, probation_end or date_of_joining"})
	}

	if r.MustBePlannedInAdvance < 0 {
		errs = append(errs, validator.ValidationError{Field: "must_be_planned_in_advance", Message: "must_be_planned_in_advance must not be negative"})
	}
	if r.GracePeriod < 0 {
		errs = append(errs, validator.ValidationError{Field: "grace_period", Message: "grace_period must not be negative"})
	}

	if r.Withdrawal != "" && !Withdrawal(r.Withdrawal).Valid() {
		errs = append(errs, validator.ValidationError{Field: "withdrawal", Message: "withdrawal must be before_approval, after_approval or not_allowed"})
	}

	if r.Encashment {
		if validator.IsEmpty(r.EncashmentCalculation) {
			errs = append(errs, validator.ValidationError{Field: "encashment_calculation", Message: "encashment_calculation is required when encashment is enabled"})
		}
		if r.MaxEncashmentDays == nil {
			errs = append(errs, validator.ValidationError{Field: "max_encashment_days", Message: "max_encashment_days is required when encashment is enabled"})
		} else if *r.MaxEncashmentDays <= 0 && *r.MaxEncashmentDays != NoEncashmentLimit {
			errs = append(errs, validator.ValidationError{Field: "max_encashment_days", Message: "max_encashment_days must be positive, or -1 for no limit"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity builds the normalized entity. Callers must Validate first.
func (r *CreateVariantRequest) ToEntity(companyID string, t Type) Variant {
	v := Variant{
		CompanyID:   companyID,
		LeaveTypeID: r.LeaveTypeID,
		Type:        t,
		Name:        r.Name,
		Description: r.Description,

		LeavesGrantedOn:    GrantedOn(r.LeavesGrantedOn),
		PaidDaysInYear:     r.PaidDaysInYear,
		GrantFrequency:     GrantFrequency(r.GrantFrequency),
		ProRataCalculation: ProRataMethod(r.ProRataCalculation),
		OnboardingSlabs:    toSlabSet(r.OnboardingSlabs),
		ExitSlabs:          toSlabSet(r.ExitSlabs),

		ApplicableGenders:   r.ApplicableGenders,
		ApplicableAfterType: ApplicableAfterType(r.ApplicableAfterType),
		ApplicableAfterDays: r.ApplicableAfterDays,

		MustBePlannedInAdvance: r.MustBePlannedInAdvance,
		GracePeriod:            r.GracePeriod,
		AllowHalfDay:           r.AllowHalfDay,
		Withdrawal:             Withdrawal(r.Withdrawal),

		SupportingDocuments:     r.SupportingDocuments,
		SupportingDocumentsText: r.SupportingDocumentsText,

		Encashment:            r.Encashment,
		EncashmentCalculation: r.EncashmentCalculation,
	}
	if r.MaxEncashmentDays != nil {
		v.MaxEncashmentDays = EncodeMaxEncashmentDays(*r.MaxEncashmentDays)
	}
	v.Normalize()
	return v
}

// AsRequest converts an entity back into request form so a merged update can
// be re-validated by the same rule set that guards creation.
func (v Variant) AsRequest() CreateVariantRequest {
	req := CreateVariantRequest{
		LeaveTypeID: v.LeaveTypeID,
		Name:        v.Name,
		Description: v.Description,

		LeavesGrantedOn:    string(v.LeavesGrantedOn),
		PaidDaysInYear:     v.PaidDaysInYear,
		GrantFrequency:     string(v.GrantFrequency),
		ProRataCalculation: string(v.ProRataCalculation),
		OnboardingSlabs:    slabInputs(v.OnboardingSlabs),
		ExitSlabs:          slabInputs(v.ExitSlabs),

		ApplicableGenders:   v.ApplicableGenders,
		ApplicableAfterType: string(v.ApplicableAfterType),
		ApplicableAfterDays: v.ApplicableAfterDays,

		MustBePlannedInAdvance: v.MustBePlannedInAdvance,
		GracePeriod:            v.GracePeriod,
		AllowHalfDay:           v.AllowHalfDay,
		Withdrawal:             string(v.Withdrawal),

		SupportingDocuments:     v.SupportingDocuments,
		SupportingDocumentsText: v.SupportingDocumentsText,

		Encashment:            v.Encashment,
		EncashmentCalculation: v.EncashmentCalculation,
	}
	if v.Encashment {
		decoded := DecodeMaxEncashmentDays(v.MaxEncashmentDays)
		req.MaxEncashmentDays = &decoded
	}
	return req
}

// UpdateVariantRequest is a partial update; nil fields are left untouched.
type UpdateVariantRequest struct {
	LeaveTypeID *string `json:"leave_type_id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`

	LeavesGrantedOn    *string     `json:"leaves_granted_on,omitempty"`
	PaidDaysInYear     *float64    `json:"paid_days_in_year,omitempty"`
	GrantFrequency     *string     `json:"grant_frequency,omitempty"`
	ProRataCalculation *string     `json:"pro_rata_calculation,omitempty"`
	OnboardingSlabs    []SlabInput `json:"onboarding_slabs,omitempty"`
	ExitSlabs          []SlabInput `json:"exit_slabs,omitempty"`

	ApplicableGenders   []string `json:"applicable_genders,omitempty"`
	ApplicableAfterType *string  `json:"applicable_after_type,omitempty"`
	ApplicableAfterDays *int     `json:"applicable_after_days,omitempty"`

	MustBePlannedInAdvance *int    `json:"must_be_planned_in_advance,omitempty"`
	GracePeriod            *int    `json:"grace_period,omitempty"`
	AllowHalfDay           *bool   `json:"allow_half_day,omitempty"`
	Withdrawal             *string `json:"withdrawal,omitempty"`

	SupportingDocuments     *bool   `json:"supporting_documents,omitempty"`
	SupportingDocumentsText *string `json:"supporting_documents_text,omitempty"`

	Encashment            *bool   `json:"encashment,omitempty"`
	EncashmentCalculation *string `json:"encashment_calculation,omitempty"`
	MaxEncashmentDays     *int    `json:"max_encashment_days,omitempty"`
}

// Apply merges the patch onto v. Setting one of the mutually exclusive
// advance-planning / grace-period pair clears the other; when a single patch
// sets both, advance-planning wins (the same precedence Normalize applies).
func (r *UpdateVariantRequest) Apply(v *Variant) {
	if r.LeaveTypeID != nil {
		v.LeaveTypeID = *r.LeaveTypeID
	}
	if r.Name != nil {
		v.Name = *r.Name
	}
	if r.Description != nil {
		v.Description = *r.Description
	}
	if r.LeavesGrantedOn != nil {
		v.LeavesGrantedOn = GrantedOn(*r.LeavesGrantedOn)
	}
	if r.PaidDaysInYear != nil {
		v.PaidDaysInYear = *r.PaidDaysInYear
	}
	if r.GrantFrequency != nil {
		v.GrantFrequency = GrantFrequency(*r.GrantFrequency)
	}
	if r.ProRataCalculation != nil {
		v.ProRataCalculation = ProRataMethod(*r.ProRataCalculation)
	}
	if r.OnboardingSlabs != nil {
		v.OnboardingSlabs = toSlabSet(r.OnboardingSlabs)
	}
	if r.ExitSlabs != nil {
		v.ExitSlabs = toSlabSet(r.ExitSlabs)
	}
	if r.ApplicableGenders != nil {
		v.ApplicableGenders = r.ApplicableGenders
	}
	if r.ApplicableAfterType != nil {
		v.ApplicableAfterType = ApplicableAfterType(*r.ApplicableAfterType)
	}
	if r.ApplicableAfterDays != nil {
		v.ApplicableAfterDays = *r.ApplicableAfterDays
	}
	if r.MustBePlannedInAdvance != nil {
		v.MustBePlannedInAdvance = *r.MustBePlannedInAdvance
		if v.MustBePlannedInAdvance > 0 {
			v.GracePeriod = 0
		}
	}
	if r.GracePeriod != nil {
		v.GracePeriod = *r.GracePeriod
		if v.GracePeriod > 0 && r.MustBePlannedInAdvance == nil {
			v.MustBePlannedInAdvance = 0
		}
	}
	if r.AllowHalfDay != nil {
		v.AllowHalfDay = *r.AllowHalfDay
	}
	if r.Withdrawal != nil {
		v.Withdrawal = Withdrawal(*r.Withdrawal)
	}
	if r.SupportingDocuments != nil {
		v.SupportingDocuments = *r.SupportingDocuments
	}
	if r.SupportingDocumentsText != nil {
		v.SupportingDocumentsText = *r.SupportingDocumentsText
	}
	if r.Encashment != nil {
		v.Encashment = *r.Encashment
	}
	if r.EncashmentCalculation != nil {
		v.EncashmentCalculation = *r.EncashmentCalculation
	}
	if r.MaxEncashmentDays != nil {
		v.MaxEncashmentDays = EncodeMaxEncashmentDays(*r.MaxEncashmentDays)
	}
	v.Normalize()
}

// VariantResponse is the read representation; the stored no-limit encashment
// value is decoded back to the -1 sentinel.
type VariantResponse struct {
	ID          string `json:"id"`
	LeaveTypeID string `json:"leave_type_id,omitempty"`
	Type        Type   `json:"variant_type"`
	Name        string `json:"name"`
	Description string `json:"description"`

	LeavesGrantedOn    GrantedOn      `json:"leaves_granted_on"`
	PaidDaysInYear     float64        `json:"paid_days_in_year"`
	GrantFrequency     GrantFrequency `json:"grant_frequency"`
	ProRataCalculation ProRataMethod  `json:"pro_rata_calculation"`
	OnboardingSlabs    SlabSet        `json:"onboarding_slabs"`
	ExitSlabs          SlabSet        `json:"exit_slabs"`

	ApplicableGenders   []string            `json:"applicable_genders"`
	ApplicableAfterType ApplicableAfterType `json:"applicable_after_type"`
	ApplicableAfterDays int                 `json:"applicable_after_days"`

	MustBePlannedInAdvance int        `json:"must_be_planned_in_advance"`
	GracePeriod            int        `json:"grace_period"`
	AllowHalfDay           bool       `json:"allow_half_day"`
	Withdrawal             Withdrawal `json:"withdrawal"`

	SupportingDocuments     bool   `json:"supporting_documents"`
	SupportingDocumentsText string `json:"supporting_documents_text,omitempty"`

	Encashment            bool   `json:"encashment"`
	EncashmentCalculation string `json:"encashment_calculation,omitempty"`
	MaxEncashmentDays     int    `json:"max_encashment_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewVariantResponse(v Variant) VariantResponse {
	return VariantResponse{
		ID:          v.ID,
		LeaveTypeID: v.LeaveTypeID,
		Type:        v.Type,
		Name:        v.Name,
		Description: v.Description,

		LeavesGrantedOn:    v.LeavesGrantedOn,
		PaidDaysInYear:     v.PaidDaysInYear,
		GrantFrequency:     v.GrantFrequency,
		ProRataCalculation: v.ProRataCalculation,
		OnboardingSlabs:    v.OnboardingSlabs,
		ExitSlabs:          v.ExitSlabs,

		ApplicableGenders:   v.ApplicableGenders,
		ApplicableAfterType: v.ApplicableAfterType,
		ApplicableAfterDays: v.ApplicableAfterDays,

		MustBePlannedInAdvance: v.MustBePlannedInAdvance,
		GracePeriod:            v.GracePeriod,
		AllowHalfDay:           v.AllowHalfDay,
		Withdrawal:             v.Withdrawal,

		SupportingDocuments:     v.SupportingDocuments,
		SupportingDocumentsText: v.SupportingDocumentsText,

		Encashment:            v.Encashment,
		EncashmentCalculation: v.EncashmentCalculation,
		MaxEncashmentDays:     DecodeMaxEncashmentDays(v.MaxEncashmentDays),

		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func toSlabSet(inputs []SlabInput) SlabSet {
	if inputs == nil {
		return nil
	}
	set := make(SlabSet, 0, len(inputs))
	for _, in := range inputs {
		var s Slab
		if in.FromDay != nil {
			s.FromDay = *in.FromDay
		}
		if in.ToDay != nil {
			s.ToDay = *in.ToDay
		}
		if in.EarnDays != nil {
			s.EarnDays = *in.EarnDays
		}
		set = append(set, s)
	}
	return set
}
