package variant

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Type discriminates the three policy families that share the variant rule
// set. A comp-off variant and a BTO/PTO variant carry the same fields as a
// leave variant and are validated by the same rules.
type Type string

const (
	TypeLeave   Type = "leave"
	TypeCompOff Type = "comp_off"
	TypePTO     Type = "pto"
)

func (t Type) Valid() bool {
	switch t {
	case TypeLeave, TypeCompOff, TypePTO:
		return true
	}
	return false
}

type GrantedOn string

const (
	GrantedOnCalendarDays GrantedOn = "calendar_days"
	GrantedOnCompliance   GrantedOn = "compliance"
)

type GrantFrequency string

const (
	GrantPerMonth    GrantFrequency = "per_month"
	GrantPerQuarter  GrantFrequency = "per_quarter"
	GrantPerHalfYear GrantFrequency = "per_half_year"
	GrantPerYear     GrantFrequency = "per_year"
)

// PeriodsPerYear returns how many accrual periods the frequency produces in a
// year, or 0 for an unknown frequency.
func (f GrantFrequency) PeriodsPerYear() int {
	switch f {
	case GrantPerMonth:
		return 12
	case GrantPerQuarter:
		return 4
	case GrantPerHalfYear:
		return 2
	case GrantPerYear:
		return 1
	}
	return 0
}

type ProRataMethod string

const (
	ProRataFullMonth   ProRataMethod = "full_month"
	ProRataSlabSystem  ProRataMethod = "slab_system"
	ProRataRoundingOff ProRataMethod = "rounding_off"
)

type ApplicableAfterType string

const (
	ApplicableAfterDays         ApplicableAfterType = "days"
	ApplicableAfterProbationEnd ApplicableAfterType = "probation_end"
	ApplicableAfterJoining      ApplicableAfterType = "date_of_joining"
)

// Withdrawal is the tri-state withdrawal policy as a single enum, so an
// illegal combination (both before- and after-approval allowed) cannot be
// stored.
type Withdrawal string

const (
	WithdrawalBeforeApproval Withdrawal = "before_approval"
	WithdrawalAfterApproval  Withdrawal = "after_approval"
	WithdrawalNotAllowed     Withdrawal = "not_allowed"
)

func (w Withdrawal) Valid() bool {
	switch w {
	case WithdrawalBeforeApproval, WithdrawalAfterApproval, WithdrawalNotAllowed:
		return true
	}
	return false
}

// Slab is a day-of-month range with the leave amount earned by an employee
// who joins (onboarding) or exits (exit) inside that range.
type Slab struct {
	FromDay  int     `json:"from_day"`
	ToDay    int     `json:"to_day"`
	EarnDays float64 `json:"earn_days"`
}

// SlabSet is stored as a JSONB array.
type SlabSet []Slab

// Value implements driver.Valuer for database storage
func (s SlabSet) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for database retrieval
func (s *SlabSet) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan SlabSet: invalid type")
	}
	return json.Unmarshal(bytes, s)
}

// NoEncashmentLimit is the API-level sentinel for "no cap on encashable
// days". It is persisted as storedNoEncashmentLimit and decoded back on read.
const NoEncashmentLimit = -1

const storedNoEncashmentLimit = 1000

// EncodeMaxEncashmentDays translates the API sentinel to the stored value.
func EncodeMaxEncashmentDays(days int) int {
	if days == NoEncashmentLimit {
		return storedNoEncashmentLimit
	}
	return days
}

// DecodeMaxEncashmentDays translates the stored value back to the API
// sentinel.
func DecodeMaxEncashmentDays(stored int) int {
	if stored == storedNoEncashmentLimit {
		return NoEncashmentLimit
	}
	return stored
}

// Variant is one configured leave/comp-off/BTO policy.
type Variant struct {
	ID          string
	CompanyID   string
	LeaveTypeID string
	Type        Type
	Name        string
	Description string

	LeavesGrantedOn    GrantedOn
	PaidDaysInYear     float64
	GrantFrequency     GrantFrequency
	ProRataCalculation ProRataMethod
	OnboardingSlabs    SlabSet
	ExitSlabs          SlabSet

	ApplicableGenders   []string
	ApplicableAfterType ApplicableAfterType
	ApplicableAfterDays int

	MustBePlannedInAdvance int
	GracePeriod            int
	AllowHalfDay           bool
	Withdrawal             Withdrawal

	SupportingDocuments     bool
	SupportingDocumentsText string

	Encashment            bool
	EncashmentCalculation string
	MaxEncashmentDays     int // stored form; see DecodeMaxEncashmentDays

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Normalize enforces the invariants that are a matter of precedence rather
// than rejection:
//   - advance-planning and grace period are mutually exclusive; when both are
//     set, advance-planning wins and the grace period is cleared
//   - an unset withdrawal policy defaults to not_allowed
//   - encashment fields are cleared when encashment is disabled
func (v *Variant) Normalize() {
	if v.MustBePlannedInAdvance > 0 && v.GracePeriod > 0 {
		v.GracePeriod = 0
	}
	if v.Withdrawal == "" {
		v.Withdrawal = WithdrawalNotAllowed
	}
	if !v.Encashment {
		v.EncashmentCalculation = ""
		v.MaxEncashmentDays = 0
	}
}
