package workflow

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Process names the request pipeline a workflow governs.
type Process string

const (
	ProcessApplication Process = "application"
	ProcessPTO         Process = "pto"
	ProcessCompOff     Process = "comp-off"
)

// SubProcessesFor returns the sub-process tags valid for a process.
func SubProcessesFor(p Process) []string {
	switch p {
	case ProcessApplication:
		return []string{"apply-leave", "withdraw-leave", "encash-leave"}
	case ProcessPTO:
		return []string{"apply-pto", "withdraw-pto"}
	case ProcessCompOff:
		return []string{"avail-comp-off", "encash-comp-off"}
	}
	return nil
}

// StepKind replaces the positional "is this the last step" dispatch with an
// explicit tag: intermediate steps forward to the next step, the final step
// terminates the chain.
type StepKind string

const (
	StepIntermediate StepKind = "intermediate"
	StepFinal        StepKind = "final"
)

// Step is one stage of the approval chain. AutoForward only applies to
// intermediate steps; AutoApprove and its Days/Hours timer only to the final
// step.
type Step struct {
	Title   string   `json:"title"`
	RoleIDs []string `json:"role_ids"`
	Kind    StepKind `json:"kind"`

	AutoForward bool `json:"auto_forward,omitempty"`
	AutoApprove bool `json:"auto_approve,omitempty"`
	Days        int  `json:"days,omitempty"`
	Hours       int  `json:"hours,omitempty"`
}

// Steps is stored as a JSONB array; order encodes the escalation sequence.
type Steps []Step

// Value implements driver.Valuer for database storage
func (s Steps) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for database retrieval
func (s *Steps) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Steps: invalid type")
	}
	return json.Unmarshal(bytes, s)
}

// Workflow entity
type Workflow struct {
	ID            string
	CompanyID     string
	Name          string
	EffectiveDate time.Time
	Process       Process
	SubProcesses  []string
	Steps         Steps
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
