package company

import "time"

// Company owns every configuration entity and carries the setup wizard
// state. EffectiveDate is the lower bound for workflow effective dates.
type Company struct {
	ID             string
	Name           string
	EffectiveDate  time.Time
	SetupStep      int
	SetupCompleted bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
