package leavetype

import "time"

// LeaveType is a leave category; variants hang off it.
type LeaveType struct {
	ID          string
	CompanyID   string
	Name        string
	Description *string
	Color       *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
