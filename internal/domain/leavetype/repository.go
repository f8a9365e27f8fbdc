package leavetype

import "context"

// Repository - interface for the leave_types table
type Repository interface {
	Create(ctx context.Context, lt LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	ListByCompany(ctx context.Context, companyID string) ([]LeaveType, error)
	Update(ctx context.Context, lt LeaveType) error
	Delete(ctx context.Context, id string) error
}
