package workflow

import "context"

// Repository - interface for the workflows table
type Repository interface {
	Create(ctx context.Context, w Workflow) (Workflow, error)
	GetByID(ctx context.Context, id string) (Workflow, error)
	ListByCompany(ctx context.Context, companyID string) ([]Workflow, error)
	Update(ctx context.Context, w Workflow) error
	Delete(ctx context.Context, id string) error
}
