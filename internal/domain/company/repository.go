package company

import "context"

// Repository - interface for the companies table
type Repository interface {
	Create(ctx context.Context, c Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	UpdateSetup(ctx context.Context, id string, step int, completed bool) error
}
