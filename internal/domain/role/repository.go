package role

import "context"

// Repository - interface for the roles table
type Repository interface {
	Create(ctx context.Context, r Role) (Role, error)
	GetByID(ctx context.Context, id string) (Role, error)
	ListByCompany(ctx context.Context, companyID string) ([]Role, error)
	CountByCompany(ctx context.Context, companyID string) (int64, error)
	Update(ctx context.Context, r Role) error
	Delete(ctx context.Context, id string) error
}
