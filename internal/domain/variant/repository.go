package variant

import "context"

// Repository - interface for the variants table
type Repository interface {
	Create(ctx context.Context, v Variant) (Variant, error)
	GetByID(ctx context.Context, id string) (Variant, error)
	ListByCompany(ctx context.Context, companyID string, t Type) ([]Variant, error)
	Update(ctx context.Context, v Variant) error
	Delete(ctx context.Context, id string) error
}
