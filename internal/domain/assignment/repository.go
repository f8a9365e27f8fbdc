package assignment

import "context"

// Repository - interface for the employee_assignments table
type Repository interface {
	// ReplaceForVariant swaps the variant's whole assignment set for userIDs.
	ReplaceForVariant(ctx context.Context, variantID string, kind Kind, userIDs []string) error
	ListByVariant(ctx context.Context, variantID string) ([]Assignment, error)
	DeleteByVariant(ctx context.Context, variantID string) error
}
