package postgresql

import (
	"context"

	"github.com/zenwork-hr/leave-backend-go/internal/domain/assignment"
	"github.com/zenwork-hr/leave-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.Repository {
	return &assignmentRepositoryImpl{db: db}
}

// ReplaceForVariant implements assignment.Repository. Callers run it inside
// WithTransaction so the delete and the inserts land atomically.
func (r *assignmentRepositoryImpl) ReplaceForVariant(ctx context.Context, variantID string, kind assignment.Kind, userIDs []string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM employee_assignments WHERE variant_id = $1`, variantID); err != nil {
		return err
	}

	query := `
		INSERT INTO employee_assignments (user_id, variant_id, assignment_type)
		VALUES ($1, $2, $3)
	`
	for _, userID := range userIDs {
		if _, err := q.Exec(ctx, query, userID, variantID, kind); err != nil {
			return err
		}
	}
	return nil
}

// ListByVariant implements assignment.Repository.
func (r *assignmentRepositoryImpl) ListByVariant(ctx context.Context, variantID string) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, user_id, variant_id, assignment_type, created_at
		FROM employee_assignments
		WHERE variant_id = $1
		ORDER BY created_at
	`
	rows, err := q.Query(ctx, query, variantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []assignment.Assignment
	for rows.Next() {
		var a assignment.Assignment
		if err := rows.Scan(&a.ID, &a.UserID, &a.VariantID, &a.Kind, &a.CreatedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// DeleteByVariant implements assignment.Repository.
func (r *assignmentRepositoryImpl) DeleteByVariant(ctx context.Context, variantID string) error {
	q := GetQuerier(ctx, r.db)
	_, err := q.Exec(ctx, `DELETE FROM employee_assignments WHERE variant_id = $1`, variantID)
	return err
}
