package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/leavetype"
	"github.com/zenwork-hr/leave-backend-go/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leavetype.Repository {
	return &leaveTypeRepositoryImpl{db: db}
}

// Create implements leavetype.Repository.
func (l *leaveTypeRepositoryImpl) Create(ctx context.Context, lt leavetype.LeaveType) (leavetype.LeaveType, error) {
	q := GetQuerier(ctx, l.db)
	query := `
		INSERT INTO leave_types (company_id, name, description, color, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		lt.CompanyID, lt.Name, lt.Description, lt.Color, lt.IsActive,
	).Scan(&lt.ID, &lt.CreatedAt, &lt.UpdatedAt)
	if err != nil {
		return leavetype.LeaveType{}, err
	}
	return lt, nil
}

// GetByID implements leavetype.Repository.
func (l *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (leavetype.LeaveType, error) {
	q := GetQuerier(ctx, l.db)
	query := `
		SELECT id, company_id, name, description, color, is_active, created_at, updated_at
		FROM leave_types
		WHERE id = $1
	`
	var lt leavetype.LeaveType
	err := q.QueryRow(ctx, query, id).Scan(
		&lt.ID, &lt.CompanyID, &lt.Name, &lt.Description, &lt.Color, &lt.IsActive,
		&lt.CreatedAt, &lt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leavetype.LeaveType{}, leavetype.ErrLeaveTypeNotFound
		}
		return leavetype.LeaveType{}, err
	}
	return lt, nil
}

// ListByCompany implements leavetype.Repository.
func (l *leaveTypeRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]leavetype.LeaveType, error) {
	q := GetQuerier(ctx, l.db)
	query := `
		SELECT id, company_id, name, description, color, is_active, created_at, updated_at
		FROM leave_types
		WHERE company_id = $1
		ORDER BY name
	`
	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaveTypes []leavetype.LeaveType
	for rows.Next() {
		var lt leavetype.LeaveType
		if err := rows.Scan(
			&lt.ID, &lt.CompanyID, &lt.Name, &lt.Description, &lt.Color, &lt.IsActive,
			&lt.CreatedAt, &lt.UpdatedAt,
		); err != nil {
			return nil, err
		}
		leaveTypes = append(leaveTypes, lt)
	}
	return leaveTypes, rows.Err()
}

// Update implements leavetype.Repository.
func (l *leaveTypeRepositoryImpl) Update(ctx context.Context, lt leavetype.LeaveType) error {
	q := GetQuerier(ctx, l.db)
	query := `
		UPDATE leave_types
		SET name = $2, description = $3, color = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, lt.ID, lt.Name, lt.Description, lt.Color, lt.IsActive)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leavetype.ErrLeaveTypeNotFound
	}
	return nil
}

// Delete implements leavetype.Repository.
func (l *leaveTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, l.db)
	query := `
		DELETE FROM leave_types
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("leave type with id %s not found: %w", id, leavetype.ErrLeaveTypeNotFound)
	}
	return nil
}
