package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/role"
	"github.com/zenwork-hr/leave-backend-go/internal/pkg/database"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.Repository {
	return &roleRepositoryImpl{db: db}
}

// Create implements role.Repository.
func (r *roleRepositoryImpl) Create(ctx context.Context, ro role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	permissionsJSON, _ := json.Marshal(ro.Permissions)

	query := `
		INSERT INTO roles (company_id, name, description, permissions)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query, ro.CompanyID, ro.Name, ro.Description, permissionsJSON).
		Scan(&ro.ID, &ro.CreatedAt, &ro.UpdatedAt)
	if err != nil {
		return role.Role{}, err
	}
	return ro, nil
}

// GetByID implements role.Repository.
func (r *roleRepositoryImpl) GetByID(ctx context.Context, id string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, company_id, name, description, permissions, created_at, updated_at
		FROM roles
		WHERE id = $1
	`
	var ro role.Role
	var permissionsJSON []byte
	err := q.QueryRow(ctx, query, id).Scan(
		&ro.ID, &ro.CompanyID, &ro.Name, &ro.Description, &permissionsJSON,
		&ro.CreatedAt, &ro.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.Role{}, role.ErrRoleNotFound
		}
		return role.Role{}, err
	}
	if permissionsJSON != nil {
		json.Unmarshal(permissionsJSON, &ro.Permissions)
	}
	return ro, nil
}

// ListByCompany implements role.Repository.
func (r *roleRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, company_id, name, description, permissions, created_at, updated_at
		FROM roles
		WHERE company_id = $1
		ORDER BY name
	`
	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []role.Role
	for rows.Next() {
		var ro role.Role
		var permissionsJSON []byte
		if err := rows.Scan(
			&ro.ID, &ro.CompanyID, &ro.Name, &ro.Description, &permissionsJSON,
			&ro.CreatedAt, &ro.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if permissionsJSON != nil {
			json.Unmarshal(permissionsJSON, &ro.Permissions)
		}
		roles = append(roles, ro)
	}
	return roles, rows.Err()
}

// CountByCompany implements role.Repository.
func (r *roleRepositoryImpl) CountByCompany(ctx context.Context, companyID string) (int64, error) {
	q := GetQuerier(ctx, r.db)
	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM roles WHERE company_id = $1`, companyID).Scan(&count)
	return count, err
}

// Update implements role.Repository.
func (r *roleRepositoryImpl) Update(ctx context.Context, ro role.Role) error {
	q := GetQuerier(ctx, r.db)

	permissionsJSON, _ := json.Marshal(ro.Permissions)

	query := `
		UPDATE roles
		SET name = $2, description = $3, permissions = $4, updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, ro.ID, ro.Name, ro.Description, permissionsJSON)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return role.ErrRoleNotFound
	}
	return nil
}

// Delete implements role.Repository.
func (r *roleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM roles
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("role with id %s not found: %w", id, role.ErrRoleNotFound)
	}
	return nil
}
