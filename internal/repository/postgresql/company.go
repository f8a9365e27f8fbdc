package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/company"
	"github.com/zenwork-hr/leave-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.Repository {
	return &companyRepositoryImpl{db: db}
}

// Create implements company.Repository.
func (r *companyRepositoryImpl) Create(ctx context.Context, c company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO companies (id, name, effective_date, setup_step, setup_completed)
		VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, 0, FALSE)
		RETURNING id, setup_step, setup_completed, created_at, updated_at
	`
	err := q.QueryRow(ctx, query, c.ID, c.Name, c.EffectiveDate).
		Scan(&c.ID, &c.SetupStep, &c.SetupCompleted, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return company.Company{}, err
	}
	return c, nil
}

// GetByID implements company.Repository.
func (r *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, effective_date, setup_step, setup_completed, created_at, updated_at
		FROM companies
		WHERE id = $1
	`
	var c company.Company
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.EffectiveDate, &c.SetupStep, &c.SetupCompleted,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}

// UpdateSetup implements company.Repository.
func (r *companyRepositoryImpl) UpdateSetup(ctx context.Context, id string, step int, completed bool) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE companies
		SET setup_step = $2, setup_completed = $3, updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id, step, completed)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("company with id %s not found: %w", id, company.ErrCompanyNotFound)
	}
	return nil
}
