package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/workflow"
	"github.com/zenwork-hr/leave-backend-go/internal/pkg/database"
)

type workflowRepositoryImpl struct {
	db *database.DB
}

func NewWorkflowRepository(db *database.DB) workflow.Repository {
	return &workflowRepositoryImpl{db: db}
}

// Create implements workflow.Repository.
func (r *workflowRepositoryImpl) Create(ctx context.Context, w workflow.Workflow) (workflow.Workflow, error) {
	q := GetQuerier(ctx, r.db)

	stepsJSON, _ := json.Marshal(w.Steps)

	query := `
		INSERT INTO workflows (company_id, name, effective_date, process, sub_processes, steps)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		w.CompanyID, w.Name, w.EffectiveDate, w.Process, w.SubProcesses, stepsJSON,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return workflow.Workflow{}, err
	}
	return w, nil
}

// GetByID implements workflow.Repository.
func (r *workflowRepositoryImpl) GetByID(ctx context.Context, id string) (workflow.Workflow, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, company_id, name, effective_date, process, sub_processes, steps, created_at, updated_at
		FROM workflows
		WHERE id = $1
	`
	var w workflow.Workflow
	var stepsJSON []byte
	err := q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.CompanyID, &w.Name, &w.EffectiveDate, &w.Process, &w.SubProcesses,
		&stepsJSON, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workflow.Workflow{}, workflow.ErrWorkflowNotFound
		}
		return workflow.Workflow{}, err
	}
	if stepsJSON != nil {
		json.Unmarshal(stepsJSON, &w.Steps)
	}
	return w, nil
}

// ListByCompany implements workflow.Repository.
func (r *workflowRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]workflow.Workflow, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, company_id, name, effective_date, process, sub_processes, steps, created_at, updated_at
		FROM workflows
		WHERE company_id = $1
		ORDER BY name
	`
	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workflows []workflow.Workflow
	for rows.Next() {
		var w workflow.Workflow
		var stepsJSON []byte
		if err := rows.Scan(
			&w.ID, &w.CompanyID, &w.Name, &w.EffectiveDate, &w.Process, &w.SubProcesses,
			&stepsJSON, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if stepsJSON != nil {
			json.Unmarshal(stepsJSON, &w.Steps)
		}
		workflows = append(workflows, w)
	}
	return workflows, rows.Err()
}

// Update implements workflow.Repository.
func (r *workflowRepositoryImpl) Update(ctx context.Context, w workflow.Workflow) error {
	q := GetQuerier(ctx, r.db)

	stepsJSON, _ := json.Marshal(w.Steps)

	query := `
		UPDATE workflows
		SET name = $2, effective_date = $3, process = $4, sub_processes = $5, steps = $6, updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, w.ID, w.Name, w.EffectiveDate, w.Process, w.SubProcesses, stepsJSON)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return workflow.ErrWorkflowNotFound
	}
	return nil
}

// Delete implements workflow.Repository.
func (r *workflowRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM workflows
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("workflow with id %s not found: %w", id, workflow.ErrWorkflowNotFound)
	}
	return nil
}
