package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/variant"
	"github.com/zenwork-hr/leave-backend-go/internal/pkg/database"
)

type variantRepositoryImpl struct {
	db *database.DB
}

func NewVariantRepository(db *database.DB) variant.Repository {
	return &variantRepositoryImpl{db: db}
}

const variantColumns = `
	id, company_id, leave_type_id, variant_type, name, description,
	leaves_granted_on, paid_days_in_year, grant_frequency, pro_rata_calculation,
	onboarding_slabs, exit_slabs,
	applicable_genders, applicable_after_type, applicable_after_days,
	must_be_planned_in_advance, grace_period, allow_half_day, withdrawal,
	supporting_documents, supporting_documents_text,
	encashment, encashment_calculation, max_encashment_days,
	created_at, updated_at
`

// Create implements variant.Repository.
func (r *variantRepositoryImpl) Create(ctx context.Context, v variant.Variant) (variant.Variant, error) {
	q := GetQuerier(ctx, r.db)

	onboardingJSON, _ := json.Marshal(v.OnboardingSlabs)
	exitJSON, _ := json.Marshal(v.ExitSlabs)

	query := `
		INSERT INTO variants (
			company_id, leave_type_id, variant_type, name, description,
			leaves_granted_on, paid_days_in_year, grant_frequency, pro_rata_calculation,
			onboarding_slabs, exit_slabs,
			applicable_genders, applicable_after_type, applicable_after_days,
			must_be_planned_in_advance, grace_period, allow_half_day, withdrawal,
			supporting_documents, supporting_documents_text,
			encashment, encashment_calculation, max_encashment_days
		) VALUES (
			$1, NULLIF($2, ''), $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11,
			$12, $13, $14,
			$15, $16, $17, $18,
			$19, $20,
			$21, $22, $23
		) RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		v.CompanyID, v.LeaveTypeID, v.Type, v.Name, v.Description,
		v.LeavesGrantedOn, v.PaidDaysInYear, v.GrantFrequency, v.ProRataCalculation,
		onboardingJSON, exitJSON,
		v.ApplicableGenders, v.ApplicableAfterType, v.ApplicableAfterDays,
		v.MustBePlannedInAdvance, v.GracePeriod, v.AllowHalfDay, v.Withdrawal,
		v.SupportingDocuments, v.SupportingDocumentsText,
		v.Encashment, v.EncashmentCalculation, v.MaxEncashmentDays,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return variant.Variant{}, err
	}
	return v, nil
}

// GetByID implements variant.Repository.
func (r *variantRepositoryImpl) GetByID(ctx context.Context, id string) (variant.Variant, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + variantColumns + ` FROM variants WHERE id = $1`

	v, err := scanVariant(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return variant.Variant{}, variant.ErrVariantNotFound
		}
		return variant.Variant{}, err
	}
	return v, nil
}

// ListByCompany implements variant.Repository.
func (r *variantRepositoryImpl) ListByCompany(ctx context.Context, companyID string, t variant.Type) ([]variant.Variant, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + variantColumns + `
		FROM variants
		WHERE company_id = $1 AND variant_type = $2
		ORDER BY name
	`
	rows, err := q.Query(ctx, query, companyID, t)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variants []variant.Variant
	for rows.Next() {
		v, err := scanVariant(rows)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}

// Update implements variant.Repository.
func (r *variantRepositoryImpl) Update(ctx context.Context, v variant.Variant) error {
	q := GetQuerier(ctx, r.db)

	onboardingJSON, _ := json.Marshal(v.OnboardingSlabs)
	exitJSON, _ := json.Marshal(v.ExitSlabs)

	query := `
		UPDATE variants SET
			leave_type_id = NULLIF($2, ''),
			name = $3, description = $4,
			leaves_granted_on = $5, paid_days_in_year = $6,
			grant_frequency = $7, pro_rata_calculation = $8,
			onboarding_slabs = $9, exit_slabs = $10,
			applicable_genders = $11, applicable_after_type = $12, applicable_after_days = $13,
			must_be_planned_in_advance = $14, grace_period = $15,
			allow_half_day = $16, withdrawal = $17,
			supporting_documents = $18, supporting_documents_text = $19,
			encashment = $20, encashment_calculation = $21, max_encashment_days = $22,
			updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query,
		v.ID, v.LeaveTypeID,
		v.Name, v.Description,
		v.LeavesGrantedOn, v.PaidDaysInYear,
		v.GrantFrequency, v.ProRataCalculation,
		onboardingJSON, exitJSON,
		v.ApplicableGenders, v.ApplicableAfterType, v.ApplicableAfterDays,
		v.MustBePlannedInAdvance, v.GracePeriod,
		v.AllowHalfDay, v.Withdrawal,
		v.SupportingDocuments, v.SupportingDocumentsText,
		v.Encashment, v.EncashmentCalculation, v.MaxEncashmentDays,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return variant.ErrVariantNotFound
	}
	return nil
}

// Delete implements variant.Repository.
func (r *variantRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM variants
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("variant with id %s not found: %w", id, variant.ErrVariantNotFound)
	}
	return nil
}

func scanVariant(row pgx.Row) (variant.Variant, error) {
	var v variant.Variant
	var leaveTypeID *string
	var onboardingJSON, exitJSON []byte

	err := row.Scan(
		&v.ID, &v.CompanyID, &leaveTypeID, &v.Type, &v.Name, &v.Description,
		&v.LeavesGrantedOn, &v.PaidDaysInYear, &v.GrantFrequency, &v.ProRataCalculation,
		&onboardingJSON, &exitJSON,
		&v.ApplicableGenders, &v.ApplicableAfterType, &v.ApplicableAfterDays,
		&v.MustBePlannedInAdvance, &v.GracePeriod, &v.AllowHalfDay, &v.Withdrawal,
		&v.SupportingDocuments, &v.SupportingDocumentsText,
		&v.Encashment, &v.EncashmentCalculation, &v.MaxEncashmentDays,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return variant.Variant{}, err
	}

	if leaveTypeID != nil {
		v.LeaveTypeID = *leaveTypeID
	}
	if onboardingJSON != nil {
		json.Unmarshal(onboardingJSON, &v.OnboardingSlabs)
	}
	if exitJSON != nil {
		json.Unmarshal(exitJSON, &v.ExitSlabs)
	}
	return v, nil
}
