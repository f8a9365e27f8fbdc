package variant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zenwork-hr/leave-backend-go/internal/domain/assignment"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/leavetype"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/variant"
	"github.com/zenwork-hr/leave-backend-go/internal/repository/postgresql"
)

type VariantService interface {
	Create(ctx context.Context, companyID string, t variant.Type, req variant.CreateVariantRequest) (variant.VariantResponse, error)
	Get(ctx context.Context, id string, companyID string, t variant.Type) (variant.VariantResponse, error)
	List(ctx context.Context, companyID string, t variant.Type) ([]variant.VariantResponse, error)
	Update(ctx context.Context, id string, companyID string, t variant.Type, req variant.UpdateVariantRequest) (variant.VariantResponse, error)
	Delete(ctx context.Context, id string, companyID string, t variant.Type) error

	// BulkAssign replaces the assignment set of every variant referenced in
	// the request. All replacements land in one transaction.
	BulkAssign(ctx context.Context, companyID string, req assignment.BulkAssignRequest) error
	ListAssignments(ctx context.Context, variantID string, companyID string) ([]assignment.AssignmentResponse, error)
}

type variantServiceImpl struct {
	tx             postgresql.TxRunner
	variantRepo    variant.Repository
	assignmentRepo assignment.Repository
	leaveTypeRepo  leavetype.Repository
	logger         *slog.Logger
}

func NewVariantService(
	tx postgresql.TxRunner,
	variantRepo variant.Repository,
	assignmentRepo assignment.Repository,
	leaveTypeRepo leavetype.Repository,
	logger *slog.Logger,
) VariantService {
	return &variantServiceImpl{
		tx:             tx,
		variantRepo:    variantRepo,
		assignmentRepo: assignmentRepo,
		leaveTypeRepo:  leaveTypeRepo,
		logger:         logger,
	}
}

func (s *variantServiceImpl) Create(ctx context.Context, companyID string, t variant.Type, req variant.CreateVariantRequest) (variant.VariantResponse, error) {
	if !t.Valid() {
		return variant.VariantResponse{}, variant.ErrUnknownType
	}
	if err := req.Validate(); err != nil {
		return variant.VariantResponse{}, err
	}

	// Leave variants hang off a leave type; the other families do not.
	if t == variant.TypeLeave && req.LeaveTypeID != "" {
		if _, err := s.leaveTypeRepo.GetByID(ctx, req.LeaveTypeID); err != nil {
			return variant.VariantResponse{}, err
		}
	}

	entity := req.ToEntity(companyID, t)

	var created variant.Variant
	err := s.tx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.variantRepo.Create(txCtx, entity)
		if err != nil {
			return fmt.Errorf("failed to create variant: %w", err)
		}

		// Employees staged before the variant had an id are assigned now,
		// inside the same transaction, so a failed create leaves nothing
		// behind. Repeated ids collapse to one assignment instead of
		// tripping the (user, variant) unique constraint.
		if len(req.AssignEmployeeIDs) > 0 {
			kind := assignment.KindForVariant(t)
			if err := s.assignmentRepo.ReplaceForVariant(txCtx, created.ID, kind, uniqueIDs(req.AssignEmployeeIDs)); err != nil {
				return fmt.Errorf("failed to assign staged employees: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return variant.VariantResponse{}, err
	}

	s.logger.InfoContext(ctx, "variant created",
		slog.String("variant_id", created.ID),
		slog.String("variant_type", string(t)),
		slog.Int("staged_assignments", len(req.AssignEmployeeIDs)),
	)
	return variant.NewVariantResponse(created), nil
}

func (s *variantServiceImpl) Get(ctx context.Context, id string, companyID string, t variant.Type) (variant.VariantResponse, error) {
	entity, err := s.getTyped(ctx, id, companyID, t)
	if err != nil {
		return variant.VariantResponse{}, err
	}
	return variant.NewVariantResponse(entity), nil
}

func (s *variantServiceImpl) List(ctx context.Context, companyID string, t variant.Type) ([]variant.VariantResponse, error) {
	if !t.Valid() {
		return nil, variant.ErrUnknownType
	}
	entities, err := s.variantRepo.ListByCompany(ctx, companyID, t)
	if err != nil {
		return nil, fmt.Errorf("failed to list variants: %w", err)
	}

	responses := make([]variant.VariantResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, variant.NewVariantResponse(entity))
	}
	return responses, nil
}

func (s *variantServiceImpl) Update(ctx context.Context, id string, companyID string, t variant.Type, req variant.UpdateVariantRequest) (variant.VariantResponse, error) {
	entity, err := s.getTyped(ctx, id, companyID, t)
	if err != nil {
		return variant.VariantResponse{}, err
	}

	req.Apply(&entity)

	// The merged result must satisfy the same rule set that guards creation,
	// so a patch cannot sneak an invalid combination past validation.
	merged := entity.AsRequest()
	if err := merged.Validate(); err != nil {
		return variant.VariantResponse{}, err
	}

	if entity.Type == variant.TypeLeave && req.LeaveTypeID != nil && *req.LeaveTypeID != "" {
		if _, err := s.leaveTypeRepo.GetByID(ctx, *req.LeaveTypeID); err != nil {
			return variant.VariantResponse{}, err
		}
	}

	if err := s.variantRepo.Update(ctx, entity); err != nil {
		return variant.VariantResponse{}, fmt.Errorf("failed to update variant: %w", err)
	}
	return variant.NewVariantResponse(entity), nil
}

func (s *variantServiceImpl) Delete(ctx context.Context, id string, companyID string, t variant.Type) error {
	if _, err := s.getTyped(ctx, id, companyID, t); err != nil {
		return err
	}
	// Assignments cascade with the variant row.
	return s.variantRepo.Delete(ctx, id)
}

func (s *variantServiceImpl) BulkAssign(ctx context.Context, companyID string, req assignment.BulkAssignRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// Group by variant: the bulk payload replaces each referenced variant's
	// whole assignment set. A repeated (user, variant) pair collapses to one
	// assignment.
	order := make([]string, 0)
	byVariant := make(map[string][]string)
	kinds := make(map[string]assignment.Kind)
	for _, a := range req.Assignments {
		if _, seen := byVariant[a.LeaveVariantID]; !seen {
			order = append(order, a.LeaveVariantID)
		}
		byVariant[a.LeaveVariantID] = append(byVariant[a.LeaveVariantID], a.UserID)
		kinds[a.LeaveVariantID] = assignment.Kind(a.AssignmentType)
	}
	for variantID, userIDs := range byVariant {
		byVariant[variantID] = uniqueIDs(userIDs)
	}

	// Verify every variant exists, belongs to the caller's company and
	// carries the declared kind before touching any rows.
	for _, variantID := range order {
		v, err := s.variantRepo.GetByID(ctx, variantID)
		if err != nil {
			return err
		}
		if v.CompanyID != companyID {
			return variant.ErrVariantNotFound
		}
		if assignment.KindForVariant(v.Type) != kinds[variantID] {
			return assignment.ErrKindMismatch
		}
	}

	err := s.tx(ctx, func(txCtx context.Context) error {
		for _, variantID := range order {
			if err := s.assignmentRepo.ReplaceForVariant(txCtx, variantID, kinds[variantID], byVariant[variantID]); err != nil {
				return fmt.Errorf("failed to replace assignments for variant %s: %w", variantID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "bulk assignment applied",
		slog.Int("variants", len(order)),
		slog.Int("assignments", len(req.Assignments)),
	)
	return nil
}

func (s *variantServiceImpl) ListAssignments(ctx context.Context, variantID string, companyID string) ([]assignment.AssignmentResponse, error) {
	v, err := s.variantRepo.GetByID(ctx, variantID)
	if err != nil {
		return nil, err
	}
	if v.CompanyID != companyID {
		return nil, variant.ErrVariantNotFound
	}

	entities, err := s.assignmentRepo.ListByVariant(ctx, variantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	responses := make([]assignment.AssignmentResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, assignment.NewAssignmentResponse(entity))
	}
	return responses, nil
}

// getTyped fetches a variant and hides rows of other families or other
// companies, so a comp-off route cannot read a leave variant by id and one
// tenant cannot read or mutate another's configuration.
func (s *variantServiceImpl) getTyped(ctx context.Context, id string, companyID string, t variant.Type) (variant.Variant, error) {
	if !t.Valid() {
		return variant.Variant{}, variant.ErrUnknownType
	}
	entity, err := s.variantRepo.GetByID(ctx, id)
	if err != nil {
		return variant.Variant{}, err
	}
	if entity.Type != t || entity.CompanyID != companyID {
		return variant.Variant{}, variant.ErrVariantNotFound
	}
	return entity, nil
}

// uniqueIDs drops repeated ids while preserving first-seen order.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
