package role

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/role"
	"github.com/zenwork-hr/leave-backend-go/internal/fixtures"
	"github.com/zenwork-hr/leave-backend-go/internal/repository/postgresql"
)

type RoleService interface {
	Create(ctx context.Context, companyID string, req role.CreateRoleRequest) (role.RoleResponse, error)
	Get(ctx context.Context, id string, companyID string) (role.RoleResponse, error)
	List(ctx context.Context, companyID string) ([]role.RoleResponse, error)
	Update(ctx context.Context, id string, companyID string, req role.UpdateRoleRequest) (role.RoleResponse, error)
	Delete(ctx context.Context, id string, companyID string) error

	// EnsureDefaults seeds the Admin / Reporting Manager / Employee roles.
	// It is a no-op unless the company has zero roles, so repeated calls
	// never duplicate or overwrite anything an admin created.
	EnsureDefaults(ctx context.Context, companyID string) ([]role.RoleResponse, error)
}

type roleServiceImpl struct {
	tx       postgresql.TxRunner
	roleRepo role.Repository
}

func NewRoleService(tx postgresql.TxRunner, roleRepo role.Repository) RoleService {
	return &roleServiceImpl{tx: tx, roleRepo: roleRepo}
}

func (s *roleServiceImpl) Create(ctx context.Context, companyID string, req role.CreateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	entity := role.Role{
		CompanyID:   companyID,
		Name:        req.Name,
		Description: req.Description,
		Permissions: req.Permissions,
	}

	created, err := s.roleRepo.Create(ctx, entity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return role.RoleResponse{}, role.ErrRoleNameExists
		}
		return role.RoleResponse{}, fmt.Errorf("failed to create role: %w", err)
	}

	return role.NewRoleResponse(created), nil
}

func (s *roleServiceImpl) Get(ctx context.Context, id string, companyID string) (role.RoleResponse, error) {
	entity, err := s.getOwned(ctx, id, companyID)
	if err != nil {
		return role.RoleResponse{}, err
	}
	return role.NewRoleResponse(entity), nil
}

func (s *roleServiceImpl) List(ctx context.Context, companyID string) ([]role.RoleResponse, error) {
	entities, err := s.roleRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	responses := make([]role.RoleResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, role.NewRoleResponse(entity))
	}
	return responses, nil
}

func (s *roleServiceImpl) Update(ctx context.Context, id string, companyID string, req role.UpdateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	entity, err := s.getOwned(ctx, id, companyID)
	if err != nil {
		return role.RoleResponse{}, err
	}

	req.Apply(&entity)

	if err := s.roleRepo.Update(ctx, entity); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return role.RoleResponse{}, role.ErrRoleNameExists
		}
		return role.RoleResponse{}, fmt.Errorf("failed to update role: %w", err)
	}

	return role.NewRoleResponse(entity), nil
}

func (s *roleServiceImpl) Delete(ctx context.Context, id string, companyID string) error {
	if _, err := s.getOwned(ctx, id, companyID); err != nil {
		return err
	}
	return s.roleRepo.Delete(ctx, id)
}

// getOwned fetches a role and hides rows belonging to other companies.
func (s *roleServiceImpl) getOwned(ctx context.Context, id string, companyID string) (role.Role, error) {
	entity, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return role.Role{}, err
	}
	if entity.CompanyID != companyID {
		return role.Role{}, role.ErrRoleNotFound
	}
	return entity, nil
}

func (s *roleServiceImpl) EnsureDefaults(ctx context.Context, companyID string) ([]role.RoleResponse, error) {
	count, err := s.roleRepo.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to count roles: %w", err)
	}
	if count > 0 {
		return s.List(ctx, companyID)
	}

	var seeded []role.Role
	err = s.tx(ctx, func(txCtx context.Context) error {
		for _, def := range fixtures.GetDefaultRoles(companyID) {
			created, err := s.roleRepo.Create(txCtx, def)
			if err != nil {
				return fmt.Errorf("failed to seed role %q: %w", def.Name, err)
			}
			seeded = append(seeded, created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	responses := make([]role.RoleResponse, 0, len(seeded))
	for _, entity := range seeded {
		responses = append(responses, role.NewRoleResponse(entity))
	}
	return responses, nil
}
