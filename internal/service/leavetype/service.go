package leavetype

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/leavetype"
)

type LeaveTypeService interface {
	Create(ctx context.Context, companyID string, req leavetype.CreateLeaveTypeRequest) (leavetype.LeaveTypeResponse, error)
	Get(ctx context.Context, id string, companyID string) (leavetype.LeaveTypeResponse, error)
	List(ctx context.Context, companyID string) ([]leavetype.LeaveTypeResponse, error)
	Update(ctx context.Context, id string, companyID string, req leavetype.UpdateLeaveTypeRequest) (leavetype.LeaveTypeResponse, error)
	Delete(ctx context.Context, id string, companyID string) error
}

type leaveTypeServiceImpl struct {
	leaveTypeRepo leavetype.Repository
}

func NewLeaveTypeService(leaveTypeRepo leavetype.Repository) LeaveTypeService {
	return &leaveTypeServiceImpl{leaveTypeRepo: leaveTypeRepo}
}

func (s *leaveTypeServiceImpl) Create(ctx context.Context, companyID string, req leavetype.CreateLeaveTypeRequest) (leavetype.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leavetype.LeaveTypeResponse{}, err
	}

	entity := leavetype.LeaveType{
		CompanyID:   companyID,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		IsActive:    true,
	}

	created, err := s.leaveTypeRepo.Create(ctx, entity)
	if err != nil {
		// Duplicate name inside the company (unique constraint violation)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leavetype.LeaveTypeResponse{}, leavetype.ErrLeaveTypeNameExists
		}
		return leavetype.LeaveTypeResponse{}, fmt.Errorf("failed to create leave type: %w", err)
	}

	return leavetype.NewLeaveTypeResponse(created), nil
}

func (s *leaveTypeServiceImpl) Get(ctx context.Context, id string, companyID string) (leavetype.LeaveTypeResponse, error) {
	entity, err := s.getOwned(ctx, id, companyID)
	if err != nil {
		return leavetype.LeaveTypeResponse{}, err
	}
	return leavetype.NewLeaveTypeResponse(entity), nil
}

func (s *leaveTypeServiceImpl) List(ctx context.Context, companyID string) ([]leavetype.LeaveTypeResponse, error) {
	entities, err := s.leaveTypeRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	responses := make([]leavetype.LeaveTypeResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, leavetype.NewLeaveTypeResponse(entity))
	}
	return responses, nil
}

func (s *leaveTypeServiceImpl) Update(ctx context.Context, id string, companyID string, req leavetype.UpdateLeaveTypeRequest) (leavetype.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leavetype.LeaveTypeResponse{}, err
	}

	entity, err := s.getOwned(ctx, id, companyID)
	if err != nil {
		return leavetype.LeaveTypeResponse{}, err
	}

	req.Apply(&entity)

	if err := s.leaveTypeRepo.Update(ctx, entity); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leavetype.LeaveTypeResponse{}, leavetype.ErrLeaveTypeNameExists
		}
		return leavetype.LeaveTypeResponse{}, fmt.Errorf("failed to update leave type: %w", err)
	}

	return leavetype.NewLeaveTypeResponse(entity), nil
}

func (s *leaveTypeServiceImpl) Delete(ctx context.Context, id string, companyID string) error {
	if _, err := s.getOwned(ctx, id, companyID); err != nil {
		return err
	}
	return s.leaveTypeRepo.Delete(ctx, id)
}

// getOwned fetches a leave type and hides rows belonging to other companies.
func (s *leaveTypeServiceImpl) getOwned(ctx context.Context, id string, companyID string) (leavetype.LeaveType, error) {
	entity, err := s.leaveTypeRepo.GetByID(ctx, id)
	if err != nil {
		return leavetype.LeaveType{}, err
	}
	if entity.CompanyID != companyID {
		return leavetype.LeaveType{}, leavetype.ErrLeaveTypeNotFound
	}
	return entity, nil
}
