package workflow

import (
	"context"
	"fmt"

	"github.com/zenwork-hr/leave-backend-go/internal/domain/company"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/workflow"
	"github.com/zenwork-hr/leave-backend-go/internal/pkg/validator"
)

type WorkflowService interface {
	Create(ctx context.Context, companyID string, req workflow.SaveWorkflowRequest) (workflow.WorkflowResponse, error)
	Get(ctx context.Context, id string, companyID string) (workflow.WorkflowResponse, error)
	List(ctx context.Context, companyID string) ([]workflow.WorkflowResponse, error)
	Update(ctx context.Context, id string, companyID string, req workflow.SaveWorkflowRequest) (workflow.WorkflowResponse, error)
	Delete(ctx context.Context, id string, companyID string) error
}

type workflowServiceImpl struct {
	workflowRepo workflow.Repository
	companyRepo  company.Repository
}

func NewWorkflowService(workflowRepo workflow.Repository, companyRepo company.Repository) WorkflowService {
	return &workflowServiceImpl{workflowRepo: workflowRepo, companyRepo: companyRepo}
}

func (s *workflowServiceImpl) Create(ctx context.Context, companyID string, req workflow.SaveWorkflowRequest) (workflow.WorkflowResponse, error) {
	entity, err := s.validated(ctx, companyID, req)
	if err != nil {
		return workflow.WorkflowResponse{}, err
	}

	created, err := s.workflowRepo.Create(ctx, entity)
	if err != nil {
		return workflow.WorkflowResponse{}, fmt.Errorf("failed to create workflow: %w", err)
	}
	return workflow.NewWorkflowResponse(created), nil
}

func (s *workflowServiceImpl) Get(ctx context.Context, id string, companyID string) (workflow.WorkflowResponse, error) {
	entity, err := s.getOwned(ctx, id, companyID)
	if err != nil {
		return workflow.WorkflowResponse{}, err
	}
	return workflow.NewWorkflowResponse(entity), nil
}

func (s *workflowServiceImpl) List(ctx context.Context, companyID string) ([]workflow.WorkflowResponse, error) {
	entities, err := s.workflowRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}

	responses := make([]workflow.WorkflowResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, workflow.NewWorkflowResponse(entity))
	}
	return responses, nil
}

func (s *workflowServiceImpl) Update(ctx context.Context, id string, companyID string, req workflow.SaveWorkflowRequest) (workflow.WorkflowResponse, error) {
	existing, err := s.getOwned(ctx, id, companyID)
	if err != nil {
		return workflow.WorkflowResponse{}, err
	}

	entity, err := s.validated(ctx, companyID, req)
	if err != nil {
		return workflow.WorkflowResponse{}, err
	}

	entity.ID = existing.ID
	entity.CreatedAt = existing.CreatedAt

	if err := s.workflowRepo.Update(ctx, entity); err != nil {
		return workflow.WorkflowResponse{}, fmt.Errorf("failed to update workflow: %w", err)
	}
	return workflow.NewWorkflowResponse(entity), nil
}

func (s *workflowServiceImpl) Delete(ctx context.Context, id string, companyID string) error {
	if _, err := s.getOwned(ctx, id, companyID); err != nil {
		return err
	}
	return s.workflowRepo.Delete(ctx, id)
}

// getOwned fetches a workflow and hides rows belonging to other companies, so
// a foreign id reads as not found rather than leaking another tenant's
// configuration.
func (s *workflowServiceImpl) getOwned(ctx context.Context, id string, companyID string) (workflow.Workflow, error) {
	entity, err := s.workflowRepo.GetByID(ctx, id)
	if err != nil {
		return workflow.Workflow{}, err
	}
	if entity.CompanyID != companyID {
		return workflow.Workflow{}, workflow.ErrWorkflowNotFound
	}
	return entity, nil
}

// validated runs the payload rules plus the one check that needs the company
// record: the workflow may not take effect before the company itself does.
// Everything is verified before any write.
func (s *workflowServiceImpl) validated(ctx context.Context, companyID string, req workflow.SaveWorkflowRequest) (workflow.Workflow, error) {
	if err := req.Validate(); err != nil {
		return workflow.Workflow{}, err
	}

	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return workflow.Workflow{}, err
	}

	entity := req.ToEntity(companyID)
	if entity.EffectiveDate.Before(comp.EffectiveDate) {
		return workflow.Workflow{}, validator.ValidationErrors{{
			Field: "effective_date",
			Message: fmt.Sprintf("effective_date must not be before the company effective date %s",
				comp.EffectiveDate.Format("2006-01-02")),
		}}
	}
	return entity, nil
}
