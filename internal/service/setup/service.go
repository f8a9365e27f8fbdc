package setup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zenwork-hr/leave-backend-go/internal/domain/company"
)

// Step bounds of the first-time setup wizard. Step 0 means setup has not
// been enabled; completing step lastStep finishes the wizard.
const (
	firstStep = 1
	lastStep  = 7
)

var (
	ErrSetupNotEnabled       = errors.New("Setup has not been enabled")
	ErrSetupAlreadyCompleted = errors.New("Setup has already been completed")
)

// Status is the wizard state served to the console on every load.
type Status struct {
	Enabled   bool   `json:"enabled"`
	Step      int    `json:"step"`
	Completed bool   `json:"completed"`
	CompanyID string `json:"company_id,omitempty"`
}

type SetupService interface {
	// Status never fails on a missing company; it reports the wizard as not
	// yet enabled so a fresh tenant starts at step zero.
	Status(ctx context.Context, companyID string) (Status, error)
	// Enable creates the company record when absent and moves step 0 to 1.
	// Calling it again is a no-op that returns the current state.
	Enable(ctx context.Context, companyID string, req company.CreateCompanyRequest) (Status, error)
	Advance(ctx context.Context, companyID string) (Status, error)
	Back(ctx context.Context, companyID string) (Status, error)
}

type setupServiceImpl struct {
	companyRepo company.Repository
	logger      *slog.Logger
}

func NewSetupService(companyRepo company.Repository, logger *slog.Logger) SetupService {
	return &setupServiceImpl{companyRepo: companyRepo, logger: logger}
}

func (s *setupServiceImpl) Status(ctx context.Context, companyID string) (Status, error) {
	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return Status{}, nil
		}
		return Status{}, err
	}
	return statusOf(comp), nil
}

func (s *setupServiceImpl) Enable(ctx context.Context, companyID string, req company.CreateCompanyRequest) (Status, error) {
	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if errors.Is(err, company.ErrCompanyNotFound) {
		if err := req.Validate(); err != nil {
			return Status{}, err
		}
		entity := req.ToEntity()
		entity.ID = companyID
		comp, err = s.companyRepo.Create(ctx, entity)
		if err != nil {
			return Status{}, fmt.Errorf("failed to create company: %w", err)
		}
		s.logger.InfoContext(ctx, "company created for setup", slog.String("company_id", comp.ID))
	} else if err != nil {
		return Status{}, err
	}

	if comp.SetupCompleted || comp.SetupStep >= firstStep {
		return statusOf(comp), nil
	}

	comp.SetupStep = firstStep
	if err := s.companyRepo.UpdateSetup(ctx, comp.ID, comp.SetupStep, false); err != nil {
		return Status{}, err
	}
	s.logger.InfoContext(ctx, "setup enabled", slog.String("company_id", comp.ID))
	return statusOf(comp), nil
}

func (s *setupServiceImpl) Advance(ctx context.Context, companyID string) (Status, error) {
	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return Status{}, err
	}
	if comp.SetupCompleted {
		return Status{}, ErrSetupAlreadyCompleted
	}
	if comp.SetupStep < firstStep {
		return Status{}, ErrSetupNotEnabled
	}

	if comp.SetupStep >= lastStep {
		// Finishing the last step completes the wizard and clears the
		// step pointer.
		comp.SetupStep = 0
		comp.SetupCompleted = true
	} else {
		comp.SetupStep++
	}

	if err := s.companyRepo.UpdateSetup(ctx, comp.ID, comp.SetupStep, comp.SetupCompleted); err != nil {
		return Status{}, err
	}
	if comp.SetupCompleted {
		s.logger.InfoContext(ctx, "setup completed", slog.String("company_id", comp.ID))
	}
	return statusOf(comp), nil
}

func (s *setupServiceImpl) Back(ctx context.Context, companyID string) (Status, error) {
	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return Status{}, err
	}
	if comp.SetupCompleted {
		return Status{}, ErrSetupAlreadyCompleted
	}
	if comp.SetupStep < firstStep {
		return Status{}, ErrSetupNotEnabled
	}

	if comp.SetupStep > firstStep {
		comp.SetupStep--
		if err := s.companyRepo.UpdateSetup(ctx, comp.ID, comp.SetupStep, false); err != nil {
			return Status{}, err
		}
	}
	return statusOf(comp), nil
}

func statusOf(c company.Company) Status {
	return Status{
		Enabled:   c.SetupCompleted || c.SetupStep >= firstStep,
		Step:      c.SetupStep,
		Completed: c.SetupCompleted,
		CompanyID: c.ID,
	}
}
