package roster

import (
	"context"
	"log/slog"
	"sync"

	"github.com/zenwork-hr/leave-backend-go/internal/domain/employee"
	"github.com/zenwork-hr/leave-backend-go/internal/fixtures"
)

// DirectoryClient is the external employee directory boundary.
type DirectoryClient interface {
	FetchEmployees(ctx context.Context) ([]employee.Employee, error)
}

// Page is one page of the assignment roster. Degraded is set when the
// directory was unreachable and the page was served from the last good
// roster or the built-in sample.
type Page struct {
	Employees []Row `json:"employees"`
	Total     int   `json:"total"`
	Page      int   `json:"page"`
	Limit     int   `json:"limit"`
	Degraded  bool  `json:"degraded"`
}

// Row is one roster entry plus its selection state.
type Row struct {
	employee.Employee
	Selected bool `json:"selected"`
}

type RosterService interface {
	List(ctx context.Context, companyID string, f employee.Filter, page, limit int) (Page, error)
	Selection(companyID string) *Selection
}

type rosterServiceImpl struct {
	directory DirectoryClient
	logger    *slog.Logger

	mu         sync.Mutex
	lastRoster []employee.Employee
	selections map[string]*Selection
}

func NewRosterService(directory DirectoryClient, logger *slog.Logger) RosterService {
	return &rosterServiceImpl{
		directory:  directory,
		logger:     logger,
		selections: make(map[string]*Selection),
	}
}

const (
	defaultLimit = 20
	maxLimit     = 100
)

func (s *rosterServiceImpl) List(ctx context.Context, companyID string, f employee.Filter, page, limit int) (Page, error) {
	all, degraded := s.roster(ctx)
	filtered := employee.Apply(all, f)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	total := len(filtered)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	sel := s.Selection(companyID)
	rows := make([]Row, 0, end-start)
	for _, e := range filtered[start:end] {
		rows = append(rows, Row{Employee: e, Selected: sel.Has(e.ID)})
	}

	return Page{
		Employees: rows,
		Total:     total,
		Page:      page,
		Limit:     limit,
		Degraded:  degraded,
	}, nil
}

// Selection returns the company's selection tracker, creating it on first
// use.
func (s *rosterServiceImpl) Selection(companyID string) *Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel, ok := s.selections[companyID]
	if !ok {
		sel = NewSelection()
		s.selections[companyID] = sel
	}
	return sel
}

// roster fetches from the directory, falling back to the last successful
// fetch and finally to the built-in sample so assignment screens never go
// blank.
func (s *rosterServiceImpl) roster(ctx context.Context) ([]employee.Employee, bool) {
	fetched, err := s.directory.FetchEmployees(ctx)
	if err == nil {
		s.mu.Lock()
		s.lastRoster = fetched
		s.mu.Unlock()
		return fetched, false
	}

	s.logger.WarnContext(ctx, "employee directory unreachable, serving fallback roster",
		slog.String("error", err.Error()),
	)

	s.mu.Lock()
	cached := s.lastRoster
	s.mu.Unlock()
	if cached != nil {
		return cached, true
	}
	return fixtures.GetSampleRoster(), true
}
