package setup

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/company"
)

type fakeCompanyRepo struct {
	companies map[string]company.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]company.Company)}
}

func (f *fakeCompanyRepo) Create(_ context.Context, c company.Company) (company.Company, error) {
	if c.ID == "" {
		c.ID = "generated-id"
	}
	f.companies[c.ID] = c
	return c, nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (company.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return c, nil
}

func (f *fakeCompanyRepo) UpdateSetup(_ context.Context, id string, step int, completed bool) error {
	c, ok := f.companies[id]
	if !ok {
		return company.ErrCompanyNotFound
	}
	c.SetupStep = step
	c.SetupCompleted = completed
	f.companies[id] = c
	return nil
}

func testService() (SetupService, *fakeCompanyRepo) {
	repo := newFakeCompanyRepo()
	return NewSetupService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func enableRequest() company.CreateCompanyRequest {
	return company.CreateCompanyRequest{Name: "Acme", EffectiveDate: "2026-01-01"}
}

func TestStatus_MissingCompanyIsStepZero(t *testing.T) {
	svc, _ := testService()

	status, err := svc.Status(context.Background(), "comp-1")
	require.NoError(t, err)
	assert.False(t, status.Enabled)
	assert.Zero(t, status.Step)
	assert.False(t, status.Completed)
}

func TestEnable_CreatesCompanyAndMovesToStepOne(t *testing.T) {
	svc, repo := testService()

	status, err := svc.Enable(context.Background(), "comp-1", enableRequest())
	require.NoError(t, err)
	assert.True(t, status.Enabled)
	assert.Equal(t, 1, status.Step)

	stored, err := repo.GetByID(context.Background(), "comp-1")
	require.NoError(t, err)
	assert.Equal(t, "comp-1", stored.ID, "company takes the token's id")
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), stored.EffectiveDate)
}

func TestEnable_IsIdempotent(t *testing.T) {
	svc, _ := testService()

	_, err := svc.Enable(context.Background(), "comp-1", enableRequest())
	require.NoError(t, err)

	_, err = svc.Advance(context.Background(), "comp-1")
	require.NoError(t, err)

	// A second enable does not reset progress.
	status, err := svc.Enable(context.Background(), "comp-1", enableRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, status.Step)
}

func TestEnable_InvalidPayload(t *testing.T) {
	svc, _ := testService()

	_, err := svc.Enable(context.Background(), "comp-1", company.CreateCompanyRequest{Name: "", EffectiveDate: "not-a-date"})
	assert.Error(t, err)
}

func TestAdvance_RequiresEnable(t *testing.T) {
	svc, repo := testService()
	repo.companies["comp-1"] = company.Company{ID: "comp-1", SetupStep: 0}

	_, err := svc.Advance(context.Background(), "comp-1")
	assert.ErrorIs(t, err, ErrSetupNotEnabled)
}

func TestAdvance_WalksToCompletion(t *testing.T) {
	svc, _ := testService()

	_, err := svc.Enable(context.Background(), "comp-1", enableRequest())
	require.NoError(t, err)

	var status Status
	for step := 2; step <= 7; step++ {
		status, err = svc.Advance(context.Background(), "comp-1")
		require.NoError(t, err)
		assert.Equal(t, step, status.Step)
	}

	// Advancing past the last step completes setup and clears the pointer.
	status, err = svc.Advance(context.Background(), "comp-1")
	require.NoError(t, err)
	assert.True(t, status.Completed)
	assert.Zero(t, status.Step)
	assert.True(t, status.Enabled)

	_, err = svc.Advance(context.Background(), "comp-1")
	assert.ErrorIs(t, err, ErrSetupAlreadyCompleted)
}

func TestBack_StopsAtStepOne(t *testing.T) {
	svc, _ := testService()

	_, err := svc.Enable(context.Background(), "comp-1", enableRequest())
	require.NoError(t, err)
	_, err = svc.Advance(context.Background(), "comp-1")
	require.NoError(t, err)

	status, err := svc.Back(context.Background(), "comp-1")
	require.NoError(t, err)
	assert.Equal(t, 1, status.Step)

	// Back at the first step holds position rather than disabling setup.
	status, err = svc.Back(context.Background(), "comp-1")
	require.NoError(t, err)
	assert.Equal(t, 1, status.Step)
}

func TestBack_AfterCompletion(t *testing.T) {
	svc, repo := testService()
	repo.companies["comp-1"] = company.Company{ID: "comp-1", SetupCompleted: true}

	_, err := svc.Back(context.Background(), "comp-1")
	assert.ErrorIs(t, err, ErrSetupAlreadyCompleted)
}
