package leavetype

import (
	"context"
	"strconv"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/leavetype"
)

type fakeLeaveTypeRepo struct {
	leaveTypes map[string]leavetype.LeaveType
	nextID     int
}

func newFakeLeaveTypeRepo() *fakeLeaveTypeRepo {
	return &fakeLeaveTypeRepo{leaveTypes: make(map[string]leavetype.LeaveType)}
}

func (f *fakeLeaveTypeRepo) Create(_ context.Context, lt leavetype.LeaveType) (leavetype.LeaveType, error) {
	for _, existing := range f.leaveTypes {
		if existing.CompanyID == lt.CompanyID && existing.Name == lt.Name {
			return leavetype.LeaveType{}, &pgconn.PgError{Code: "23505"}
		}
	}
	f.nextID++
	lt.ID = "lt-" + strconv.Itoa(f.nextID)
	f.leaveTypes[lt.ID] = lt
	return lt, nil
}

func (f *fakeLeaveTypeRepo) GetByID(_ context.Context, id string) (leavetype.LeaveType, error) {
	lt, ok := f.leaveTypes[id]
	if !ok {
		return leavetype.LeaveType{}, leavetype.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (f *fakeLeaveTypeRepo) ListByCompany(_ context.Context, companyID string) ([]leavetype.LeaveType, error) {
	var out []leavetype.LeaveType
	for _, lt := range f.leaveTypes {
		if lt.CompanyID == companyID {
			out = append(out, lt)
		}
	}
	return out, nil
}

func (f *fakeLeaveTypeRepo) Update(_ context.Context, lt leavetype.LeaveType) error {
	if _, ok := f.leaveTypes[lt.ID]; !ok {
		return leavetype.ErrLeaveTypeNotFound
	}
	f.leaveTypes[lt.ID] = lt
	return nil
}

func (f *fakeLeaveTypeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.leaveTypes[id]; !ok {
		return leavetype.ErrLeaveTypeNotFound
	}
	delete(f.leaveTypes, id)
	return nil
}

func testService() (LeaveTypeService, *fakeLeaveTypeRepo) {
	repo := newFakeLeaveTypeRepo()
	return NewLeaveTypeService(repo), repo
}

func TestCreate_DuplicateNameMapsToSentinel(t *testing.T) {
	svc, _ := testService()

	_, err := svc.Create(context.Background(), "comp-1", leavetype.CreateLeaveTypeRequest{Name: "Earned"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "comp-1", leavetype.CreateLeaveTypeRequest{Name: "Earned"})
	assert.ErrorIs(t, err, leavetype.ErrLeaveTypeNameExists)
}

func TestUpdate_AppliesPatch(t *testing.T) {
	svc, _ := testService()

	created, err := svc.Create(context.Background(), "comp-1", leavetype.CreateLeaveTypeRequest{Name: "Earned"})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(context.Background(), created.ID, "comp-1", leavetype.UpdateLeaveTypeRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Earned", updated.Name, "untouched fields survive the patch")
}

func TestItemOperations_ScopedToOwnCompany(t *testing.T) {
	svc, repo := testService()

	created, err := svc.Create(context.Background(), "comp-1", leavetype.CreateLeaveTypeRequest{Name: "Earned"})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), created.ID, "comp-2")
	assert.ErrorIs(t, err, leavetype.ErrLeaveTypeNotFound)

	name := "Hijacked"
	_, err = svc.Update(context.Background(), created.ID, "comp-2", leavetype.UpdateLeaveTypeRequest{Name: &name})
	assert.ErrorIs(t, err, leavetype.ErrLeaveTypeNotFound)

	err = svc.Delete(context.Background(), created.ID, "comp-2")
	assert.ErrorIs(t, err, leavetype.ErrLeaveTypeNotFound)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Earned", stored.Name, "another company's update changes nothing")

	_, err = svc.Get(context.Background(), created.ID, "comp-1")
	assert.NoError(t, err)
}
