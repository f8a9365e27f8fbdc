package variant

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/assignment"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/leavetype"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/variant"
	"github.com/zenwork-hr/leave-backend-go/internal/pkg/validator"
)

// The fakes share an event log so tests can assert ordering relative to the
// transaction boundary.

type fixture struct {
	events         []string
	variants       map[string]variant.Variant
	assignments    map[string][]string
	assignmentKind map[string]assignment.Kind
	leaveTypes     map[string]leavetype.LeaveType
	nextID         int
}

func newFixture() *fixture {
	return &fixture{
		variants:       make(map[string]variant.Variant),
		assignments:    make(map[string][]string),
		assignmentKind: make(map[string]assignment.Kind),
		leaveTypes:     make(map[string]leavetype.LeaveType),
	}
}

func (f *fixture) tx(ctx context.Context, fn func(txCtx context.Context) error) error {
	f.events = append(f.events, "tx-begin")
	err := fn(ctx)
	if err != nil {
		f.events = append(f.events, "tx-rollback")
		return err
	}
	f.events = append(f.events, "tx-commit")
	return nil
}

type fakeVariantRepo struct{ f *fixture }

func (r *fakeVariantRepo) Create(_ context.Context, v variant.Variant) (variant.Variant, error) {
	r.f.nextID++
	v.ID = "var-1"
	r.f.variants[v.ID] = v
	r.f.events = append(r.f.events, "create-variant")
	return v, nil
}

func (r *fakeVariantRepo) GetByID(_ context.Context, id string) (variant.Variant, error) {
	v, ok := r.f.variants[id]
	if !ok {
		return variant.Variant{}, variant.ErrVariantNotFound
	}
	return v, nil
}

func (r *fakeVariantRepo) ListByCompany(_ context.Context, companyID string, t variant.Type) ([]variant.Variant, error) {
	var out []variant.Variant
	for _, v := range r.f.variants {
		if v.CompanyID == companyID && v.Type == t {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVariantRepo) Update(_ context.Context, v variant.Variant) error {
	if _, ok := r.f.variants[v.ID]; !ok {
		return variant.ErrVariantNotFound
	}
	r.f.variants[v.ID] = v
	r.f.events = append(r.f.events, "update-variant")
	return nil
}

func (r *fakeVariantRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.f.variants[id]; !ok {
		return variant.ErrVariantNotFound
	}
	delete(r.f.variants, id)
	delete(r.f.assignments, id)
	return nil
}

type fakeAssignmentRepo struct{ f *fixture }

func (r *fakeAssignmentRepo) ReplaceForVariant(_ context.Context, variantID string, kind assignment.Kind, userIDs []string) error {
	r.f.assignments[variantID] = append([]string(nil), userIDs...)
	r.f.assignmentKind[variantID] = kind
	r.f.events = append(r.f.events, "replace-assignments")
	return nil
}

func (r *fakeAssignmentRepo) ListByVariant(_ context.Context, variantID string) ([]assignment.Assignment, error) {
	var out []assignment.Assignment
	for _, userID := range r.f.assignments[variantID] {
		out = append(out, assignment.Assignment{
			ID:        "asg-" + userID,
			UserID:    userID,
			VariantID: variantID,
			Kind:      r.f.assignmentKind[variantID],
		})
	}
	return out, nil
}

func (r *fakeAssignmentRepo) DeleteByVariant(_ context.Context, variantID string) error {
	delete(r.f.assignments, variantID)
	return nil
}

type fakeLeaveTypeRepo struct{ f *fixture }

func (r *fakeLeaveTypeRepo) Create(_ context.Context, lt leavetype.LeaveType) (leavetype.LeaveType, error) {
	r.f.leaveTypes[lt.ID] = lt
	return lt, nil
}

func (r *fakeLeaveTypeRepo) GetByID(_ context.Context, id string) (leavetype.LeaveType, error) {
	lt, ok := r.f.leaveTypes[id]
	if !ok {
		return leavetype.LeaveType{}, leavetype.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (r *fakeLeaveTypeRepo) ListByCompany(_ context.Context, companyID string) ([]leavetype.LeaveType, error) {
	return nil, nil
}

func (r *fakeLeaveTypeRepo) Update(_ context.Context, lt leavetype.LeaveType) error { return nil }

func (r *fakeLeaveTypeRepo) Delete(_ context.Context, id string) error { return nil }

func testService() (VariantService, *fixture) {
	f := newFixture()
	f.leaveTypes["lt-1"] = leavetype.LeaveType{ID: "lt-1", CompanyID: "comp-1", Name: "Earned"}
	svc := NewVariantService(
		f.tx,
		&fakeVariantRepo{f},
		&fakeAssignmentRepo{f},
		&fakeLeaveTypeRepo{f},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return svc, f
}

func createRequest() variant.CreateVariantRequest {
	return variant.CreateVariantRequest{
		LeaveTypeID:         "lt-1",
		Name:                "Earned Leave",
		Description:         "Standard earned leave policy",
		LeavesGrantedOn:     "calendar_days",
		PaidDaysInYear:      24,
		GrantFrequency:      "per_month",
		ProRataCalculation:  "full_month",
		ApplicableGenders:   []string{"male", "female"},
		ApplicableAfterType: "date_of_joining",
	}
}

func TestCreate_StagedAssignmentsLandInSameTransaction(t *testing.T) {
	svc, f := testService()

	req := createRequest()
	req.AssignEmployeeIDs = []string{"u1", "u2"}

	resp, err := svc.Create(context.Background(), "comp-1", variant.TypeLeave, req)
	require.NoError(t, err)
	assert.Equal(t, "var-1", resp.ID)

	assert.Equal(t, []string{"tx-begin", "create-variant", "replace-assignments", "tx-commit"}, f.events,
		"staged employees are assigned after the create returns the id, inside the same transaction")
	assert.Equal(t, []string{"u1", "u2"}, f.assignments["var-1"])
	assert.Equal(t, assignment.KindLeaveVariant, f.assignmentKind["var-1"])
}

func TestCreate_DuplicateStagedIDsCollapse(t *testing.T) {
	svc, f := testService()

	req := createRequest()
	req.AssignEmployeeIDs = []string{"u1", "u2", "u1"}

	_, err := svc.Create(context.Background(), "comp-1", variant.TypeLeave, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, f.assignments["var-1"],
		"a repeated staged id is assigned once instead of violating the unique constraint")
}

func TestCreate_NoStagedAssignments(t *testing.T) {
	svc, f := testService()

	_, err := svc.Create(context.Background(), "comp-1", variant.TypeCompOff, createRequestWithoutLeaveType())
	require.NoError(t, err)
	assert.Equal(t, []string{"tx-begin", "create-variant", "tx-commit"}, f.events)
}

func createRequestWithoutLeaveType() variant.CreateVariantRequest {
	req := createRequest()
	req.LeaveTypeID = ""
	return req
}

func TestCreate_InvalidRequestWritesNothing(t *testing.T) {
	svc, f := testService()

	req := createRequest()
	req.Name = ""
	req.AssignEmployeeIDs = []string{"u1"}

	_, err := svc.Create(context.Background(), "comp-1", variant.TypeLeave, req)
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Empty(t, f.events, "validation failure precedes the transaction")
}

func TestCreate_UnknownLeaveType(t *testing.T) {
	svc, f := testService()

	req := createRequest()
	req.LeaveTypeID = "missing"

	_, err := svc.Create(context.Background(), "comp-1", variant.TypeLeave, req)
	assert.ErrorIs(t, err, leavetype.ErrLeaveTypeNotFound)
	assert.Empty(t, f.events)
}

func TestGet_HidesOtherFamilies(t *testing.T) {
	svc, _ := testService()

	_, err := svc.Create(context.Background(), "comp-1", variant.TypeLeave, createRequest())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "var-1", "comp-1", variant.TypeCompOff)
	assert.ErrorIs(t, err, variant.ErrVariantNotFound, "a comp-off route cannot read a leave variant")

	_, err = svc.Get(context.Background(), "var-1", "comp-1", variant.TypeLeave)
	assert.NoError(t, err)
}

func TestItemOperations_ScopedToOwnCompany(t *testing.T) {
	svc, f := testService()

	_, err := svc.Create(context.Background(), "comp-1", variant.TypeLeave, createRequest())
	require.NoError(t, err)
	f.events = nil

	_, err = svc.Get(context.Background(), "var-1", "comp-2", variant.TypeLeave)
	assert.ErrorIs(t, err, variant.ErrVariantNotFound)

	name := "Hijacked"
	_, err = svc.Update(context.Background(), "var-1", "comp-2", variant.TypeLeave, variant.UpdateVariantRequest{Name: &name})
	assert.ErrorIs(t, err, variant.ErrVariantNotFound)

	err = svc.Delete(context.Background(), "var-1", "comp-2", variant.TypeLeave)
	assert.ErrorIs(t, err, variant.ErrVariantNotFound)

	_, err = svc.ListAssignments(context.Background(), "var-1", "comp-2")
	assert.ErrorIs(t, err, variant.ErrVariantNotFound)

	stored, err := svc.Get(context.Background(), "var-1", "comp-1", variant.TypeLeave)
	require.NoError(t, err)
	assert.Equal(t, "Earned Leave", stored.Name, "another company's update changes nothing")
	assert.Empty(t, f.events)
}

func TestUpdate_MergedResultMustRevalidate(t *testing.T) {
	svc, f := testService()

	_, err := svc.Create(context.Background(), "comp-1", variant.TypeLeave, createRequest())
	require.NoError(t, err)

	on := true
	_, err = svc.Update(context.Background(), "var-1", "comp-1", variant.TypeLeave, variant.UpdateVariantRequest{Encashment: &on})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "encashment_calculation")

	stored, getErr := svc.Get(context.Background(), "var-1", "comp-1", variant.TypeLeave)
	require.NoError(t, getErr)
	assert.False(t, stored.Encashment, "rejected patch leaves the stored variant untouched")
	assert.NotContains(t, f.events, "update-variant")
}

func TestBulkAssign_ReplacesPerVariant(t *testing.T) {
	svc, f := testService()

	_, err := svc.Create(context.Background(), "comp-1", variant.TypeLeave, createRequest())
	require.NoError(t, err)
	f.events = nil

	err = svc.BulkAssign(context.Background(), "comp-1", assignment.BulkAssignRequest{
		Assignments: []assignment.AssignmentInput{
			{UserID: "u1", LeaveVariantID: "var-1", AssignmentType: "leave_variant"},
			{UserID: "u2", LeaveVariantID: "var-1", AssignmentType: "leave_variant"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, f.assignments["var-1"])
	assert.Equal(t, []string{"tx-begin", "replace-assignments", "tx-commit"}, f.events)
}

func TestBulkAssign_RepeatedPairCollapses(t *testing.T) {
	svc, f := testService()

	_, err := svc.Create(context.Background(), "comp-1", variant.TypeLeave, createRequest())
	require.NoError(t, err)

	err = svc.BulkAssign(context.Background(), "comp-1", assignment.BulkAssignRequest{
		Assignments: []assignment.AssignmentInput{
			{UserID: "u1", LeaveVariantID: "var-1", AssignmentType: "leave_variant"},
			{UserID: "u1", LeaveVariantID: "var-1", AssignmentType: "leave_variant"},
			{UserID: "u2", LeaveVariantID: "var-1", AssignmentType: "leave_variant"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, f.assignments["var-1"],
		"a repeated pair is applied once instead of violating the unique constraint")
}

func TestBulkAssign_OtherCompanyVariant(t *testing.T) {
	svc, f := testService()

	_, err := svc.Create(context.Background(), "comp-1", variant.TypeLeave, createRequest())
	require.NoError(t, err)
	f.events = nil

	err = svc.BulkAssign(context.Background(), "comp-2", assignment.BulkAssignRequest{
		Assignments: []assignment.AssignmentInput{
			{UserID: "u1", LeaveVariantID: "var-1", AssignmentType: "leave_variant"},
		},
	})
	assert.ErrorIs(t, err, variant.ErrVariantNotFound)
	assert.Empty(t, f.events)
}

func TestBulkAssign_KindMismatch(t *testing.T) {
	svc, f := testService()

	_, err := svc.Create(context.Background(), "comp-1", variant.TypeLeave, createRequest())
	require.NoError(t, err)
	f.events = nil

	err = svc.BulkAssign(context.Background(), "comp-1", assignment.BulkAssignRequest{
		Assignments: []assignment.AssignmentInput{
			{UserID: "u1", LeaveVariantID: "var-1", AssignmentType: "comp_off_variant"},
		},
	})
	assert.ErrorIs(t, err, assignment.ErrKindMismatch)
	assert.Empty(t, f.events, "the mismatch is detected before any replacement runs")
}

func TestBulkAssign_UnknownVariant(t *testing.T) {
	svc, _ := testService()

	err := svc.BulkAssign(context.Background(), "comp-1", assignment.BulkAssignRequest{
		Assignments: []assignment.AssignmentInput{
			{UserID: "u1", LeaveVariantID: "ghost", AssignmentType: "leave_variant"},
		},
	})
	assert.ErrorIs(t, err, variant.ErrVariantNotFound)
}

func TestBulkAssign_EmptyPayload(t *testing.T) {
	svc, _ := testService()

	err := svc.BulkAssign(context.Background(), "comp-1", assignment.BulkAssignRequest{})
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "assignments")
}
