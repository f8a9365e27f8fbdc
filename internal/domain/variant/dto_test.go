package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenwork-hr/leave-backend-go/internal/pkg/validator"
)

func validCreateRequest() CreateVariantRequest {
	return CreateVariantRequest{
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

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs.ToMap()
}

func TestCreateVariantRequest_ValidPasses(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateVariantRequest_SupportingDocumentsText(t *testing.T) {
	req := validCreateRequest()
	req.SupportingDocuments = true

	fields := fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "supporting_documents_text")

	req.SupportingDocumentsText = "Medical certificate"
	assert.NoError(t, req.Validate())
}

func TestCreateVariantRequest_EncashmentGating(t *testing.T) {
	req := validCreateRequest()
	req.Encashment = true

	fields := fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "encashment_calculation")
	assert.Contains(t, fields, "max_encashment_days")

	req.EncashmentCalculation = "basic"
	req.MaxEncashmentDays = intPtr(0)
	fields = fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "max_encashment_days")

	req.MaxEncashmentDays = intPtr(10)
	assert.NoError(t, req.Validate())

	// -1 is the documented no-limit sentinel.
	req.MaxEncashmentDays = intPtr(NoEncashmentLimit)
	assert.NoError(t, req.Validate())
}

func TestCreateVariantRequest_NoLimitSentinelRoundTrip(t *testing.T) {
	req := validCreateRequest()
	req.Encashment = true
	req.EncashmentCalculation = "basic"
	req.MaxEncashmentDays = intPtr(NoEncashmentLimit)
	require.NoError(t, req.Validate())

	entity := req.ToEntity("comp-1", TypeLeave)
	assert.Equal(t, 1000, entity.MaxEncashmentDays, "sentinel stored as the internal no-limit value")

	resp := NewVariantResponse(entity)
	assert.Equal(t, NoEncashmentLimit, resp.MaxEncashmentDays, "response decodes back to -1")

	back := entity.AsRequest()
	require.NotNil(t, back.MaxEncashmentDays)
	assert.Equal(t, NoEncashmentLimit, *back.MaxEncashmentDays)
	assert.NoError(t, back.Validate(), "round-tripped entity still validates")
}

func TestCreateVariantRequest_HalfDayPrecision(t *testing.T) {
	req := validCreateRequest()
	req.PaidDaysInYear = 12.5

	fields := fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "paid_days_in_year")

	req.AllowHalfDay = true
	assert.NoError(t, req.Validate())

	req.PaidDaysInYear = 12.25
	fields = fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "paid_days_in_year")
}

func TestCreateVariantRequest_SlabSystemNeedsSlabs(t *testing.T) {
	req := validCreateRequest()
	req.ProRataCalculation = "slab_system"

	fields := fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "pro_rata_calculation")

	req.OnboardingSlabs = []SlabInput{slab(1, 31, 2)}
	assert.NoError(t, req.Validate())

	// A non-empty exit set is validated independently.
	req.ExitSlabs = []SlabInput{slab(1, 10, 1)}
	fields = fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "exit_slabs")
}

func TestCreateVariantRequest_GenderRules(t *testing.T) {
	req := validCreateRequest()
	req.ApplicableGenders = nil

	fields := fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "applicable_genders")

	req.ApplicableGenders = []string{"male", "other"}
	fields = fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "applicable_genders")
}

func TestCreateVariantRequest_ApplicableAfterDays(t *testing.T) {
	req := validCreateRequest()
	req.ApplicableAfterType = "days"

	fields := fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "applicable_after_days")

	req.ApplicableAfterDays = 90
	assert.NoError(t, req.Validate())
}

func TestCreateVariantRequest_CollectsEveryViolation(t *testing.T) {
	req := CreateVariantRequest{}

	fields := fieldsOf(t, req.Validate())
	for _, f := range []string{
		"name", "description", "leaves_granted_on", "grant_frequency",
		"pro_rata_calculation", "applicable_genders", "applicable_after_type",
	} {
		assert.Contains(t, fields, f)
	}
}

func TestNormalize_AdvancePlanningWins(t *testing.T) {
	req := validCreateRequest()
	req.MustBePlannedInAdvance = 7
	req.GracePeriod = 3
	require.NoError(t, req.Validate())

	entity := req.ToEntity("comp-1", TypeLeave)
	assert.Equal(t, 7, entity.MustBePlannedInAdvance)
	assert.Equal(t, 0, entity.GracePeriod, "grace period cleared when both set")
}

func TestNormalize_Defaults(t *testing.T) {
	req := validCreateRequest()
	entity := req.ToEntity("comp-1", TypeCompOff)
	assert.Equal(t, WithdrawalNotAllowed, entity.Withdrawal, "unset withdrawal defaults to not_allowed")
	assert.Equal(t, TypeCompOff, entity.Type)

	entity.Encashment = false
	entity.EncashmentCalculation = "basic"
	entity.MaxEncashmentDays = 12
	entity.Normalize()
	assert.Empty(t, entity.EncashmentCalculation, "encashment fields cleared when disabled")
	assert.Zero(t, entity.MaxEncashmentDays)
}

func TestUpdateVariantRequest_ExclusivityOnPatch(t *testing.T) {
	req := validCreateRequest()
	entity := req.ToEntity("comp-1", TypeLeave)
	entity.GracePeriod = 5

	// Setting advance planning clears the grace period.
	patch := UpdateVariantRequest{MustBePlannedInAdvance: intPtr(10)}
	patch.Apply(&entity)
	assert.Equal(t, 10, entity.MustBePlannedInAdvance)
	assert.Zero(t, entity.GracePeriod)

	// And the reverse.
	patch = UpdateVariantRequest{GracePeriod: intPtr(2)}
	patch.Apply(&entity)
	assert.Equal(t, 2, entity.GracePeriod)
	assert.Zero(t, entity.MustBePlannedInAdvance)
}

func TestUpdateVariantRequest_BothInOnePatch(t *testing.T) {
	req := validCreateRequest()
	entity := req.ToEntity("comp-1", TypeLeave)

	patch := UpdateVariantRequest{
		MustBePlannedInAdvance: intPtr(7),
		GracePeriod:            intPtr(3),
	}
	patch.Apply(&entity)

	assert.Equal(t, 7, entity.MustBePlannedInAdvance, "advance planning wins when one patch sets both")
	assert.Zero(t, entity.GracePeriod)
}

func TestUpdateVariantRequest_MergedResultRevalidates(t *testing.T) {
	req := validCreateRequest()
	entity := req.ToEntity("comp-1", TypeLeave)

	// A patch that flips encashment on without its companions must fail the
	// shared rule set when revalidated.
	on := true
	patch := UpdateVariantRequest{Encashment: &on}
	patch.Apply(&entity)

	merged := entity.AsRequest()
	fields := fieldsOf(t, merged.Validate())
	assert.Contains(t, fields, "encashment_calculation")
	assert.Contains(t, fields, "max_encashment_days")
}
