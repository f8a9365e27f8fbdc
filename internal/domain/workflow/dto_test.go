package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenwork-hr/leave-backend-go/internal/pkg/validator"
)

func validSaveRequest() SaveWorkflowRequest {
	return SaveWorkflowRequest{
		Name:          "Leave approval",
		EffectiveDate: "2026-01-01",
		Process:       "application",
		SubProcesses:  []string{"apply-leave", "withdraw-leave"},
		Steps: []StepInput{
			{Title: "Manager", RoleIDs: []string{"role-1"}, Kind: "intermediate", AutoForward: true},
			{Title: "HR", RoleIDs: []string{"role-2"}, Kind: "final"},
		},
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs.ToMap()
}

func TestSaveWorkflowRequest_ValidPasses(t *testing.T) {
	req := validSaveRequest()
	assert.NoError(t, req.Validate())
}

func TestSaveWorkflowRequest_UntitledStepAllowed(t *testing.T) {
	req := validSaveRequest()
	req.Steps[0].Title = ""
	assert.NoError(t, req.Validate())
}

func TestSaveWorkflowRequest_SubProcessesMustMatchProcess(t *testing.T) {
	req := validSaveRequest()
	req.SubProcesses = []string{"apply-pto"}

	fields := fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "sub_processes")

	req.Process = "pto"
	req.SubProcesses = []string{"apply-pto", "withdraw-pto"}
	assert.NoError(t, req.Validate())

	req.SubProcesses = nil
	fields = fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "sub_processes")
}

func TestSaveWorkflowRequest_UnknownProcess(t *testing.T) {
	req := validSaveRequest()
	req.Process = "expense"

	fields := fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "process")
}

func TestSaveWorkflowRequest_LastStepMustBeFinal(t *testing.T) {
	req := validSaveRequest()
	req.Steps[1].Kind = "intermediate"

	fields := fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "steps[1].kind")
}

func TestSaveWorkflowRequest_OnlyLastStepMayBeFinal(t *testing.T) {
	req := validSaveRequest()
	req.Steps[0].Kind = "final"
	req.Steps[0].AutoForward = false

	fields := fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "steps[0].kind")
}

func TestSaveWorkflowRequest_AutoApproveOnlyOnFinal(t *testing.T) {
	req := validSaveRequest()
	req.Steps[0].AutoApprove = true

	fields := fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "steps[0].auto_approve")
}

func TestSaveWorkflowRequest_AutoForwardOnlyOnIntermediate(t *testing.T) {
	req := validSaveRequest()
	req.Steps[1].AutoForward = true

	fields := fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "steps[1].auto_forward")
}

func TestSaveWorkflowRequest_AutoApproveTimer(t *testing.T) {
	req := validSaveRequest()
	req.Steps[1].AutoApprove = true

	// Zero timer rejected.
	fields := fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "steps[1]")

	// Negative timer rejected.
	req.Steps[1].Days = -1
	fields = fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "steps[1]")

	// Hours alone are enough.
	req.Steps[1].Days = 0
	req.Steps[1].Hours = 4
	assert.NoError(t, req.Validate())
}

func TestSaveWorkflowRequest_StepNeedsApproverRole(t *testing.T) {
	req := validSaveRequest()
	req.Steps[0].RoleIDs = nil

	fields := fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "steps[0].role_ids")
}

func TestSaveWorkflowRequest_NoSteps(t *testing.T) {
	req := validSaveRequest()
	req.Steps = nil

	fields := fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "steps")
}

func TestSaveWorkflowRequest_ToEntity(t *testing.T) {
	req := validSaveRequest()
	entity := req.ToEntity("comp-1")

	assert.Equal(t, "comp-1", entity.CompanyID)
	assert.Equal(t, ProcessApplication, entity.Process)
	require.Len(t, entity.Steps, 2)
	assert.Equal(t, StepIntermediate, entity.Steps[0].Kind)
	assert.Equal(t, StepFinal, entity.Steps[1].Kind)
	assert.Equal(t, "2026-01-01", entity.EffectiveDate.Format("2006-01-02"))
}
