package fixtures

import (
	"github.com/zenwork-hr/leave-backend-go/internal/domain/employee"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/role"
)

// ==========================================
// DEFAULT ROLES
// ==========================================

// GetDefaultRoles returns the three roles seeded at first-time setup. They
// are created only when the company has no roles at all.
func GetDefaultRoles(companyID string) []role.Role {
	fullAccess := role.ScreenPermission{View: true, Modify: true}
	viewOnly := role.ScreenPermission{View: true}

	return []role.Role{
		{
			CompanyID:   companyID,
			Name:        "Admin",
			Description: "Full access to every screen and configuration",
			Permissions: role.Permissions{
				EmployeeOverview: fullAccess,
				Approvals:        fullAccess,
				Reports:          fullAccess,
				AdminLeaveTypes:  fullAccess,
				AdminCompOff:     fullAccess,
				AdminBTO:         fullAccess,
				AdminWorkflows:   fullAccess,
				AdminRoles:       fullAccess,
				AllowOnBehalf:    role.OnBehalf{BTO: true, Leave: true, CompOff: true},
			},
		},
		{
			CompanyID:   companyID,
			Name:        "Reporting Manager",
			Description: "Reviews and approves requests from direct reports",
			Permissions: role.Permissions{
				EmployeeOverview: viewOnly,
				Approvals:        fullAccess,
				Reports:          viewOnly,
				AllowOnBehalf:    role.OnBehalf{BTO: true, Leave: true, CompOff: true},
			},
		},
		{
			CompanyID:   companyID,
			Name:        "Employee",
			Description: "Raises and tracks own requests",
			Permissions: role.Permissions{
				EmployeeOverview: viewOnly,
			},
		},
	}
}

// ==========================================
// SAMPLE ROSTER
// ==========================================

// GetSampleRoster is the degraded-mode roster used when the external
// employee directory cannot be reached, so assignment screens stay usable.
func GetSampleRoster() []employee.Employee {
	return []employee.Employee{
		{ID: "sample-001", EmployeeNumber: "0001-0001", Name: "Asha Nair", Email: "asha.nair@example.com", Gender: "female", WorkerType: "full_time", Attribute: "Engineering", SubAttribute: "Platform", Active: true},
		{ID: "sample-002", EmployeeNumber: "0001-0002", Name: "Rohit Iyer", Email: "rohit.iyer@example.com", Gender: "male", WorkerType: "full_time", Attribute: "Engineering", SubAttribute: "Product", Active: true},
		{ID: "sample-003", EmployeeNumber: "0001-0003", Name: "Maya Pillai", Email: "maya.pillai@example.com", Gender: "female", WorkerType: "contract", Attribute: "Finance", SubAttribute: "Payroll", Active: true},
		{ID: "sample-004", EmployeeNumber: "0001-0004", Name: "Jordan Lee", Email: "jordan.lee@example.com", Gender: "", WorkerType: "full_time", Attribute: "People", SubAttribute: "Operations", Active: true},
		{ID: "sample-005", EmployeeNumber: "0001-0005", Name: "Vikram Das", Email: "vikram.das@example.com", Gender: "male", WorkerType: "part_time", Attribute: "Support", SubAttribute: "Tier 1", Active: false},
	}
}
