package role

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ScreenPermission is the view/modify pair for one admin screen.
type ScreenPermission struct {
	View   bool `json:"view"`
	Modify bool `json:"modify"`
}

// OnBehalf lists which request types a role may raise on behalf of another
// employee.
type OnBehalf struct {
	BTO     bool `json:"bto"`
	Leave   bool `json:"leave"`
	CompOff bool `json:"comp_off"`
}

// Permissions is the fixed-shape permission object stored as JSONB. Screens
// are a closed set; adding one is a schema-level change, not data.
type Permissions struct {
	EmployeeOverview ScreenPermission `json:"employee_overview"`
	Approvals        ScreenPermission `json:"approvals"`
	Reports          ScreenPermission `json:"reports"`
	AdminLeaveTypes  ScreenPermission `json:"admin_leave_types"`
	AdminCompOff     ScreenPermission `json:"admin_comp_off"`
	AdminBTO         ScreenPermission `json:"admin_bto"`
	AdminWorkflows   ScreenPermission `json:"admin_workflows"`
	AdminRoles       ScreenPermission `json:"admin_roles"`
	AllowOnBehalf    OnBehalf         `json:"allow_on_behalf"`
}

// Value implements driver.Valuer for database storage
func (p Permissions) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for database retrieval
func (p *Permissions) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Permissions: invalid type")
	}
	return json.Unmarshal(bytes, p)
}

// Role entity
type Role struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	Permissions Permissions
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
