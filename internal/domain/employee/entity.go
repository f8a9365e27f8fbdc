package employee

// Employee is one row of the external directory roster. The directory is the
// source of truth; this service never writes employees.
type Employee struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Gender         string `json:"gender"` // "male", "female", or "" when unspecified
	WorkerType     string `json:"worker_type"`
	Attribute      string `json:"attribute"`
	SubAttribute   string `json:"sub_attribute"`
	Active         bool   `json:"active"`
}
