package employee

import "strings"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusAll      = "all"
)

// Filter narrows a roster. Zero-value fields mean "no restriction".
type Filter struct {
	Search        string
	Genders       []string
	WorkerTypes   []string
	Attributes    []string
	SubAttributes []string
	Status        string
}

// Matches reports whether e passes every restriction in f.
//
// Gender filtering is deliberately permissive: an employee whose gender is
// unspecified (blank) is eligible regardless of the gender filter, so that
// incomplete directory records never disappear from assignment screens.
func (f Filter) Matches(e Employee) bool {
	if !f.matchesSearch(e) {
		return false
	}
	if !f.matchesGender(e) {
		return false
	}
	if len(f.WorkerTypes) > 0 && !contains(f.WorkerTypes, e.WorkerType) {
		return false
	}
	if len(f.Attributes) > 0 && !contains(f.Attributes, e.Attribute) {
		return false
	}
	if len(f.SubAttributes) > 0 && !contains(f.SubAttributes, e.SubAttribute) {
		return false
	}
	switch f.Status {
	case StatusActive:
		return e.Active
	case StatusInactive:
		return !e.Active
	default: // "", "all"
		return true
	}
}

func (f Filter) matchesSearch(e Employee) bool {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.EmployeeNumber), q) ||
		strings.Contains(strings.ToLower(e.Email), q)
}

func (f Filter) matchesGender(e Employee) bool {
	if len(f.Genders) == 0 {
		return true
	}
	if e.Gender == "" {
		return true
	}
	return contains(f.Genders, e.Gender)
}

// Apply returns the members of roster that pass f, preserving order.
func Apply(roster []Employee, f Filter) []Employee {
	var out []Employee
	for _, e := range roster {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func contains(values []string, v string) bool {
	for _, item := range values {
		if item == v {
			return true
		}
	}
	return false
}
