package company

import "errors"

var (
	ErrCompanyNotFound = errors.New("Company not found")
)
