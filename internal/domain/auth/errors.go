package auth

import "errors"

var (
	ErrInvalidToken           = errors.New("Invalid token")
	ErrAdminPrivilegeRequired = errors.New("Admin privilege required")
	ErrCompanyIDRequired      = errors.New("Company id required")
)
