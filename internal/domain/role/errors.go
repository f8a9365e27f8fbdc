package role

import "errors"

var (
	ErrRoleNotFound   = errors.New("Role not found")
	ErrRoleNameExists = errors.New("Role name already exists")
)
