package leavetype

import "errors"

var (
	ErrLeaveTypeNotFound   = errors.New("Leave type not found")
	ErrLeaveTypeNameExists = errors.New("Leave type name already exists")
)
