package employee

import "errors"

var (
	ErrDirectoryUnavailable = errors.New("Employee directory unavailable")
)
