package assignment

import "errors"

var (
	ErrKindMismatch = errors.New("Assignment type does not match the variant type")
)
