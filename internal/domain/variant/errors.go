package variant

import "errors"

var (
	ErrVariantNotFound = errors.New("Variant not found")
	ErrUnknownType     = errors.New("Unknown variant type")
)
