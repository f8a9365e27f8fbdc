package assignment

import (
	"time"

	"github.com/zenwork-hr/leave-backend-go/internal/domain/variant"
)

// Kind tags which policy family an assignment belongs to.
type Kind string

const (
	KindLeaveVariant   Kind = "leave_variant"
	KindCompOffVariant Kind = "comp_off_variant"
	KindPTOVariant     Kind = "pto_variant"
)

func (k Kind) Valid() bool {
	switch k {
	case KindLeaveVariant, KindCompOffVariant, KindPTOVariant:
		return true
	}
	return false
}

// KindForVariant maps a variant type to its assignment kind.
func KindForVariant(t variant.Type) Kind {
	switch t {
	case variant.TypeCompOff:
		return KindCompOffVariant
	case variant.TypePTO:
		return KindPTOVariant
	default:
		return KindLeaveVariant
	}
}

// Assignment links one external employee identifier to one variant.
type Assignment struct {
	ID        string
	UserID    string
	VariantID string
	Kind      Kind
	CreatedAt time.Time
}
