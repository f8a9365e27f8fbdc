package variant

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/zenwork-hr/leave-backend-go/internal/pkg/validator"
)

// Slab day bounds. Coverage is evaluated against the nominal 31-day month:
// months with fewer days simply never reach the unreachable day numbers, so
// no calendar-aware remapping is done for February and friends.
const (
	minSlabDay = 1
	maxSlabDay = 31
)

// SlabInput is the wire form of a slab. Pointer fields distinguish an absent
// value from a zero.
type SlabInput struct {
	FromDay  *int     `json:"from_day"`
	ToDay    *int     `json:"to_day"`
	EarnDays *float64 `json:"earn_days"`
}

// ValidateSlabSet checks one slab set (all onboarding slabs or all exit
// slabs) against the full rule set and returns every violation, not just the
// first:
//
//   - every slab needs from_day, to_day and earn_days, earn_days >= 0,
//     both days within 1..31 and from_day <= to_day
//   - no two slabs may overlap
//   - the union of all ranges must cover every day 1..31
//   - earn_days may not exceed paid_days_in_year / periods-per-year
//
// Onboarding and exit sets are independent; callers validate each on its own.
func ValidateSlabSet(field string, slabs []SlabInput, paidDaysInYear float64, freq GrantFrequency) validator.ValidationErrors {
	var errs validator.ValidationErrors

	for i, s := range slabs {
		prefix := fmt.Sprintf("%s[%d]", field, i)
		if s.FromDay == nil {
			errs = append(errs, validator.ValidationError{Field: prefix + ".from_day", Message: "from_day is required"})
		}
		if s.ToDay == nil {
			errs = append(errs, validator.ValidationError{Field: prefix + ".to_day", Message: "to_day is required"})
		}
		if s.EarnDays == nil {
			errs = append(errs, validator.ValidationError{Field: prefix + ".earn_days", Message: "earn_days is required"})
		}
		if s.EarnDays != nil && *s.EarnDays < 0 {
			errs = append(errs, validator.ValidationError{Field: prefix + ".earn_days", Message: "earn_days must not be negative"})
		}
		if s.FromDay != nil && (*s.FromDay < minSlabDay || *s.FromDay > maxSlabDay) {
			errs = append(errs, validator.ValidationError{Field: prefix + ".from_day", Message: "from_day must be between 1 and 31"})
		}
		if s.ToDay != nil && (*s.ToDay < minSlabDay || *s.ToDay > maxSlabDay) {
			errs = append(errs, validator.ValidationError{Field: prefix + ".to_day", Message: "to_day must be between 1 and 31"})
		}
		if s.FromDay != nil && s.ToDay != nil && *s.FromDay > *s.ToDay {
			errs = append(errs, validator.ValidationError{Field: prefix, Message: "from_day must not be greater than to_day"})
		}
	}

	// Overlap and coverage only consider well-formed ranges; malformed slabs
	// are already reported above.
	for i := 0; i < len(slabs); i++ {
		if !wellFormed(slabs[i]) {
			continue
		}
		for j := i + 1; j < len(slabs); j++ {
			if !wellFormed(slabs[j]) {
				continue
			}
			if *slabs[i].FromDay <= *slabs[j].ToDay && *slabs[i].ToDay >= *slabs[j].FromDay {
				errs = append(errs, validator.ValidationError{
					Field: field,
					Message: fmt.Sprintf("slab %d (days %d-%d) overlaps slab %d (days %d-%d)",
						i+1, *slabs[i].FromDay, *slabs[i].ToDay, j+1, *slabs[j].FromDay, *slabs[j].ToDay),
				})
			}
		}
	}

	var covered [maxSlabDay + 1]bool
	for _, s := range slabs {
		if !wellFormed(s) {
			continue
		}
		for d := *s.FromDay; d <= *s.ToDay; d++ {
			covered[d] = true
		}
	}
	var missing []string
	for d := minSlabDay; d <= maxSlabDay; d++ {
		if !covered[d] {
			missing = append(missing, strconv.Itoa(d))
		}
	}
	if len(missing) > 0 {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: "days not covered by any slab: " + strings.Join(missing, ", "),
		})
	}

	// Per-slab cap: a slab may not grant more than one accrual period's
	// allocation. Decimal division keeps the comparison exact for half-day
	// amounts.
	periods := freq.PeriodsPerYear()
	if periods > 0 && paidDaysInYear > 0 {
		allocation := decimal.NewFromFloat(paidDaysInYear).Div(decimal.NewFromInt(int64(periods)))
		for i, s := range slabs {
			if s.EarnDays == nil {
				continue
			}
			if decimal.NewFromFloat(*s.EarnDays).GreaterThan(allocation) {
				errs = append(errs, validator.ValidationError{
					Field: fmt.Sprintf("%s[%d].earn_days", field, i),
					Message: fmt.Sprintf("earn_days must not exceed the period allocation of %s (%v paid days over %d periods)",
						allocation.String(), paidDaysInYear, periods),
				})
			}
		}
	}

	return errs
}

func wellFormed(s SlabInput) bool {
	return s.FromDay != nil && s.ToDay != nil &&
		*s.FromDay >= minSlabDay && *s.FromDay <= maxSlabDay &&
		*s.ToDay >= minSlabDay && *s.ToDay <= maxSlabDay &&
		*s.FromDay <= *s.ToDay
}

func slabInputs(set SlabSet) []SlabInput {
	inputs := make([]SlabInput, 0, len(set))
	for _, s := range set {
		from, to, earn := s.FromDay, s.ToDay, s.EarnDays
		inputs = append(inputs, SlabInput{FromDay: &from, ToDay: &to, EarnDays: &earn})
	}
	return inputs
}
