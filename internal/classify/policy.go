package classify

import (
	"github.com/altolabs/cashplan/internal/domain"
)

// DefaultPolicy returns the suggested fallback policy for callers that did
// not supply one. It is a documented default, not a computed recommendation;
// the caller decides whether to apply it to a planning run.
func DefaultPolicy() domain.Policy {
	return domain.Policy{
		BufferMin:          300,
		NeverMove:          []string{"Rent"},
		WeekendPayments:    false,
		BNPLGuardDays:      7,
		UtilizationTargets: map[string]float64{"default": 0.10},
	}
}
