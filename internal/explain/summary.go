package explain

import (
	"fmt"
	"strings"

	"github.com/altolabs/cashplan/internal/domain"
)

// Truncation limits keep the model prompt compact.
const (
	maxSummaryIncome = 6
	maxSummaryOutgo  = 10
)

// Summarize builds a compact model-facing summary of the request: labels,
// dates, amounts, and derived policy scalars only. No user identifiers or
// free-form account data go into the prompt.
func Summarize(p domain.RequestPayload) string {
	var lines []string
	lines = append(lines, "User state (truncated):")

	if len(p.CashIn) > 0 {
		lines = append(lines, "  Income: "+joinEvents(p.CashIn, maxSummaryIncome))
	}
	if len(p.CashOut) > 0 {
		lines = append(lines, "  Outgo:  "+joinEvents(p.CashOut, maxSummaryOutgo))
	}
	lines = append(lines, fmt.Sprintf("Policy: buffer_min=%.0f weekend_payments=%t",
		p.Policy.BufferMin, p.Policy.WeekendPayments))

	return strings.Join(lines, "\n")
}

func joinEvents(events []domain.CashEvent, max int) string {
	if len(events) > max {
		events = events[:max]
	}
	parts := make([]string, 0, len(events))
	for _, ev := range events {
		s := fmt.Sprintf("%s %s $%.2f", ev.Label, ev.Date, ev.Amount)
		if ev.Fixed {
			s += " (fixed)"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "; ")
}
