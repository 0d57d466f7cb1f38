package planner

import (
	"fmt"
	"time"

	"github.com/altolabs/cashplan/internal/domain"
)

// resolveMonth picks the reporting month for a plan: the YYYY-MM prefix that
// occurs most often across the outflow and inflow event dates, scanned in
// that order. Ties resolve to the prefix seen first; zero-valued dates are
// skipped. With no dated events at all, the current calendar month is used.
func resolveMonth(cashOut, cashIn []domain.CashEvent, now time.Time) string {
	counts := make(map[string]int)
	var order []string

	count := func(events []domain.CashEvent) {
		for _, ev := range events {
			if ev.Date.IsZero() {
				continue
			}
			key := fmt.Sprintf("%04d-%02d", ev.Date.Year, int(ev.Date.Month))
			if _, seen := counts[key]; !seen {
				order = append(order, key)
			}
			counts[key]++
		}
	}
	count(cashOut)
	count(cashIn)

	best, bestCount := "", 0
	for _, key := range order {
		if counts[key] > bestCount {
			best, bestCount = key, counts[key]
		}
	}
	if best == "" {
		return now.Format("2006-01")
	}
	return best
}
