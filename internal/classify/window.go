package classify

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/altolabs/cashplan/internal/domain"
)

// windowFor computes the allowed reschedule interval around an anchor date,
// clamped to the anchor's calendar month. Offsets must be non-negative, so
// the anchor always stays inside the returned window.
func windowFor(anchor civil.Date, daysBefore, daysAfter int) *domain.Window {
	start := anchor.AddDays(-daysBefore)
	end := anchor.AddDays(daysAfter)

	firstOfMonth := civil.Date{Year: anchor.Year, Month: anchor.Month, Day: 1}
	lastOfMonth := civil.Date{Year: anchor.Year, Month: anchor.Month, Day: daysInMonth(anchor.Year, anchor.Month)}

	if start.Before(firstOfMonth) {
		start = firstOfMonth
	}
	if end.After(lastOfMonth) {
		end = lastOfMonth
	}
	return &domain.Window{Start: start, End: end}
}

// daysInMonth returns the number of days in a month, leap years included.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
