package planner

import (
	"time"

	"cloud.google.com/go/civil"
)

// avoidWeekend shifts a Saturday forward two days and a Sunday forward one
// day, so the result is always a Monday or the unchanged weekday. The rule is
// a single deterministic adjustment; there is no search across weeks.
func avoidWeekend(d civil.Date) civil.Date {
	switch d.In(time.UTC).Weekday() {
	case time.Saturday:
		return d.AddDays(2)
	case time.Sunday:
		return d.AddDays(1)
	}
	return d
}
