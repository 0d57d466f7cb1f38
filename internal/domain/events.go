package domain

import (
	"cloud.google.com/go/civil"
)

// Window is the inclusive date range within which a flexible cash event may
// be rescheduled. Both bounds always fall inside the calendar month of the
// event date; the classifier guarantees Start <= End.
type Window struct {
	Start civil.Date `json:"start"`
	End   civil.Date `json:"end"`
}

// Contains reports whether d lies within the window, bounds included.
func (w Window) Contains(d civil.Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// CashEvent is a scheduled inflow or outflow derived from a classified
// transaction. Fixed events (income, rent) carry no window and are never
// eligible for rescheduling.
type CashEvent struct {
	ID     string     `json:"id"`
	Label  string     `json:"label"`
	Date   civil.Date `json:"date"`
	Amount float64    `json:"amount"`
	Fixed  bool       `json:"fixed"`
	Window *Window    `json:"window,omitempty"`
}
