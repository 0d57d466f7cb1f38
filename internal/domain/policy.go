package domain

// Policy holds the user-defined guardrails for one planning run. It is
// immutable per request; each request receives its own copy.
type Policy struct {
	BufferMin          float64            `json:"buffer_min"`
	NeverMove          []string           `json:"never_move"`
	WeekendPayments    bool               `json:"weekend_payments"`
	BNPLGuardDays      int                `json:"bnpl_guard_days"`
	UtilizationTargets map[string]float64 `json:"utilization_targets"`
}

// Locked reports whether a label is on the never-move list. Locked labels are
// excluded from rescheduling regardless of the event's Fixed flag.
func (p Policy) Locked(label string) bool {
	for _, l := range p.NeverMove {
		if l == label {
			return true
		}
	}
	return false
}

// UtilizationTarget returns the target utilization fraction for a category,
// falling back to the "default" entry, then to 0.10.
func (p Policy) UtilizationTarget(category string) float64 {
	if t, ok := p.UtilizationTargets[category]; ok {
		return t
	}
	if t, ok := p.UtilizationTargets["default"]; ok {
		return t
	}
	return 0.10
}

// Card is a credit card the engine may schedule pre-cut payments against.
// CutDay and DueDay are day-of-month integers in [1,31].
type Card struct {
	ID      string   `json:"id"`
	Limit   float64  `json:"limit"`
	Balance float64  `json:"balance"`
	CutDay  int      `json:"cut_day"`
	DueDay  int      `json:"due_day"`
	APR     *float64 `json:"apr,omitempty"`
}

// Utilization is the card's current balance-to-limit ratio. Returns 0 for a
// non-positive limit.
func (c Card) Utilization() float64 {
	if c.Limit <= 0 {
		return 0
	}
	return c.Balance / c.Limit
}
