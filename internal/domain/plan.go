package domain

import (
	"encoding/json"

	"cloud.google.com/go/civil"
)

// ChangeKind discriminates the variants of Change.
type ChangeKind string

const (
	ChangeKindMove  ChangeKind = "move"
	ChangeKindSplit ChangeKind = "split"
)

// Change is one calendar adjustment proposed by the engine. It is a closed
// tagged variant: the concrete types are Move and Split, and the JSON form
// carries a "type" discriminator. Changes are append-only within a plan and
// never mutated after creation.
type Change interface {
	Kind() ChangeKind
}

// Move reschedules a single payment from one date to another.
type Move struct {
	PaymentID string     `json:"payment_id"`
	From      civil.Date `json:"from"`
	To        civil.Date `json:"to"`
	Reason    string     `json:"reason"`
}

// Kind implements Change.
func (Move) Kind() ChangeKind { return ChangeKindMove }

// MarshalJSON adds the "type" discriminator.
func (m Move) MarshalJSON() ([]byte, error) {
	type alias Move
	return json.Marshal(struct {
		Type ChangeKind `json:"type"`
		alias
	}{m.Kind(), alias(m)})
}

// SplitPart is one scheduled portion of a split payment.
type SplitPart struct {
	Date   civil.Date `json:"date"`
	Amount float64    `json:"amount"`
}

// Split replaces a single payment with an ordered sequence of smaller parts.
type Split struct {
	PaymentID string      `json:"payment_id"`
	From      civil.Date  `json:"from"`
	Parts     []SplitPart `json:"parts"`
	Reason    string      `json:"reason"`
}

// Kind implements Change.
func (Split) Kind() ChangeKind { return ChangeKindSplit }

// MarshalJSON adds the "type" discriminator.
func (s Split) MarshalJSON() ([]byte, error) {
	type alias Split
	return json.Marshal(struct {
		Type ChangeKind `json:"type"`
		alias
	}{s.Kind(), alias(s)})
}

// UtilizationProjection is the projected before/after utilization for one
// card when the engine schedules a pre-cut split.
type UtilizationProjection struct {
	Before float64 `json:"before"`
	After  float64 `json:"after"`
}

// Metrics summarizes the projected effect of a plan. UtilizationProjection is
// only populated when a split was scheduled; consumers must handle both the
// full and the reduced shape.
type Metrics struct {
	FeesAvoided           float64                          `json:"fees_avoided"`
	OverdraftRiskDelta    float64                          `json:"overdraft_risk_delta"`
	BufferMin             float64                          `json:"buffer_min"`
	UtilizationProjection map[string]UtilizationProjection `json:"utilization_projection,omitempty"`
}

// Plan is the output of one rescheduling run: an ordered list of changes,
// projected metrics, and human-readable explanation strings. Plans are built
// once per request and never persisted or mutated.
type Plan struct {
	ID      string   `json:"id"`
	UserID  string   `json:"user_id"`
	Month   string   `json:"month"`
	Changes []Change `json:"changes"`
	Metrics Metrics  `json:"metrics"`
	Explain []string `json:"explain"`
}
