package domain

// IntentName is the closed set of planning intents the boundary may route.
type IntentName string

const (
	IntentFeeProof    IntentName = "fee_proof"
	IntentCreditUtil  IntentName = "credit_util"
	IntentFlattenSubs IntentName = "flatten_subs"
	IntentBNPLGuard   IntentName = "bnpl_guard"
	IntentQuestion    IntentName = "question"
)

// Intent names the planning mode requested by the caller. Routing by intent
// is a boundary concern; the engine itself is intent-free.
type Intent struct {
	Name   IntentName     `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

// User identifies the requesting user. Only the ID is consumed by the core.
type User struct {
	ID       string `json:"id"`
	TZ       string `json:"tz,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// RequestPayload is the validated in-memory request contract supplied by the
// boundary for one planning run.
type RequestPayload struct {
	User      User             `json:"user"`
	Policy    Policy           `json:"policy"`
	CashIn    []CashEvent      `json:"cashIn"`
	CashOut   []CashEvent      `json:"cashOut"`
	Cards     []Card           `json:"cards"`
	BNPLPlans []map[string]any `json:"bnplPlans"`
	Intent    Intent           `json:"intent"`
}

// FinanceCategory is the aggregator-assigned category metadata on a raw
// transaction. Unknown tag values fall through to "ignored" during
// classification rather than raising.
type FinanceCategory struct {
	Primary  string `json:"primary"`
	Detailed string `json:"detailed"`
}

// RawTransaction is one record from the external transaction feed. It is a
// read-only view; the date stays a string here and is parsed (and possibly
// skipped) by the classifier.
type RawTransaction struct {
	TransactionID           string          `json:"transaction_id"`
	Name                    string          `json:"name"`
	MerchantName            string          `json:"merchant_name"`
	Amount                  float64         `json:"amount"`
	Date                    string          `json:"date"`
	PersonalFinanceCategory FinanceCategory `json:"personal_finance_category"`
}

// TransactionFeed is the aggregator-shaped ingestion payload. The classifier
// consumes Added and nothing else.
type TransactionFeed struct {
	Added []RawTransaction `json:"added"`
}
