package classify

import (
	"reflect"
	"testing"

	"github.com/altolabs/cashplan/internal/domain"
)

func incomeTx(id, name, date string, amount float64) domain.RawTransaction {
	return domain.RawTransaction{
		TransactionID:           id,
		Name:                    name,
		Amount:                  amount,
		Date:                    date,
		PersonalFinanceCategory: domain.FinanceCategory{Primary: "INCOME", Detailed: "INCOME_WAGES"},
	}
}

func utilityTx(id, name, date string, amount float64) domain.RawTransaction {
	return domain.RawTransaction{
		TransactionID:           id,
		Name:                    name,
		Amount:                  amount,
		Date:                    date,
		PersonalFinanceCategory: domain.FinanceCategory{Primary: "UTILITIES", Detailed: "UTILITIES_OTHER"},
	}
}

func TestTransactions_IncomeAndUtility(t *testing.T) {
	feed := domain.TransactionFeed{Added: []domain.RawTransaction{
		incomeTx("tx-income", "ACME PAYROLL", "2025-11-01", 3000),
		utilityTx("tx-util", "City Power", "2025-11-10", 80),
	}}

	cashIn, cashOut := Transactions(feed)

	if len(cashIn) != 1 {
		t.Fatalf("Transactions() cashIn = %d events, want 1", len(cashIn))
	}
	in := cashIn[0]
	if in.ID != "tx-income" || in.Label != "Acme Payroll" || !in.Fixed || in.Window != nil {
		t.Errorf("Transactions() income event = %+v, want fixed windowless 'Acme Payroll'", in)
	}

	if len(cashOut) != 1 {
		t.Fatalf("Transactions() cashOut = %d events, want 1", len(cashOut))
	}
	out := cashOut[0]
	if out.Label != "Utilities" || out.Fixed {
		t.Errorf("Transactions() utility event = %+v, want flexible 'Utilities'", out)
	}
	if out.Window == nil {
		t.Fatal("Transactions() utility event has no window")
	}
	if out.Window.Start != date("2025-11-05") || out.Window.End != date("2025-11-15") {
		t.Errorf("Transactions() utility window = %s..%s, want 2025-11-05..2025-11-15", out.Window.Start, out.Window.End)
	}
	if !out.Window.Contains(out.Date) {
		t.Errorf("Transactions() utility window %s..%s does not contain date %s", out.Window.Start, out.Window.End, out.Date)
	}
}

func TestTransactions_Dedup(t *testing.T) {
	feed := domain.TransactionFeed{Added: []domain.RawTransaction{
		utilityTx("tx-1", "City Power", "2025-11-10", 80),
		utilityTx("tx-1", "City Power", "2025-11-10", 80),
		incomeTx("tx-1", "ACME PAYROLL", "2025-11-01", 3000),
	}}

	cashIn, cashOut := Transactions(feed)

	seen := make(map[string]int)
	for _, ev := range append(cashIn, cashOut...) {
		seen[ev.ID]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("Transactions() emitted %d events for transaction id %q, want at most 1", n, id)
		}
	}
}

// A transaction carrying both an income tag and a subscription detail tag
// must be resolved by the income pass and counted once, as income.
func TestTransactions_IncomeBeatsBill(t *testing.T) {
	feed := domain.TransactionFeed{Added: []domain.RawTransaction{
		{
			TransactionID: "tx-both",
			Name:          "Spotify AB",
			Amount:        12,
			Date:          "2025-11-03",
			PersonalFinanceCategory: domain.FinanceCategory{
				Primary:  "INCOME",
				Detailed: "ENTERTAINMENT_MUSIC_SUBSCRIPTION",
			},
		},
	}}

	cashIn, cashOut := Transactions(feed)

	if len(cashIn) != 1 {
		t.Fatalf("Transactions() cashIn = %d events, want 1", len(cashIn))
	}
	if len(cashOut) != 0 {
		t.Fatalf("Transactions() cashOut = %d events, want 0", len(cashOut))
	}
}

func TestTransactions_RentByName(t *testing.T) {
	feed := domain.TransactionFeed{Added: []domain.RawTransaction{
		{
			TransactionID:           "tx-rent",
			Name:                    "ABC Rent Corp",
			Amount:                  1500,
			Date:                    "2025-11-01",
			PersonalFinanceCategory: domain.FinanceCategory{Detailed: "TRANSFER_OUT_OTHER"},
		},
	}}

	_, cashOut := Transactions(feed)

	if len(cashOut) != 1 {
		t.Fatalf("Transactions() cashOut = %d events, want 1", len(cashOut))
	}
	ev := cashOut[0]
	if ev.Label != "Rent" || !ev.Fixed || ev.Window != nil {
		t.Errorf("Transactions() rent event = %+v, want fixed windowless 'Rent'", ev)
	}
}

func TestTransactions_SubscriptionAndCardPayment(t *testing.T) {
	feed := domain.TransactionFeed{Added: []domain.RawTransaction{
		{
			TransactionID: "tx-sub",
			Name:          "SPOTIFY STOCKHOLM",
			MerchantName:  "Spotify AB",
			Amount:        12,
			Date:          "2025-11-08",
		},
		{
			TransactionID:           "tx-card",
			Name:                    "Card payment",
			Amount:                  200,
			Date:                    "2025-11-12",
			PersonalFinanceCategory: domain.FinanceCategory{Detailed: "TRANSFER_OUT_CREDIT_CARD_PAYMENT"},
		},
	}}

	_, cashOut := Transactions(feed)

	if len(cashOut) != 2 {
		t.Fatalf("Transactions() cashOut = %d events, want 2", len(cashOut))
	}

	sub := cashOut[0]
	if sub.Label != "Subscription: Spotify" {
		t.Errorf("Transactions() subscription label = %q, want 'Subscription: Spotify'", sub.Label)
	}
	if sub.Window == nil || sub.Window.Start != date("2025-11-05") || sub.Window.End != date("2025-11-15") {
		t.Errorf("Transactions() subscription window = %+v, want 2025-11-05..2025-11-15", sub.Window)
	}

	card := cashOut[1]
	if card.Label != "Card Payment" {
		t.Errorf("Transactions() card payment label = %q, want 'Card Payment'", card.Label)
	}
	if card.Window == nil || card.Window.Start != date("2025-11-09") || card.Window.End != date("2025-11-15") {
		t.Errorf("Transactions() card payment window = %+v, want 2025-11-09..2025-11-15", card.Window)
	}
}

func TestTransactions_SkipsBadRecords(t *testing.T) {
	feed := domain.TransactionFeed{Added: []domain.RawTransaction{
		// Missing id: cannot be deduplicated or referenced by a change.
		utilityTx("", "City Power", "2025-11-10", 80),
		// Non-positive amounts are excluded before classification.
		utilityTx("tx-zero", "City Power", "2025-11-10", 0),
		utilityTx("tx-neg", "City Power", "2025-11-10", -80),
		// Malformed date: record skipped, not fatal.
		utilityTx("tx-bad-date", "City Power", "November 10th", 80),
		incomeTx("tx-bad-income", "ACME PAYROLL", "2025/11/01", 3000),
		// Unclassifiable: no event, no error.
		{
			TransactionID:           "tx-groceries",
			Name:                    "Corner Grocer",
			Amount:                  45,
			Date:                    "2025-11-04",
			PersonalFinanceCategory: domain.FinanceCategory{Primary: "FOOD_AND_DRINK"},
		},
	}}

	cashIn, cashOut := Transactions(feed)

	if len(cashIn) != 0 || len(cashOut) != 0 {
		t.Errorf("Transactions() = %d in / %d out events, want none", len(cashIn), len(cashOut))
	}
}

func TestTransactions_EmptyFeed(t *testing.T) {
	cashIn, cashOut := Transactions(domain.TransactionFeed{})

	if cashIn == nil || cashOut == nil {
		t.Fatal("Transactions() returned nil slices, want empty")
	}
	if len(cashIn) != 0 || len(cashOut) != 0 {
		t.Errorf("Transactions() = %d in / %d out events, want none", len(cashIn), len(cashOut))
	}
}

func TestTransactions_Idempotent(t *testing.T) {
	feed := domain.TransactionFeed{Added: []domain.RawTransaction{
		incomeTx("tx-income", "ACME PAYROLL", "2025-11-01", 3000),
		utilityTx("tx-util", "City Power", "2025-11-10", 80),
		{
			TransactionID: "tx-sub",
			MerchantName:  "Netflix",
			Amount:        18,
			Date:          "2025-11-06",
		},
	}}

	in1, out1 := Transactions(feed)
	in2, out2 := Transactions(feed)

	if !reflect.DeepEqual(in1, in2) || !reflect.DeepEqual(out1, out2) {
		t.Error("Transactions() is not deterministic across identical batches")
	}
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()

	if p.BufferMin != 300 {
		t.Errorf("DefaultPolicy() buffer_min = %v, want 300", p.BufferMin)
	}
	if !p.Locked("Rent") {
		t.Error("DefaultPolicy() does not lock Rent")
	}
	if p.WeekendPayments {
		t.Error("DefaultPolicy() allows weekend payments, want false")
	}
	if p.BNPLGuardDays != 7 {
		t.Errorf("DefaultPolicy() bnpl_guard_days = %d, want 7", p.BNPLGuardDays)
	}
	if got := p.UtilizationTarget("default"); got != 0.10 {
		t.Errorf("DefaultPolicy() default utilization target = %v, want 0.10", got)
	}
}
