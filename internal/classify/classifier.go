package classify

import (
	"cloud.google.com/go/civil"

	"github.com/altolabs/cashplan/internal/domain"
)

// Transactions classifies a raw transaction feed into typed cash events.
// It runs two passes: income is fully resolved first, then rent, utilities,
// subscriptions, and card payments in precedence order. A transaction tagged
// as both income and a bill is therefore counted once, as income.
//
// Each transaction id contributes at most one CashEvent across the whole
// batch. Records with a missing id, a non-positive amount, or a non-parseable
// date are skipped, never fatal. Unclassifiable records produce no event;
// absence from the output is the contract.
func Transactions(feed domain.TransactionFeed) (cashIn, cashOut []domain.CashEvent) {
	cashIn = []domain.CashEvent{}
	cashOut = []domain.CashEvent{}
	handled := make(map[string]bool, len(feed.Added))

	// Pass 1: income.
	for _, t := range feed.Added {
		if t.TransactionID == "" || handled[t.TransactionID] {
			continue
		}
		if t.Amount <= 0 {
			continue
		}
		if !isIncome(t) {
			continue
		}
		date, ok := parseDate(t.Date)
		if !ok {
			continue
		}

		name := t.MerchantName
		if name == "" {
			name = t.Name
		}
		cashIn = append(cashIn, domain.CashEvent{
			ID:     t.TransactionID,
			Label:  normalizeName(name),
			Date:   date,
			Amount: t.Amount,
			Fixed:  true,
		})
		handled[t.TransactionID] = true
	}

	// Pass 2: bills, subscriptions, rent, card payments.
	for _, t := range feed.Added {
		if t.TransactionID == "" || handled[t.TransactionID] {
			continue
		}
		if t.Amount <= 0 {
			continue
		}
		date, ok := parseDate(t.Date)
		if !ok {
			continue
		}

		rawName := t.Name
		if rawName == "" {
			rawName = t.MerchantName
		}
		merchantName := t.MerchantName
		if merchantName == "" {
			merchantName = rawName
		}

		ev := domain.CashEvent{
			ID:     t.TransactionID,
			Date:   date,
			Amount: t.Amount,
		}
		switch {
		case isRent(t):
			ev.Label = "Rent"
			ev.Fixed = true
		case isUtility(t):
			ev.Label = utilityLabel(rawName)
			ev.Window = windowFor(date, utilityDaysBefore, utilityDaysAfter)
		case isSubscription(t):
			ev.Label = subscriptionLabel(merchantName)
			ev.Window = windowFor(date, subscriptionDaysBefore, subscriptionDaysAfter)
		case isCardPayment(t):
			ev.Label = "Card Payment"
			ev.Window = windowFor(date, cardPaymentDaysBefore, cardPaymentDaysAfter)
		default:
			// Groceries, gas, restaurants and the like are outside the
			// scheduling scope.
			continue
		}

		cashOut = append(cashOut, ev)
		handled[t.TransactionID] = true
	}

	return cashIn, cashOut
}

// parseDate parses an ISO YYYY-MM-DD feed date. Malformed dates cause the
// record to be skipped rather than failing the batch.
func parseDate(s string) (civil.Date, bool) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, false
	}
	return d, true
}
