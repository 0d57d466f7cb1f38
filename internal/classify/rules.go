package classify

import (
	"strings"

	"github.com/altolabs/cashplan/internal/domain"
)

// Category rules. Each predicate inspects only the aggregator category tags
// and the transaction names; precedence is fixed by the classifier, not here.

func isIncome(t domain.RawTransaction) bool {
	return t.PersonalFinanceCategory.Primary == categoryIncome
}

// isRent matches the rent transfer tag, with a free-text fallback for feeds
// that tag rent transfers inconsistently.
func isRent(t domain.RawTransaction) bool {
	if t.PersonalFinanceCategory.Detailed == detailedRentTransfer {
		return true
	}
	return strings.Contains(strings.ToLower(t.Name), "rent")
}

func isUtility(t domain.RawTransaction) bool {
	return t.PersonalFinanceCategory.Primary == categoryUtilities
}

// isSubscription matches detail tags ending in SUBSCRIPTION, or a merchant
// whose leading token is on the subscription allow-list.
func isSubscription(t domain.RawTransaction) bool {
	if strings.HasSuffix(t.PersonalFinanceCategory.Detailed, detailedSubscriptionSuffix) {
		return true
	}
	name := t.MerchantName
	if name == "" {
		name = t.Name
	}
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return false
	}
	return subscriptionMerchants[fields[0]]
}

func isCardPayment(t domain.RawTransaction) bool {
	return t.PersonalFinanceCategory.Detailed == detailedCardPaymentTransfer
}
