package classify

// Known aggregator category tags. Classification matches against this closed
// set; any other tag falls through to ignored.
const (
	categoryIncome    = "INCOME"
	categoryUtilities = "UTILITIES"

	detailedRentTransfer        = "TRANSFER_OUT_RENT"
	detailedCardPaymentTransfer = "TRANSFER_OUT_CREDIT_CARD_PAYMENT"
	detailedSubscriptionSuffix  = "SUBSCRIPTION"
)

// Reschedule window offsets per category, in days before/after the anchor
// date. Fixed events (income, rent) get no window.
const (
	utilityDaysBefore = 5
	utilityDaysAfter  = 5

	subscriptionDaysBefore = 3
	subscriptionDaysAfter  = 7

	cardPaymentDaysBefore = 3
	cardPaymentDaysAfter  = 3
)

// subscriptionMerchants is the allow-list matched against the first token of
// the merchant name when the category detail tag is inconclusive.
var subscriptionMerchants = map[string]bool{
	"Spotify": true,
	"Netflix": true,
	"Apple":   true,
}

// internetKeywords mark a utility as an internet service for labeling.
var internetKeywords = []string{"internet", "wifi", "broadband", "fiber"}
