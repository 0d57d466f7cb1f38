package classify

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCase converts a string to title case ("CITY POWER" -> "City Power").
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}

// normalizeName cleans a raw merchant/display name for use as a label.
// All-upper or all-lower input is title-cased; mixed case is assumed already
// well-formed and preserved.
func normalizeName(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return cleaned
	}
	if cleaned == strings.ToUpper(cleaned) || cleaned == strings.ToLower(cleaned) {
		return titleCase(cleaned)
	}
	return cleaned
}

// utilityLabel picks "Internet" when the cleaned name mentions an internet
// service, "Utilities" otherwise.
func utilityLabel(raw string) string {
	lowered := strings.ToLower(normalizeName(raw))
	for _, keyword := range internetKeywords {
		if strings.Contains(lowered, keyword) {
			return "Internet"
		}
	}
	return "Utilities"
}

// subscriptionLabel builds "Subscription: <Merchant>" from the first token of
// the cleaned merchant name, falling back to the bare "Subscription".
func subscriptionLabel(merchant string) string {
	base := normalizeName(merchant)
	if base == "" {
		return "Subscription"
	}
	token := strings.Fields(base)[0]
	return "Subscription: " + titleCase(token)
}
