package hold

import (
	"fmt"
	"strings"
)

// NoteText builds the multi-line summary staff paste into the provider's
// notes field. Pure formatting; missing fields render as "n/a".
func NoteText(req HoldRequest, res BuildResult, currency, sessionID string) string {
	cur := strings.ToUpper(currency)

	var b strings.Builder
	b.WriteString("Hold checkout creator\n")
	fmt.Fprintf(&b, "Session ID: %s\n", orNA(sessionID))
	fmt.Fprintf(&b, "Customer email: %s\n", orNA(req.CustomerEmail))
	fmt.Fprintf(&b, "Internal note: %s\n\n", orNA(req.InternalNote))
	b.WriteString("Items:\n")
	for _, li := range res.CartLines() {
		fmt.Fprintf(&b, "- %s x%d @ %s %s\n", li.Name, li.Quantity, cur, MajorString(li.UnitAmountMinor))
	}
	fmt.Fprintf(&b, "Delivery & service fee: %s %s\n", cur, res.DeliveryFeeMajor())
	fmt.Fprintf(&b, "Total intended authorization (approx): %s %s\n", cur, res.TotalMajor())
	b.WriteString("When payment appears, search by this Session ID in Stripe.")
	return b.String()
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "n/a"
	}
	return s
}
