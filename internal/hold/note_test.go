package hold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteText_FullRequest(t *testing.T) {
	req := HoldRequest{
		CustomerEmail: "jane@example.com",
		InternalNote:  "Hold for fitting",
		DeliveryFee:   "10",
		Items: []CartItem{
			item("Shirt", "40", "2"),
		},
	}
	res, err := Build(req)
	require.NoError(t, err)

	got := NoteText(req, res, "aud", "cs_test_123")

	want := "Hold checkout creator\n" +
		"Session ID: cs_test_123\n" +
		"Customer email: jane@example.com\n" +
		"Internal note: Hold for fitting\n\n" +
		"Items:\n" +
		"- Shirt x2 @ AUD 40.00\n" +
		"Delivery & service fee: AUD 10.00\n" +
		"Total intended authorization (approx): AUD 90.00\n" +
		"When payment appears, search by this Session ID in Stripe."
	assert.Equal(t, want, got)
}

func TestNoteText_MissingFieldsRenderNA(t *testing.T) {
	req := HoldRequest{Items: []CartItem{item("Jeans", "79.95", "1")}}
	res, err := Build(req)
	require.NoError(t, err)

	got := NoteText(req, res, "aud", "cs_test_9")

	assert.Contains(t, got, "Customer email: n/a\n")
	assert.Contains(t, got, "Internal note: n/a\n")
	assert.Contains(t, got, "Delivery & service fee: AUD 0.00\n")
	assert.Contains(t, got, "Total intended authorization (approx): AUD 79.95\n")
}

func TestNoteText_FeeLineNotListedAsItem(t *testing.T) {
	req := HoldRequest{
		Items:       []CartItem{item("Jeans", "79.95", "1")},
		DeliveryFee: "5",
	}
	res, err := Build(req)
	require.NoError(t, err)

	got := NoteText(req, res, "aud", "cs_test_9")

	assert.Contains(t, got, "- Jeans x1 @ AUD 79.95\n")
	assert.NotContains(t, got, "- Delivery & service fee")
}
