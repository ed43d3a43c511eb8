package hold

import (
	"context"
	"encoding/json"
	"strings"
)

// NumberString holds a numeric field that the form posts as a string but that
// API callers may send as a bare JSON number. Either shape decodes to the
// trimmed textual value; parsing happens in the builder.
type NumberString string

func (n *NumberString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumberString(strings.TrimSpace(s))
		return nil
	}
	if string(b) == "null" {
		*n = ""
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = NumberString(num)
	return nil
}

// CartItem is one row of the staff cart form. Wire names match the form
// fields; prices are major currency units.
type CartItem struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	ImageURL    string       `json:"imageUrl"`
	Price       NumberString `json:"priceAud"`
	Qty         NumberString `json:"qty"`
}

type HoldRequest struct {
	CustomerEmail string       `json:"customerEmail" validate:"omitempty,email"`
	InternalNote  string       `json:"internalNote"`
	DeliveryFee   NumberString `json:"deliveryFeeAud"`
	Items         []CartItem   `json:"items" validate:"required,min=1"`
	AdminPassword string       `json:"adminPassword"`
}

// LineItem is the provider-facing shape of a cart row. Amounts are integer
// minor currency units.
type LineItem struct {
	Name            string
	Description     string
	Images          []string
	UnitAmountMinor int64
	Quantity        int64
}

// SessionParams carries everything the provider needs to open a hold session.
type SessionParams struct {
	Items         []LineItem
	CustomerEmail string
	Description   string
	Reference     string
	Metadata      map[string]string
}

// Session is the provider's answer: opaque identifiers plus the hosted
// checkout URL.
type Session struct {
	ID              string
	URL             string
	PaymentIntentID string
}

type SessionCreator interface {
	CreateHoldSession(ctx context.Context, p SessionParams) (Session, error)
}
