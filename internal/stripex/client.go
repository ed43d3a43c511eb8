package stripex

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/yodicommerce/holdlink/internal/hold"
)

// Client creates Stripe Checkout Sessions. The API key is bound once at
// construction; no package-global key state.
type Client struct {
	api        *client.API
	currency   string
	successURL string
	cancelURL  string
}

func New(secretKey, currency, successURL, cancelURL string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{
		api:        api,
		currency:   currency,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

// CreateHoldSession opens a manual-capture Checkout Session: funds are
// authorized, not charged, until a separate capture step outside this tool.
// Single attempt, no retry; the caller's context cancels the call.
func (c *Client) CreateHoldSession(ctx context.Context, p hold.SessionParams) (hold.Session, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(p.Items))
	for _, li := range p.Items {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(li.Name),
		}
		if li.Description != "" {
			product.Description = stripe.String(li.Description)
		}
		if len(li.Images) > 0 {
			product.Images = stripe.StringSlice(li.Images)
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(li.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(c.currency),
				UnitAmount:  stripe.Int64(li.UnitAmountMinor),
				ProductData: product,
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
			Description:   stripe.String(p.Description),
			Metadata:      p.Metadata,
		},
		LineItems:  lineItems,
		SuccessURL: stripe.String(c.successURL),
		CancelURL:  stripe.String(c.cancelURL),
	}
	params.Context = ctx
	if p.Reference != "" {
		params.IdempotencyKey = stripe.String(p.Reference)
	}
	if p.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(p.CustomerEmail)
	}

	s, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return hold.Session{}, providerError(err)
	}

	out := hold.Session{ID: s.ID, URL: s.URL}
	if s.PaymentIntent != nil {
		out.PaymentIntentID = s.PaymentIntent.ID
	}
	return out, nil
}

// providerError unwraps the SDK error type so callers surface the provider's
// own message instead of the SDK's serialized form.
func providerError(err error) error {
	var sErr *stripe.Error
	if errors.As(err, &sErr) && sErr.Msg != "" {
		return errors.New(sErr.Msg)
	}
	return err
}
