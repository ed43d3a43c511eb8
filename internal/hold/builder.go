package hold

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	deliveryFeeName        = "Delivery & service fee"
	deliveryFeeDescription = "Delivery and service charges"

	// The provider caps image URLs at 2048 chars; stay under it.
	imageURLMaxLen = 2000
)

// Builder errors are user-facing and returned verbatim in error bodies.
var (
	ErrNoItems     = errors.New("At least one item is required.")
	ErrInvalidItem = errors.New("Each item needs a name, a valid price and a positive quantity.")
)

// BuildResult is the validated, provider-ready view of a request. Items holds
// the cart lines plus, last, the synthetic fee line when a fee applies.
type BuildResult struct {
	Items            []LineItem
	TotalMinor       int64
	DeliveryFeeMinor int64
}

func (r BuildResult) TotalMajor() string       { return MajorString(r.TotalMinor) }
func (r BuildResult) DeliveryFeeMajor() string { return MajorString(r.DeliveryFeeMinor) }

// CartLines returns the customer item lines without the synthetic fee line.
func (r BuildResult) CartLines() []LineItem {
	if r.DeliveryFeeMinor > 0 {
		return r.Items[:len(r.Items)-1]
	}
	return r.Items
}

// Build validates the request and produces provider-ready line items plus
// minor-unit totals. Validation is strict: any invalid item fails the whole
// request.
func Build(req HoldRequest) (BuildResult, error) {
	if len(req.Items) == 0 {
		return BuildResult{}, ErrNoItems
	}

	var res BuildResult
	for _, it := range req.Items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			return BuildResult{}, ErrInvalidItem
		}
		price, err := decimal.NewFromString(string(it.Price))
		if err != nil || price.IsNegative() {
			return BuildResult{}, ErrInvalidItem
		}
		qty, err := parseQty(string(it.Qty))
		if err != nil {
			return BuildResult{}, err
		}

		li := LineItem{
			Name:            name,
			Description:     strings.TrimSpace(it.Description),
			UnitAmountMinor: MinorUnits(price),
			Quantity:        qty,
		}
		if img := strings.TrimSpace(it.ImageURL); forwardableImageURL(img) {
			li.Images = []string{img}
		}

		res.TotalMinor += li.UnitAmountMinor * li.Quantity
		res.Items = append(res.Items, li)
	}

	if fee, ok := parseDeliveryFee(string(req.DeliveryFee)); ok {
		res.DeliveryFeeMinor = MinorUnits(fee)
		res.TotalMinor += res.DeliveryFeeMinor
		res.Items = append(res.Items, LineItem{
			Name:            deliveryFeeName,
			Description:     deliveryFeeDescription,
			UnitAmountMinor: res.DeliveryFeeMinor,
			Quantity:        1,
		})
	}
	return res, nil
}

// Absent quantity defaults to 1; an explicit value must be a positive integer.
func parseQty(s string) (int64, error) {
	if s == "" {
		return 1, nil
	}
	q, err := strconv.ParseInt(s, 10, 64)
	if err != nil || q <= 0 {
		return 0, ErrInvalidItem
	}
	return q, nil
}

// The fee stays lenient in every variant of the form: unparseable or
// non-positive values mean no fee line, never a rejection.
func parseDeliveryFee(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Decimal{}, false
	}
	return d, true
}

// A bad image URL is dropped silently, never a rejection.
func forwardableImageURL(s string) bool {
	if s == "" || len(s) > imageURLMaxLen {
		return false
	}
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
