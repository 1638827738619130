// Package billing manages the pro entitlement: a state machine over the
// purchases collection and an external payment capability.
package billing

import "context"

// ProductDetails describes one purchasable product as reported by the
// payment capability.
type ProductDetails struct {
	ProductID string
	Title     string
	Price     string
	Currency  string
}

// PurchaseResult carries the opaque platform token of a completed purchase.
type PurchaseResult struct {
	Token string
}

// PaymentCapability is the narrow contract to the platform billing service.
// The manager depends only on this interface, never on a concrete platform.
type PaymentCapability interface {
	// ListDetails returns details for the given product ids.
	ListDetails(ctx context.Context, productIDs []string) ([]ProductDetails, error)

	// Purchase runs the platform purchase flow for one product. It returns
	// common.ErrPurchaseCancelled when the user backs out of the payment
	// sheet.
	Purchase(ctx context.Context, productID string) (*PurchaseResult, error)

	// Acknowledge confirms a completed purchase with the platform.
	Acknowledge(ctx context.Context, token, kind string) error
}
