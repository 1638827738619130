// Package common defines shared constants and sentinel errors used across
// the BuildCalc store, repository and billing layers. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")

	// Store-level errors.
	ErrNotInitialized    = errors.New("store not initialized")
	ErrMigrationFailed   = errors.New("migration failed")
	ErrTransactionFailed = errors.New("transaction failed")

	// Billing errors. ErrPurchaseCancelled is benign: the user backed out
	// of the payment sheet and entitlement simply stays not-entitled.
	// Any other payment capability error wraps ErrPurchaseFailed.
	ErrPurchaseCancelled = errors.New("purchase cancelled")
	ErrPurchaseFailed    = errors.New("purchase failed")
	ErrAlreadyEntitled   = errors.New("already entitled")
)
