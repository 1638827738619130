package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zedbuild/buildcalc/internal/common"
)

// SimulatedCapability stands in for platform billing in environments
// without it. Purchase waits a fixed delay and then reports success
// unconditionally, with a token shaped like a real one, so the resulting
// purchase record is indistinguishable from a genuine purchase.
type SimulatedCapability struct {
	Delay time.Duration
}

// NewSimulatedCapability returns a simulated capability with the given
// purchase delay.
func NewSimulatedCapability(delay time.Duration) *SimulatedCapability {
	return &SimulatedCapability{Delay: delay}
}

func (s *SimulatedCapability) ListDetails(ctx context.Context, productIDs []string) ([]ProductDetails, error) {
	details := make([]ProductDetails, 0, len(productIDs))
	for _, id := range productIDs {
		details = append(details, ProductDetails{
			ProductID: id,
			Title:     "Construction Calculator Pro",
			Price:     "4.99",
			Currency:  "USD",
		})
	}
	return details, nil
}

func (s *SimulatedCapability) Purchase(ctx context.Context, productID string) (*PurchaseResult, error) {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		// backing out of the simulated payment sheet
		return nil, fmt.Errorf("%w: %w", common.ErrPurchaseCancelled, ctx.Err())
	}
	return &PurchaseResult{Token: "sim-" + uuid.NewString()}, nil
}

func (s *SimulatedCapability) Acknowledge(ctx context.Context, token, kind string) error {
	return nil
}
