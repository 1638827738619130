package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/zedbuild/buildcalc/internal/billing"
	"github.com/zedbuild/buildcalc/internal/common"
)

func (a *App) ProStatus(ctx context.Context) error {
	switch a.pro.State() {
	case billing.StateEntitled:
		fmt.Fprintln(a.out, "Pro version is active.")
	case billing.StatePurchasing:
		fmt.Fprintln(a.out, "A purchase is in progress.")
	default:
		details, err := a.pro.ProductDetails(ctx)
		if err != nil {
			return a.reportErr(err)
		}
		fmt.Fprintf(a.out, "Free version. Upgrade: %s for %s %s (type 'buy').\n",
			details.Title, details.Price, details.Currency)
	}
	return nil
}

func (a *App) Buy(ctx context.Context) error {
	fmt.Fprintln(a.out, "Starting purchase...")
	err := a.pro.Purchase(ctx)
	switch {
	case err == nil:
		if !a.pro.IsEntitled() {
			// cancelled purchases resolve silently
			fmt.Fprintln(a.out, "Purchase was not completed.")
		}
	case errors.Is(err, common.ErrAlreadyEntitled):
		fmt.Fprintln(a.out, "Pro version is already active.")
	default:
		return a.reportErr(err)
	}
	return nil
}

func (a *App) Restore(ctx context.Context) error {
	if err := a.pro.Restore(ctx); err != nil {
		return a.reportErr(err)
	}
	if a.pro.IsEntitled() {
		fmt.Fprintln(a.out, "Purchase restored.")
	} else {
		fmt.Fprintln(a.out, "No previous purchase found.")
	}
	return nil
}
