package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/zedbuild/buildcalc/internal/prices"
)

func (a *App) ShowPrices(ctx context.Context) error {
	list, err := a.prices.List(ctx)
	if err != nil {
		return a.reportErr(err)
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "Price table is empty. Type 'city' to load a baseline.")
		return nil
	}
	for _, p := range list {
		fmt.Fprintf(a.out, "%-12s %8.2f %s per %s\n", p.Material, p.Price, prices.Currency, p.Unit)
	}
	return nil
}

func (a *App) SetCity(ctx context.Context) error {
	prompt := "City (" + strings.Join(prices.Cities(), ", ") + ")"
	city, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return a.reportErr(err)
	}
	if err := a.prices.ApplyCity(ctx, city); err != nil {
		return a.reportErr(err)
	}
	fmt.Fprintf(a.out, "Loaded %s prices.\n", city)
	return nil
}
