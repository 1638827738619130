package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zedbuild/buildcalc/internal/billing"
	"github.com/zedbuild/buildcalc/internal/common"
	"github.com/zedbuild/buildcalc/internal/config"
	"github.com/zedbuild/buildcalc/internal/logging"
	"github.com/zedbuild/buildcalc/internal/repositories/calculations"
	"github.com/zedbuild/buildcalc/internal/repositories/materialprices"
	"github.com/zedbuild/buildcalc/internal/repositories/projects"
	"github.com/zedbuild/buildcalc/internal/repositories/purchases"
	"github.com/zedbuild/buildcalc/internal/services"
	"github.com/zedbuild/buildcalc/internal/store"
)

// App is the interactive BuildCalc client.
type App struct {
	config   *config.Config
	gateway  *store.Gateway
	calcs    services.CalcService
	projects services.ProjectService
	prices   services.PriceService
	pro      *billing.Manager
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	last     *lastRun
}

// NewApp opens the local database, runs pending migrations, seeds the price
// table on first run and restores the pro entitlement from storage.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {

	gw := store.NewGateway(cfg.DatabasePath, log)
	if err := gw.Open(ctx); err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	priceService := services.NewPriceService(materialprices.NewSQLiteRepository(gw))

	a := &App{
		config:   cfg,
		gateway:  gw,
		calcs:    services.NewCalcService(calculations.NewSQLiteRepository(gw), cfg.Currency, log),
		projects: services.NewProjectService(projects.NewSQLiteRepository(gw)),
		prices:   priceService,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	a.pro = billing.NewManager(
		purchases.NewSQLiteRepository(gw),
		billing.NewSimulatedCapability(cfg.PurchaseDelay),
		log,
		billing.WithEntitledListener(func() {
			fmt.Fprintln(a.out, "Pro features unlocked. Thank you!")
		}),
	)

	if err := a.seedPrices(ctx); err != nil {
		_ = gw.Close()
		return nil, err
	}

	if err := a.pro.Restore(ctx); err != nil {
		_ = gw.Close()
		return nil, fmt.Errorf("failed to restore entitlement: %w", err)
	}

	return a, nil
}

// seedPrices loads the default city baseline into an empty price table so
// cost estimates work out of the box.
func (a *App) seedPrices(ctx context.Context) error {
	stored, err := a.prices.List(ctx)
	if err != nil {
		return err
	}
	if len(stored) > 0 {
		return nil
	}
	a.log.Info(ctx, "seeding price table", "city", a.config.DefaultCity)
	if err := a.prices.ApplyCity(ctx, a.config.DefaultCity); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			a.log.Warn(ctx, "unknown default city, price table left empty", "city", a.config.DefaultCity)
			return nil
		}
		return err
	}
	return nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.gateway.Close(); err != nil {
			a.log.Error(ctx, "failed to close store", "error", err)
		}
	}()
	// skip the banner when input is piped in
	if isTerminalFn(int(os.Stdin.Fd())) {
		fmt.Fprintln(a.out, "BuildCalc CLI (type 'help' for commands)")
	}
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	if a.pro.IsEntitled() {
		return "(pro)"
	}
	return ""
}
