package config

import (
	"flag"
	"os"
	"time"

	"github.com/zedbuild/buildcalc/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local database file (default from Config)
//	-t string   default city for the price table (default from Config)
//	-p int      simulated purchase delay in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.StringVar(&cfg.DefaultCity, "t", cfg.DefaultCity, "default city for the material price table")
	purchaseDelay := fs.Int("p", int(cfg.PurchaseDelay.Seconds()), "simulated purchase delay (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.PurchaseDelay = time.Duration(*purchaseDelay) * time.Second
}
