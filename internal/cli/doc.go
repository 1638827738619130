// Package cli provides the interactive BuildCalc command-line client.
//
// It wires configuration, the local store, calculator services, and the pro
// entitlement manager into an interactive REPL. Typical flow: open the local
// database, restore the entitlement from storage, seed the price table on
// first run, and execute user commands.
//
// Key features:
//   - Cement, brick, area and volume calculators with cost estimates
//   - Saved projects (save / list / open / delete)
//   - Material price table with per-city baselines
//   - Pro entitlement (status / buy / restore)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
