package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Cement(ctx context.Context) error
	Brick(ctx context.Context) error
	Area(ctx context.Context) error
	Volume(ctx context.Context) error
	Labor(ctx context.Context) error
	History(ctx context.Context) error
	Convert(ctx context.Context) error
	SaveProject(ctx context.Context) error
	ListProjects(ctx context.Context) error
	ShowProject(ctx context.Context) error
	DeleteProject(ctx context.Context) error
	ShowPrices(ctx context.Context) error
	SetCity(ctx context.Context) error
	ProStatus(ctx context.Context) error
	Buy(ctx context.Context) error
	Restore(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the BuildCalc CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the entitlement status (from statusFn) and accepts:
//
//   - help               — show available commands
//   - cement             — concrete slab calculator
//   - brick              — brick wall calculator
//   - area               — area calculator
//   - volume             — volume calculator
//   - labor              — labor cost calculator
//   - convert            — unit converter
//   - history            — past calculations
//   - save               — save the last calculation as a project
//   - (p)rojects         — list saved projects
//   - show               — show a single project (interactive id prompt)
//   - delete             — delete a project
//   - prices             — show the material price table
//   - city               — load a city price baseline
//   - pro                — entitlement status
//   - buy                — purchase the pro upgrade
//   - restore            — restore a previous purchase
//   - exit | quit        — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("buildcalc %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: cement, brick, area, volume, labor, convert, history, save, (p)rojects, show, delete, prices, city, pro, buy, restore, exit")

		case "cement":
			_ = a.Cement(ctx)

		case "brick":
			_ = a.Brick(ctx)

		case "area":
			_ = a.Area(ctx)

		case "volume":
			_ = a.Volume(ctx)

		case "labor":
			_ = a.Labor(ctx)

		case "convert":
			_ = a.Convert(ctx)

		case "history":
			_ = a.History(ctx)

		case "save":
			_ = a.SaveProject(ctx)

		case "p", "projects":
			_ = a.ListProjects(ctx)

		case "show":
			_ = a.ShowProject(ctx)

		case "delete":
			_ = a.DeleteProject(ctx)

		case "prices":
			_ = a.ShowPrices(ctx)

		case "city":
			_ = a.SetCity(ctx)

		case "pro":
			_ = a.ProStatus(ctx)

		case "buy":
			_ = a.Buy(ctx)

		case "restore":
			_ = a.Restore(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
