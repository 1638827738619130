package cli

import (
	"fmt"
	"strings"

	"github.com/zedbuild/buildcalc/internal/models"
)

// printLines renders a result breakdown, one line per entry. Separator
// entries become a horizontal rule.
func (a *App) printLines(lines []models.ResultLine) {
	for _, line := range lines {
		switch line.Kind {
		case models.LineKindSeparator:
			fmt.Fprintln(a.out, strings.Repeat("-", 32))
		default:
			fmt.Fprintf(a.out, "%s: %s\n", line.Label, line.Value)
		}
	}
}

// reportErr prints an error to the user and passes it through for callers
// that care.
func (a *App) reportErr(err error) error {
	fmt.Fprintf(a.out, "Error: %s\n", err.Error())
	return err
}
