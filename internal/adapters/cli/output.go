// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting, but delegate
// business logic to services.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/keeper/internal/core/records"
	"github.com/example/keeper/internal/core/species"
)

const rule = "────────────────────────────────────────────────────────────────"

var (
	successMark = color.New(color.FgGreen).Sprint("✓")
	warningMark = color.New(color.FgYellow).Sprint("⚠")
	headerColor = color.New(color.Bold)
)

// statusColor picks a color by conservation severity.
func statusColor(status species.Status) *color.Color {
	switch status {
	case species.CriticallyEndangered:
		return color.New(color.FgHiRed)
	case species.Endangered:
		return color.New(color.FgRed)
	case species.Vulnerable:
		return color.New(color.FgYellow)
	case species.NearThreatened:
		return color.New(color.FgHiBlue)
	default:
		return color.New(color.FgGreen)
	}
}

func printHeader(out io.Writer, title string) {
	fmt.Fprintf(out, "\n%s\n", headerColor.Sprint(title))
	fmt.Fprintln(out, rule)
}

func printBrackets(out io.Writer, brackets records.Brackets) {
	for _, b := range brackets {
		ids := "(none)"
		if len(b.IDs) > 0 {
			ids = strings.Join(b.IDs, ", ")
		}
		fmt.Fprintf(out, "  %-12s %s\n", b.Name+":", ids)
	}
}
