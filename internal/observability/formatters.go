// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/melissa/door-compliance/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDoorParameters outputs a human-readable summary of the measured fields.
func (p *Printer) PrintDoorParameters(door *types.DoorParameters) {
	if door == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("On accessible route: %s\n", formatFlag(door.IsOnAccessibleRoute)))
	sb.WriteString(fmt.Sprintf("Automatic: %s  Power-assisted: %s\n",
		formatFlag(door.IsAutomaticDoor), formatFlag(door.IsPowerAssistedDoor)))
	sb.WriteString(fmt.Sprintf("Exterior: %s  Alteration: %s\n",
		formatFlag(door.IsExteriorDoor), formatFlag(door.IsAlterationProject)))

	measurements := []struct {
		name  string
		value *float64
	}{
		{"Clear width", door.ClearWidthInches},
		{"Pull side perpendicular", door.PullSidePerpendicularClearanceInches},
		{"Push side perpendicular", door.PushSidePerpendicularClearanceInches},
		{"Latch side clearance", door.LatchSideClearanceInches},
		{"Hinge side clearance", door.HingeSideClearanceInches},
		{"Series separation", door.DistanceBetweenDoorsInSeriesInches},
	}

	var measured []string
	for _, m := range measurements {
		if m.value != nil {
			measured = append(measured, fmt.Sprintf("%s: %g in", m.name, *m.value))
		}
	}
	if len(measured) > 0 {
		sb.WriteString("\nMeasurements:\n")
		for _, m := range measured {
			sb.WriteString(fmt.Sprintf("  • %s\n", m))
		}
	}
	if n := len(door.Projections); n > 0 {
		sb.WriteString(fmt.Sprintf("\nProjections recorded: %d\n", n))
	}

	p.printBox("Door Parameters", sb.String())
}

// PrintViolations outputs each violation with its code section and values.
func (p *Printer) PrintViolations(violations []types.Violation) {
	var sb strings.Builder

	if len(violations) == 0 {
		sb.WriteString("No violations found\n")
		p.printBox("Compliance Result", sb.String())
		return
	}

	count := min(len(violations), maxItemsToShow)
	for i := 0; i < count; i++ {
		v := violations[i]
		sb.WriteString(fmt.Sprintf("%s %s\n", v.CodeSection, v.Description))
		if v.ApproachDirection != nil {
			sb.WriteString(fmt.Sprintf("  approach: %s\n", *v.ApproachDirection))
		}
	}
	if len(violations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(violations)-maxItemsToShow))
	}

	p.printBox(fmt.Sprintf("Compliance Result: %d violation(s)", len(violations)), sb.String())
}

// PrintBatchSummary outputs aggregate results for a batch evaluation.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBatchSummary(assessments []*types.DoorAssessment) {
	var sb strings.Builder

	total := 0
	compliant := 0
	for _, a := range assessments {
		total += a.Summary.TotalViolations
		if a.Summary.Compliant {
			compliant++
		}
	}

	sb.WriteString(fmt.Sprintf("Doors evaluated:  %d\n", len(assessments)))
	sb.WriteString(fmt.Sprintf("Compliant:        %d\n", compliant))
	sb.WriteString(fmt.Sprintf("Total violations: %d\n", total))

	p.printBox("Batch Summary", sb.String())
}

func formatFlag(flag *bool) string {
	switch {
	case flag == nil:
		return "unknown"
	case *flag:
		return "yes"
	default:
		return "no"
	}
}
