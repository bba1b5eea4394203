// Package report assembles door assessments and renders them for human review.
// It is the in-process consumer of the rule engine's output; storage and richer
// rendering belong to external collaborators.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/melissa/door-compliance/internal/compliance"
	"github.com/melissa/door-compliance/internal/types"
)

// Assess evaluates a door and wraps the result in an assessment envelope.
func Assess(label string, door types.DoorParameters) *types.DoorAssessment {
	violations := compliance.Evaluate(&door)
	if violations == nil {
		violations = []types.Violation{}
	}
	return &types.DoorAssessment{
		ID:          uuid.New(),
		Label:       label,
		EvaluatedAt: time.Now().UTC(),
		Door:        door,
		Violations:  violations,
		Summary:     Summarize(violations),
	}
}

// Summarize aggregates violation counts by code section and approach direction.
func Summarize(violations []types.Violation) types.AssessmentSummary {
	summary := types.AssessmentSummary{
		TotalViolations: len(violations),
		Compliant:       len(violations) == 0,
	}
	if len(violations) == 0 {
		return summary
	}

	summary.BySection = make(map[string]int)
	for _, v := range violations {
		summary.BySection[v.CodeSection]++
		if v.ApproachDirection != nil {
			if summary.ByApproach == nil {
				summary.ByApproach = make(map[string]int)
			}
			summary.ByApproach[string(*v.ApproachDirection)]++
		}
	}
	return summary
}

// RenderText renders an assessment as a plain-text report grouped by code section.
func RenderText(assessment *types.DoorAssessment) string {
	var sb strings.Builder

	title := "Door assessment"
	if assessment.Label != "" {
		title = fmt.Sprintf("Door assessment: %s", assessment.Label)
	}
	sb.WriteString(title + "\n")
	sb.WriteString(fmt.Sprintf("Evaluated: %s\n", assessment.EvaluatedAt.Format(time.RFC3339)))

	if assessment.Summary.Compliant {
		sb.WriteString("\nNo violations found. Door complies with CBC 11B-404.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("\n%d violation(s) found\n", assessment.Summary.TotalViolations))

	sections := make([]string, 0, len(assessment.Summary.BySection))
	for section := range assessment.Summary.BySection {
		sections = append(sections, section)
	}
	sort.Strings(sections)

	for _, section := range sections {
		sb.WriteString(fmt.Sprintf("\n[%s]\n", section))
		for _, v := range assessment.Violations {
			if v.CodeSection != section {
				continue
			}
			sb.WriteString(fmt.Sprintf("  - %s\n", v.Description))
			if v.MeasuredValue != nil && v.RequiredValue != nil {
				sb.WriteString(fmt.Sprintf("    measured %g in, required %g in\n", *v.MeasuredValue, *v.RequiredValue))
			}
			if text := compliance.Text(v.CodeText); text != "" {
				sb.WriteString(fmt.Sprintf("    code: %s\n", text))
			}
		}
	}

	return sb.String()
}
