// Package compliance implements the CBC 11B-404 rule-evaluation engine for doors.
package compliance

import "github.com/melissa/door-compliance/internal/types"

// measurement builds a violation for a failed numeric threshold.
func measurement(section string, key types.CodeTextKey, description string, measured, required float64) types.Violation {
	return types.Violation{
		CodeSection:   section,
		CodeText:      key,
		Description:   description,
		Severity:      types.SeverityError,
		MeasuredValue: floatPtr(measured),
		RequiredValue: floatPtr(required),
	}
}

// condition builds a violation for a failed configuration requirement with no
// associated measurement.
func condition(section string, key types.CodeTextKey, description string) types.Violation {
	return types.Violation{
		CodeSection: section,
		CodeText:    key,
		Description: description,
		Severity:    types.SeverityError,
	}
}

// withApproach tags a violation with the approach direction it was evaluated against.
func withApproach(v types.Violation, approach types.ApproachDirection) types.Violation {
	v.ApproachDirection = &approach
	return v
}

// flagSet reports whether an optional flag is present and true.
func flagSet(p *bool) bool {
	return p != nil && *p
}

// floatPtr returns a pointer to a float64
func floatPtr(f float64) *float64 {
	return &f
}
