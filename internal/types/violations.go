// Package types provides type definitions for structured data used throughout the door-compliance system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Severity levels for violations. Only SeverityError is emitted today; the other
// levels are reserved for advisory findings.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// CodeTextKey is a stable identifier into the static registry of canonical code text.
// Callers use it for deduplication and filtering; the human-readable Description is
// never used as an identity.
type CodeTextKey string

// ApproachDirection tags a maneuvering-clearance violation with the approach it was
// evaluated against.
type ApproachDirection string

// Approach directions from Table 11B-404.2.4.1.
const (
	ApproachFrontPull ApproachDirection = "front_pull"
	ApproachFrontPush ApproachDirection = "front_push"
	ApproachHingePull ApproachDirection = "hinge_pull"
	ApproachHingePush ApproachDirection = "hinge_push"
	ApproachLatchPull ApproachDirection = "latch_pull"
	ApproachLatchPush ApproachDirection = "latch_push"
)

// Violation represents a single detected non-conformance with CBC 11B-404.
type Violation struct {
	CodeSection       string             `json:"code_section"`
	CodeText          CodeTextKey        `json:"code_text"`
	Description       string             `json:"description"`
	Severity          string             `json:"severity"`
	MeasuredValue     *float64           `json:"measured_value,omitempty"`
	RequiredValue     *float64           `json:"required_value,omitempty"`
	ApproachDirection *ApproachDirection `json:"approach_direction,omitempty"`
}

// Violations represents a collection of detected non-conformances
type Violations struct {
	Violations []Violation `json:"violations"`
}
