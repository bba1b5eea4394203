package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AssessmentSummary aggregates violation counts for quick triage.
type AssessmentSummary struct {
	TotalViolations int            `json:"total_violations"`
	BySection       map[string]int `json:"by_section,omitempty"`
	ByApproach      map[string]int `json:"by_approach,omitempty"`
	Compliant       bool           `json:"compliant"`
}

// DoorAssessment is the envelope returned to API and CLI consumers: one door's
// parameters together with the full violation list and a summary.
type DoorAssessment struct {
	ID          uuid.UUID         `json:"id"`
	Label       string            `json:"label,omitempty"`
	EvaluatedAt time.Time         `json:"evaluated_at"`
	Door        DoorParameters    `json:"door"`
	Violations  []Violation       `json:"violations"`
	Summary     AssessmentSummary `json:"summary"`
}

// EvaluateRequest is the API payload for a single door evaluation.
type EvaluateRequest struct {
	Label string         `json:"label,omitempty" validate:"max=200"`
	Door  DoorParameters `json:"door"`
}

// BatchEvaluateRequest is the API payload for evaluating several doors in one call.
type BatchEvaluateRequest struct {
	Doors []EvaluateRequest `json:"doors" validate:"required,min=1,max=500,dive"`
}

// Validate validates the EvaluateRequest using the validator.
func (r *EvaluateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchEvaluateRequest using the validator.
func (r *BatchEvaluateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
