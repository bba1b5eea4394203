// Package server provides the HTTP REST API for the door compliance evaluator.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/melissa/door-compliance/internal/report"
	"github.com/melissa/door-compliance/internal/schemas"
	"github.com/melissa/door-compliance/internal/types"
	"golang.org/x/sync/errgroup"
)

// rawEvaluateRequest mirrors types.EvaluateRequest but keeps the door payload
// raw so it can be checked against the JSON Schema before decoding. The schema
// rejects unknown fields, which a typed decode would silently drop.
type rawEvaluateRequest struct {
	Label string          `json:"label"`
	Door  json.RawMessage `json:"door"`
}

type rawBatchEvaluateRequest struct {
	Doors []rawEvaluateRequest `json:"doors"`
}

// handleEvaluate evaluates a single door and returns the assessment.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var raw rawEvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req, err := s.decodeDoor(raw)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	assessment := report.Assess(req.Label, req.Door)
	s.metrics.RecordEvaluation(assessment.Summary.TotalViolations)

	s.jsonResponse(w, http.StatusOK, assessment)
}

// batchEvaluateResponse is the envelope for a batch evaluation result.
type batchEvaluateResponse struct {
	Assessments []*types.DoorAssessment `json:"assessments"`
}

// handleEvaluateBatch evaluates several doors concurrently and returns the
// assessments in request order.
func (s *Server) handleEvaluateBatch(w http.ResponseWriter, r *http.Request) {
	var raw rawBatchEvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	batch := types.BatchEvaluateRequest{Doors: make([]types.EvaluateRequest, 0, len(raw.Doors))}
	for _, rawDoor := range raw.Doors {
		req, err := s.decodeDoor(rawDoor)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		batch.Doors = append(batch.Doors, req)
	}
	if err := batch.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	assessments := make([]*types.DoorAssessment, len(batch.Doors))

	g, _ := errgroup.WithContext(r.Context())
	g.SetLimit(s.concurrency)
	for i, door := range batch.Doors {
		g.Go(func() error {
			assessments[i] = report.Assess(door.Label, door.Door)
			return nil
		})
	}
	// Workers only evaluate in memory; no errors are produced.
	_ = g.Wait()

	for _, assessment := range assessments {
		s.metrics.RecordEvaluation(assessment.Summary.TotalViolations)
	}

	s.jsonResponse(w, http.StatusOK, batchEvaluateResponse{Assessments: assessments})
}

// decodeDoor validates a raw door payload against the JSON Schema (when one is
// configured), decodes it and runs struct-level validation.
func (s *Server) decodeDoor(raw rawEvaluateRequest) (types.EvaluateRequest, error) {
	var req types.EvaluateRequest
	req.Label = raw.Label

	if len(raw.Door) == 0 {
		return req, &ErrValidation{Field: "door", Message: "required"}
	}

	if s.schemaPath != "" {
		if err := schemas.ValidatePayload(s.schemaPath, raw.Door); err != nil {
			return req, err
		}
	}

	if err := json.Unmarshal(raw.Door, &req.Door); err != nil {
		return req, &ErrValidation{Field: "door", Message: "invalid JSON"}
	}

	if err := req.Validate(); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return req, &ErrValidation{Field: "door", Message: extractValidationErrors(err)}
		}
		return req, err
	}

	return req, nil
}
