package compliance

import "github.com/melissa/door-compliance/internal/types"

// Evaluate runs every applicable rule against the door and returns the complete set
// of violations in deterministic order. It is pure: it never errors, never mutates
// the input, and a nil or off-route door yields no violations at all.
//
// Rules skip silently when the measurements they depend on are absent. The only
// cross-rule gating is the maneuvering-clearance applicability rule for automatic
// and power-assisted doors (11B-404.3.2).
func Evaluate(door *types.DoorParameters) []types.Violation {
	if door == nil || !flagSet(door.IsOnAccessibleRoute) {
		return nil
	}

	var violations []types.Violation
	violations = append(violations, checkRevolving(door)...)
	violations = append(violations, checkClearWidth(door)...)
	if maneuveringClearanceRequired(door) {
		violations = append(violations, checkManeuveringClearance(door)...)
	}
	violations = append(violations, checkRecessedDoor(door)...)
	violations = append(violations, checkDoorsInSeries(door)...)
	violations = append(violations, checkAutomaticDoors(door)...)
	return violations
}
