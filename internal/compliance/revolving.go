package compliance

import "github.com/melissa/door-compliance/internal/types"

// checkRevolving prohibits revolving doors, revolving gates and turnstiles on an
// accessible route. The manual-door checks under 11B-404.2.1 always run; automatic
// and power-assisted doors are additionally cited under 11B-404.3.7, so a revolving
// automatic door is flagged under both sections.
func checkRevolving(door *types.DoorParameters) []types.Violation {
	var violations []types.Violation

	if flagSet(door.IsRevolvingDoor) {
		violations = append(violations, condition("11B-404.2.1", KeyRevolvingDoor,
			"Revolving door is not permitted on accessible route"))
	}
	if flagSet(door.IsRevolvingGate) {
		violations = append(violations, condition("11B-404.2.1", KeyRevolvingGate,
			"Revolving gate is not permitted on accessible route"))
	}
	if flagSet(door.IsTurnstile) {
		violations = append(violations, condition("11B-404.2.1", KeyTurnstile,
			"Turnstile is not permitted on accessible route"))
	}

	if flagSet(door.IsAutomaticDoor) || flagSet(door.IsPowerAssistedDoor) {
		if flagSet(door.IsRevolvingDoor) {
			violations = append(violations, condition("11B-404.3.7", KeyRevolvingDoorAuto,
				"Revolving door is not permitted as an automatic or power-assisted door on accessible route"))
		}
		if flagSet(door.IsRevolvingGate) {
			violations = append(violations, condition("11B-404.3.7", KeyRevolvingGateAuto,
				"Revolving gate is not permitted as an automatic or power-assisted door on accessible route"))
		}
		if flagSet(door.IsTurnstile) {
			violations = append(violations, condition("11B-404.3.7", KeyTurnstileAuto,
				"Turnstile is not permitted as an automatic or power-assisted door on accessible route"))
		}
	}

	return violations
}
