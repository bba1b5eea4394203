package compliance

import (
	"fmt"

	"github.com/melissa/door-compliance/internal/types"
)

// minAutomaticClearOpening is the 32 inch minimum clear opening for automatic doors
// in every operating mode, including emergency break out.
const minAutomaticClearOpening = 32.0

// checkAutomaticDoors enforces the ANSI/BHMA standards compliance flags, the clear
// opening minimums per operating mode, and the emergency break out opening.
func checkAutomaticDoors(door *types.DoorParameters) []types.Violation {
	var violations []types.Violation

	// A compliance flag only violates when it is explicitly false; an absent flag is
	// unmeasured and skips, like every other optional field.
	if flagSet(door.IsAutomaticDoor) {
		if c := door.CompliesWithANSIBHMAA15610; c != nil && !*c {
			violations = append(violations, condition("11B-404.3", KeyANSIBHMAA15610,
				"Automatic door does not comply with ANSI/BHMA A156.10"))
		}
	}
	if flagSet(door.IsPowerAssistedDoor) {
		if c := door.CompliesWithANSIBHMAA15619; c != nil && !*c {
			violations = append(violations, condition("11B-404.3", KeyANSIBHMAA15619,
				"Power-assisted door does not comply with ANSI/BHMA A156.19"))
		}
	}

	if v := door.ClearOpeningPowerOnInches; v != nil && *v < minAutomaticClearOpening {
		violations = append(violations, measurement("11B-404.3.1", KeyClearOpeningOn,
			fmt.Sprintf("Clear opening of %g inches in power-on mode is less than the required 32 inches", *v),
			*v, minAutomaticClearOpening))
	}
	if v := door.ClearOpeningPowerOffInches; v != nil && *v < minAutomaticClearOpening {
		violations = append(violations, measurement("11B-404.3.1", KeyClearOpeningOff,
			fmt.Sprintf("Clear opening of %g inches in power-off mode is less than the required 32 inches", *v),
			*v, minAutomaticClearOpening))
	}
	if v := door.AutomaticDoorLeafAngleAt90DegreesClearOpening; v != nil && *v < minAutomaticClearOpening {
		violations = append(violations, measurement("11B-404.3.1", KeyClearOpeningLeaf,
			fmt.Sprintf("Clear opening of %g inches with the leaf at 90 degrees is less than the required 32 inches", *v),
			*v, minAutomaticClearOpening))
	}

	if breakOutRequired(door) {
		if v := door.ClearBreakOutOpeningEmergencyModeInches; v != nil && *v < minAutomaticClearOpening {
			violations = append(violations, measurement("11B-404.3.6", KeyBreakOutOpening,
				fmt.Sprintf("Clear break out opening of %g inches in emergency mode is less than the required 32 inches", *v),
				*v, minAutomaticClearOpening))
		}
	}

	return violations
}

// breakOutRequired reports whether the 11B-404.3.6 break out opening applies.
// Standby power, not being part of a means of egress, or a manual swinging door
// serving the same egress each suppress the requirement.
func breakOutRequired(door *types.DoorParameters) bool {
	return flagSet(door.IsAutomaticDoor) &&
		!flagSet(door.HasStandbyPower) &&
		flagSet(door.IsPartOfMeansOfEgress) &&
		!flagSet(door.HasManualSwingingDoorServingSameEgress)
}

// maneuveringClearanceRequired implements the 11B-404.3.2 applicability rule.
// Manual doors always require maneuvering clearance. For automatic and
// power-assisted doors, a door that remains open in the power-off condition is
// exempt regardless of the other triggers.
func maneuveringClearanceRequired(door *types.DoorParameters) bool {
	auto := flagSet(door.IsAutomaticDoor)
	powerAssisted := flagSet(door.IsPowerAssistedDoor)
	if !auto && !powerAssisted {
		return true
	}
	if flagSet(door.RemainsOpenInPowerOffCondition) {
		return false
	}
	if powerAssisted {
		return true
	}
	return auto && !flagSet(door.HasStandbyPower) && flagSet(door.ServesAccessibleMeansOfEgress)
}
