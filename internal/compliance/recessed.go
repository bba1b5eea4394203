package compliance

import (
	"fmt"

	"github.com/melissa/door-compliance/internal/types"
)

// Recessed door thresholds from 11B-404.2.4.3, in inches.
const (
	recessedProjectionTrigger     = 8.0
	recessedLatchDistanceInterior = 18.0
	recessedLatchDistanceExterior = 24.0
	recessedForwardClearance      = 60.0
)

// checkRecessedDoor requires full forward (pull side) clearance when an obstruction
// near the latch side projects more than 8 inches beyond the face of the door. The
// latch-distance trigger is 18 inches for interior doorways and 24 inches for
// exterior doors; interior is the default exposure when neither flag is set.
func checkRecessedDoor(door *types.DoorParameters) []types.Violation {
	proj := door.ObstructionProjectionBeyondDoorFaceInches
	if proj == nil || *proj <= recessedProjectionTrigger {
		return nil
	}

	dist := door.ObstructionDistanceFromLatchSideInches
	if dist == nil {
		return nil
	}
	trigger := recessedLatchDistanceInterior
	if flagSet(door.IsExteriorDoor) && !flagSet(door.IsInteriorDoorway) {
		trigger = recessedLatchDistanceExterior
	}
	if *dist > trigger {
		return nil
	}

	fwd := door.PullSidePerpendicularClearanceInches
	if fwd == nil || *fwd >= recessedForwardClearance {
		return nil
	}

	desc := fmt.Sprintf("Door is recessed by an obstruction projecting %g inches within %g inches of the latch side; forward clearance of %g inches is less than the required %g inches",
		*proj, *dist, *fwd, recessedForwardClearance)
	return []types.Violation{
		measurement("11B-404.2.4.3", KeyRecessedDoor, desc, *fwd, recessedForwardClearance),
	}
}
