package compliance

import (
	"fmt"

	"github.com/melissa/door-compliance/internal/types"
)

// Maneuvering clearance minimums from Table 11B-404.2.4.1, in inches. The "closer"
// and "latch" variants apply when the door carries that hardware.
const (
	pullPerpendicular = 60.0

	frontPushPerpendicular            = 48.0
	frontPushPerpendicularCloserLatch = 60.0

	hingePushPerpendicular            = 44.0
	hingePushPerpendicularCloserLatch = 48.0

	latchPushPerpendicular       = 44.0
	latchPushPerpendicularCloser = 48.0

	frontPullLatchSideInterior = 18.0
	frontPullLatchSideExterior = 24.0
	hingePullHingeSide         = 36.0
	hingePushHingeSide         = 22.0
	hingePushHingeSideHardware = 26.0
	latchSideClearance         = 24.0
)

var approachLabels = map[types.ApproachDirection]string{
	types.ApproachFrontPull: "Front approach, pull side",
	types.ApproachFrontPush: "Front approach, push side",
	types.ApproachHingePull: "Hinge approach, pull side",
	types.ApproachHingePush: "Hinge approach, push side",
	types.ApproachLatchPull: "Latch approach, pull side",
	types.ApproachLatchPush: "Latch approach, push side",
}

// checkManeuveringClearance evaluates the six approach-direction cases. The input
// carries measurements rather than an approach direction, so every case whose
// clearance field is present is checked and each violation is tagged with the
// approach it was evaluated against.
func checkManeuveringClearance(door *types.DoorParameters) []types.Violation {
	var violations []types.Violation

	closer := flagSet(door.HasDoorCloser)
	latch := flagSet(door.HasLatch)

	pull := door.PullSidePerpendicularClearanceInches
	push := door.PushSidePerpendicularClearanceInches
	latchSide := door.LatchSideClearanceInches
	hingeSide := door.HingeSideClearanceInches

	// Front approach, pull side
	violations = appendPerpendicular(violations, types.ApproachFrontPull, pull, pullPerpendicular)
	frontPullSide := frontPullLatchSideInterior
	if flagSet(door.IsExteriorDoor) {
		frontPullSide = frontPullLatchSideExterior
	}
	violations = appendSide(violations, types.ApproachFrontPull, "latch", latchSide, frontPullSide)

	// Front approach, push side
	frontPush := frontPushPerpendicular
	if closer && latch {
		frontPush = frontPushPerpendicularCloserLatch
	}
	violations = appendPerpendicular(violations, types.ApproachFrontPush, push, frontPush)

	// Hinge approach, pull side
	violations = appendPerpendicular(violations, types.ApproachHingePull, pull, pullPerpendicular)
	violations = appendSide(violations, types.ApproachHingePull, "hinge", hingeSide, hingePullHingeSide)

	// Hinge approach, push side
	hingePush := hingePushPerpendicular
	hingePushSide := hingePushHingeSide
	if closer && latch {
		hingePush = hingePushPerpendicularCloserLatch
		hingePushSide = hingePushHingeSideHardware
	}
	violations = appendPerpendicular(violations, types.ApproachHingePush, push, hingePush)
	violations = appendSide(violations, types.ApproachHingePush, "hinge", hingeSide, hingePushSide)

	// Latch approach, pull side
	violations = appendPerpendicular(violations, types.ApproachLatchPull, pull, pullPerpendicular)
	violations = appendSide(violations, types.ApproachLatchPull, "latch", latchSide, latchSideClearance)

	// Latch approach, push side
	latchPush := latchPushPerpendicular
	if closer {
		latchPush = latchPushPerpendicularCloser
	}
	violations = appendPerpendicular(violations, types.ApproachLatchPush, push, latchPush)
	violations = appendSide(violations, types.ApproachLatchPush, "latch", latchSide, latchSideClearance)

	return violations
}

func appendPerpendicular(violations []types.Violation, approach types.ApproachDirection, value *float64, required float64) []types.Violation {
	if value == nil || *value >= required {
		return violations
	}
	desc := fmt.Sprintf("%s: perpendicular clearance of %g inches is less than the required %g inches",
		approachLabels[approach], *value, required)
	return append(violations, withApproach(
		measurement("11B-404.2.4.1", KeyPerpendicular, desc, *value, required), approach))
}

func appendSide(violations []types.Violation, approach types.ApproachDirection, sideName string, value *float64, required float64) []types.Violation {
	if value == nil || *value >= required {
		return violations
	}
	desc := fmt.Sprintf("%s: %s side clearance of %g inches is less than the required %g inches",
		approachLabels[approach], sideName, *value, required)
	return append(violations, withApproach(
		measurement("11B-404.2.4.1", KeySideClearance, desc, *value, required), approach))
}
