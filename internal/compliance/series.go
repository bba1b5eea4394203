package compliance

import (
	"fmt"

	"github.com/melissa/door-compliance/internal/types"
)

// seriesBaseSeparation is the 11B-404.2.6 minimum distance between two doors in
// series, before adding the width of any door swinging into the space.
const seriesBaseSeparation = 48.0

// checkDoorsInSeries applies to hinged and pivoted doors in series; sliding and
// folding doors are exempt. The required separation is 48 inches plus the swing
// width of any door opening into the space between the two doors.
func checkDoorsInSeries(door *types.DoorParameters) []types.Violation {
	if !flagSet(door.IsInSeriesWithAnotherDoor) {
		return nil
	}
	if !flagSet(door.IsHingedDoor) && !flagSet(door.IsPivotedDoor) {
		return nil
	}

	swing := 0.0
	if w := door.WidthOfDoorSwingingIntoSpaceBetweenSeriesInches; w != nil {
		swing = *w
	}
	required := seriesBaseSeparation + swing

	dist := door.DistanceBetweenDoorsInSeriesInches
	if dist == nil || *dist >= required {
		return nil
	}

	desc := fmt.Sprintf("Distance of %g inches between doors in series is less than the required %g inches (48 inches plus %g inch door swing)",
		*dist, required, swing)
	return []types.Violation{
		measurement("11B-404.2.6", KeyDoorsInSeries, desc, *dist, required),
	}
}
