package compliance

import (
	"fmt"

	"github.com/melissa/door-compliance/internal/types"
)

// Clear width thresholds from 11B-404.2.3. All comparisons are pass-inclusive: a
// measurement exactly at the threshold complies.
const (
	minClearWidth            = 32.0
	minClearWidthDeepOpening = 36.0

	projectionLowHeightLimit  = 34.0
	projectionHighHeightLimit = 80.0
	maxProjectionMidHeight    = 4.0

	maxLatchStopAlteration = 0.625
	minHardwareHeight      = 78.0
)

// checkClearWidth enforces the minimum clear opening width, the projection limits,
// the latch side stop exception, and the closer/stop mounting heights.
func checkClearWidth(door *types.DoorParameters) []types.Violation {
	var violations []types.Violation

	required := minClearWidth
	deep := flagSet(door.IsOpeningDepthGreaterThan24Inches)
	if deep {
		required = minClearWidthDeepOpening
	}
	if w := door.ClearWidthInches; w != nil && *w < required {
		desc := fmt.Sprintf("Clear width of %g inches is less than the required %g inches", *w, required)
		if deep {
			desc = fmt.Sprintf("Clear width of %g inches is less than the %g inches required for openings more than 24 inches deep", *w, required)
		}
		violations = append(violations, measurement("11B-404.2.3", KeyClearWidth, desc, *w, required))
	}

	for _, p := range door.Projections {
		h, d := p.HeightAboveFloorInches, p.DepthIntoOpeningInches
		if h == nil || d == nil {
			continue
		}
		switch {
		case *h < projectionLowHeightLimit:
			if *d > 0 {
				violations = append(violations, measurement("11B-404.2.3", KeyProjectionBelow34,
					fmt.Sprintf("Projection of %g inches into the clear opening at %g inches above the floor is not permitted below 34 inches", *d, *h),
					*d, 0.0))
			}
		case *h <= projectionHighHeightLimit:
			if *d > maxProjectionMidHeight {
				violations = append(violations, measurement("11B-404.2.3", KeyProjection34To80,
					fmt.Sprintf("Projection of %g inches into the clear opening at %g inches above the floor exceeds the 4 inch maximum permitted between 34 and 80 inches", *d, *h),
					*d, maxProjectionMidHeight))
			}
		}
	}

	if s := door.LatchSideStopProjectionInches; s != nil {
		if flagSet(door.IsAlterationProject) {
			if *s > maxLatchStopAlteration {
				violations = append(violations, measurement("11B-404.2.3", KeyLatchSideStop,
					fmt.Sprintf("Latch side stop projection of %g inches exceeds the 0.625 inch maximum permitted in an alteration", *s),
					*s, maxLatchStopAlteration))
			}
		} else if *s > 0 {
			violations = append(violations, measurement("11B-404.2.3", KeyLatchSideStop,
				fmt.Sprintf("Latch side stop projection of %g inches is not permitted in new construction", *s),
				*s, 0.0))
		}
	}

	if h := door.DoorCloserHeightAboveFloorInches; h != nil && *h < minHardwareHeight {
		violations = append(violations, measurement("11B-404.2.3", KeyCloserHeight,
			fmt.Sprintf("Door closer mounted %g inches above the floor is below the required 78 inches", *h),
			*h, minHardwareHeight))
	}
	if h := door.DoorStopHeightAboveFloorInches; h != nil && *h < minHardwareHeight {
		violations = append(violations, measurement("11B-404.2.3", KeyStopHeight,
			fmt.Sprintf("Door stop mounted %g inches above the floor is below the required 78 inches", *h),
			*h, minHardwareHeight))
	}

	return violations
}
