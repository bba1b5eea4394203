package types

// Projection describes an obstruction protruding into the clear opening of a door.
type Projection struct {
	HeightAboveFloorInches *float64 `json:"height_above_floor_inches,omitempty"`
	DepthIntoOpeningInches *float64 `json:"depth_into_opening_inches,omitempty"`
}

// DoorParameters holds the as-built measurements and configuration of a single door.
// Every field is optional: nil means "not measured", and rules that depend on a nil
// field are skipped rather than guessed at. Field names follow the survey payload.
type DoorParameters struct {
	// Route and category flags
	IsOnAccessibleRoute  *bool `json:"is_on_accessible_route,omitempty"`
	IsRevolvingDoor      *bool `json:"is_revolving_door,omitempty"`
	IsRevolvingGate      *bool `json:"is_revolving_gate,omitempty"`
	IsTurnstile          *bool `json:"is_turnstile,omitempty"`
	IsAutomaticDoor      *bool `json:"is_automatic_door,omitempty"`
	IsPowerAssistedDoor  *bool `json:"is_power_assisted_door,omitempty"`
	IsExteriorDoor       *bool `json:"is_exterior_door,omitempty"`
	IsAlterationProject  *bool `json:"is_alteration_project,omitempty"`
	IsHingedDoor         *bool `json:"is_hinged_door,omitempty"`
	IsPivotedDoor        *bool `json:"is_pivoted_door,omitempty"`
	IsSlidingDoor        *bool `json:"is_sliding_door,omitempty"`
	IsFoldingDoor        *bool `json:"is_folding_door,omitempty"`
	IsInteriorDoorway    *bool `json:"is_interior_doorway,omitempty"`

	// Clear width measurements (inches)
	ClearWidthInches                  *float64     `json:"clear_width_inches,omitempty"`
	IsOpeningDepthGreaterThan24Inches *bool        `json:"is_opening_depth_greater_than_24_inches,omitempty"`
	Projections                       []Projection `json:"projections,omitempty"`
	LatchSideStopProjectionInches     *float64     `json:"latch_side_stop_projection_inches,omitempty"`
	DoorCloserHeightAboveFloorInches  *float64     `json:"door_closer_height_above_floor_inches,omitempty"`
	DoorStopHeightAboveFloorInches    *float64     `json:"door_stop_height_above_floor_inches,omitempty"`

	// Maneuvering clearance measurements (inches) and hardware flags
	PullSidePerpendicularClearanceInches *float64 `json:"pull_side_perpendicular_clearance_inches,omitempty"`
	PushSidePerpendicularClearanceInches *float64 `json:"push_side_perpendicular_clearance_inches,omitempty"`
	LatchSideClearanceInches             *float64 `json:"latch_side_clearance_inches,omitempty"`
	HingeSideClearanceInches             *float64 `json:"hinge_side_clearance_inches,omitempty"`
	HasDoorCloser                        *bool    `json:"has_door_closer,omitempty"`
	HasLatch                             *bool    `json:"has_latch,omitempty"`

	// Recessed door measurements (inches)
	ObstructionProjectionBeyondDoorFaceInches *float64 `json:"obstruction_projection_beyond_door_face_inches,omitempty"`
	ObstructionDistanceFromLatchSideInches    *float64 `json:"obstruction_distance_from_latch_side_inches,omitempty"`

	// Doors in series
	IsInSeriesWithAnotherDoor                       *bool    `json:"is_in_series_with_another_door,omitempty"`
	DistanceBetweenDoorsInSeriesInches              *float64 `json:"distance_between_doors_in_series_inches,omitempty"`
	WidthOfDoorSwingingIntoSpaceBetweenSeriesInches *float64 `json:"width_of_door_swinging_into_space_between_series_inches,omitempty"`

	// Automatic and power-assisted doors
	CompliesWithANSIBHMAA15610                    *bool    `json:"complies_with_ANSI_BHMA_A156_10,omitempty"`
	CompliesWithANSIBHMAA15619                    *bool    `json:"complies_with_ANSI_BHMA_A156_19,omitempty"`
	ClearOpeningPowerOnInches                     *float64 `json:"clear_opening_power_on_inches,omitempty"`
	ClearOpeningPowerOffInches                    *float64 `json:"clear_opening_power_off_inches,omitempty"`
	AutomaticDoorLeafAngleAt90DegreesClearOpening *float64 `json:"automatic_door_leaf_angle_at_90_degrees_clear_opening_inches,omitempty"`
	RemainsOpenInPowerOffCondition                *bool    `json:"remains_open_in_power_off_condition,omitempty"`
	HasStandbyPower                               *bool    `json:"has_standby_power,omitempty"`
	ServesAccessibleMeansOfEgress                 *bool    `json:"serves_accessible_means_of_egress,omitempty"`
	IsPartOfMeansOfEgress                         *bool    `json:"is_part_of_means_of_egress,omitempty"`
	HasManualSwingingDoorServingSameEgress        *bool    `json:"has_manual_swinging_door_serving_same_egress,omitempty"`
	ClearBreakOutOpeningEmergencyModeInches       *float64 `json:"clear_break_out_opening_emergency_mode_inches,omitempty"`
}
