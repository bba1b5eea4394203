package compliance

import "github.com/melissa/door-compliance/internal/types"

// Code text keys. Each key identifies one regulatory clause; violations carry the key
// so callers can deduplicate and filter independently of the human description.
const (
	KeyRevolvingDoor     types.CodeTextKey = "11B-404.2.1_revolving_door"
	KeyRevolvingGate     types.CodeTextKey = "11B-404.2.1_revolving_gate"
	KeyTurnstile         types.CodeTextKey = "11B-404.2.1_turnstile"
	KeyClearWidth        types.CodeTextKey = "11B-404.2.3_clear_width"
	KeyProjectionBelow34 types.CodeTextKey = "11B-404.2.3_projection_below_34"
	KeyProjection34To80  types.CodeTextKey = "11B-404.2.3_projection_34_to_80"
	KeyLatchSideStop     types.CodeTextKey = "11B-404.2.3_latch_side_stop"
	KeyCloserHeight      types.CodeTextKey = "11B-404.2.3_closer_height"
	KeyStopHeight        types.CodeTextKey = "11B-404.2.3_stop_height"
	KeyPerpendicular     types.CodeTextKey = "11B-404.2.4.1_perpendicular_clearance"
	KeySideClearance     types.CodeTextKey = "11B-404.2.4.1_side_clearance"
	KeyRecessedDoor      types.CodeTextKey = "11B-404.2.4.3_recessed_door"
	KeyDoorsInSeries     types.CodeTextKey = "11B-404.2.6_doors_in_series"
	KeyANSIBHMAA15610    types.CodeTextKey = "11B-404.3_ansi_bhma_a156_10"
	KeyANSIBHMAA15619    types.CodeTextKey = "11B-404.3_ansi_bhma_a156_19"
	KeyClearOpeningOn    types.CodeTextKey = "11B-404.3.1_clear_opening_power_on"
	KeyClearOpeningOff   types.CodeTextKey = "11B-404.3.1_clear_opening_power_off"
	KeyClearOpeningLeaf  types.CodeTextKey = "11B-404.3.1_clear_opening_leaf_angle"
	KeyBreakOutOpening   types.CodeTextKey = "11B-404.3.6_break_out_opening"
	KeyRevolvingDoorAuto types.CodeTextKey = "11B-404.3.7_revolving_door"
	KeyRevolvingGateAuto types.CodeTextKey = "11B-404.3.7_revolving_gate"
	KeyTurnstileAuto     types.CodeTextKey = "11B-404.3.7_turnstile"
)

// CodeText maps every key to the canonical requirement sentence from CBC 11B-404.
// The engine looks text up by key and never constructs it dynamically.
var CodeText = map[types.CodeTextKey]string{
	KeyRevolvingDoor:     "Revolving doors, revolving gates and turnstiles shall not be part of an accessible route.",
	KeyRevolvingGate:     "Revolving doors, revolving gates and turnstiles shall not be part of an accessible route.",
	KeyTurnstile:         "Revolving doors, revolving gates and turnstiles shall not be part of an accessible route.",
	KeyClearWidth:        "Door openings shall provide a clear width of 32 inches minimum; openings more than 24 inches deep shall provide a clear opening of 36 inches minimum.",
	KeyProjectionBelow34: "There shall be no projections into the required clear opening width lower than 34 inches above the finish floor or ground.",
	KeyProjection34To80:  "Projections into the clear opening width between 34 inches and 80 inches above the finish floor or ground shall not exceed 4 inches.",
	KeyLatchSideStop:     "In alterations, a projection of 5/8 inch maximum into the required clear width shall be permitted for the latch side stop.",
	KeyCloserHeight:      "Door closers and door stops shall be permitted to be 78 inches minimum above the finish floor or ground.",
	KeyStopHeight:        "Door closers and door stops shall be permitted to be 78 inches minimum above the finish floor or ground.",
	KeyPerpendicular:     "Minimum maneuvering clearances at doors and gates shall comply with Table 11B-404.2.4.1 and shall extend the full width of the doorway.",
	KeySideClearance:     "Minimum maneuvering clearances at doors and gates shall comply with Table 11B-404.2.4.1, including the required clearance beyond the latch or hinge side.",
	KeyRecessedDoor:      "Maneuvering clearances for a forward approach shall be provided when any obstruction within 18 inches (interior) or 24 inches (exterior) of the latch side projects more than 8 inches beyond the face of the door.",
	KeyDoorsInSeries:     "The distance between two hinged or pivoted doors in series shall be 48 inches minimum plus the width of doors swinging into the space.",
	KeyANSIBHMAA15610:    "Automatic doors shall comply with ANSI/BHMA A156.10.",
	KeyANSIBHMAA15619:    "Power-assisted doors and low-energy doors shall comply with ANSI/BHMA A156.19.",
	KeyClearOpeningOn:    "Automatic doors shall provide a clear opening of 32 inches minimum in power-on mode.",
	KeyClearOpeningOff:   "Automatic doors shall provide a clear opening of 32 inches minimum in power-off mode.",
	KeyClearOpeningLeaf:  "Automatic door leaves shall provide a clear opening of 32 inches minimum with the leaf positioned at an angle of 90 degrees from its closed position.",
	KeyBreakOutOpening:   "Automatic doors serving a means of egress without standby power shall provide a 32 inch minimum clear break out opening when operated in emergency mode.",
	KeyRevolvingDoorAuto: "Revolving doors, revolving gates and turnstiles shall not be used at automatic or power-assisted doors on an accessible route.",
	KeyRevolvingGateAuto: "Revolving doors, revolving gates and turnstiles shall not be used at automatic or power-assisted doors on an accessible route.",
	KeyTurnstileAuto:     "Revolving doors, revolving gates and turnstiles shall not be used at automatic or power-assisted doors on an accessible route.",
}

// Text returns the canonical regulatory sentence for a key, or the empty string for
// an unknown key.
func Text(key types.CodeTextKey) string {
	return CodeText[key]
}
