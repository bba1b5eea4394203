package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutomatic_A15610ExplicitlyFalse(t *testing.T) {
	door := onRoute()
	door.IsAutomaticDoor = bptr(true)
	door.CompliesWithANSIBHMAA15610 = bptr(false)

	violations := checkAutomaticDoors(door)
	require.Len(t, violations, 1)
	assert.Equal(t, "11B-404.3", violations[0].CodeSection)
	assert.Equal(t, KeyANSIBHMAA15610, violations[0].CodeText)
	assert.Nil(t, violations[0].MeasuredValue)
}

func TestAutomatic_A15610AbsentSkips(t *testing.T) {
	door := onRoute()
	door.IsAutomaticDoor = bptr(true)

	assert.Empty(t, checkAutomaticDoors(door))
}

func TestAutomatic_A15619OnlyForPowerAssisted(t *testing.T) {
	door := onRoute()
	door.CompliesWithANSIBHMAA15619 = bptr(false)

	assert.Empty(t, checkAutomaticDoors(door))

	door.IsPowerAssistedDoor = bptr(true)
	violations := checkAutomaticDoors(door)
	require.Len(t, violations, 1)
	assert.Equal(t, KeyANSIBHMAA15619, violations[0].CodeText)
}

func TestAutomatic_ClearOpeningByMode(t *testing.T) {
	door := onRoute()
	door.IsAutomaticDoor = bptr(true)
	door.ClearOpeningPowerOnInches = fptr(30)
	door.ClearOpeningPowerOffInches = fptr(31)
	door.AutomaticDoorLeafAngleAt90DegreesClearOpening = fptr(28)

	violations := checkAutomaticDoors(door)
	require.Len(t, violations, 3)
	assert.Equal(t, KeyClearOpeningOn, violations[0].CodeText)
	assert.Equal(t, KeyClearOpeningOff, violations[1].CodeText)
	assert.Equal(t, KeyClearOpeningLeaf, violations[2].CodeText)
	for _, v := range violations {
		assert.Equal(t, "11B-404.3.1", v.CodeSection)
		assert.Equal(t, 32.0, *v.RequiredValue)
	}
}

func TestAutomatic_ClearOpeningExactly32Passes(t *testing.T) {
	door := onRoute()
	door.IsAutomaticDoor = bptr(true)
	door.ClearOpeningPowerOnInches = fptr(32)
	door.ClearOpeningPowerOffInches = fptr(32)
	door.AutomaticDoorLeafAngleAt90DegreesClearOpening = fptr(32)

	assert.Empty(t, checkAutomaticDoors(door))
}

func TestAutomatic_BreakOutRequired(t *testing.T) {
	door := onRoute()
	door.IsAutomaticDoor = bptr(true)
	door.IsPartOfMeansOfEgress = bptr(true)
	door.ClearBreakOutOpeningEmergencyModeInches = fptr(28)

	violations := checkAutomaticDoors(door)
	require.Len(t, violations, 1)
	assert.Equal(t, "11B-404.3.6", violations[0].CodeSection)
	assert.Equal(t, KeyBreakOutOpening, violations[0].CodeText)
	assert.Equal(t, 28.0, *violations[0].MeasuredValue)
	assert.Equal(t, 32.0, *violations[0].RequiredValue)
}

func TestAutomatic_BreakOutSuppressedByStandbyPower(t *testing.T) {
	door := onRoute()
	door.IsAutomaticDoor = bptr(true)
	door.IsPartOfMeansOfEgress = bptr(true)
	door.HasStandbyPower = bptr(true)
	door.ClearBreakOutOpeningEmergencyModeInches = fptr(20)

	assert.Empty(t, checkAutomaticDoors(door))
}

func TestAutomatic_BreakOutSuppressedByManualDoor(t *testing.T) {
	door := onRoute()
	door.IsAutomaticDoor = bptr(true)
	door.IsPartOfMeansOfEgress = bptr(true)
	door.HasManualSwingingDoorServingSameEgress = bptr(true)
	door.ClearBreakOutOpeningEmergencyModeInches = fptr(20)

	assert.Empty(t, checkAutomaticDoors(door))
}

func TestAutomatic_BreakOutNotRequiredOutsideEgress(t *testing.T) {
	door := onRoute()
	door.IsAutomaticDoor = bptr(true)
	door.ClearBreakOutOpeningEmergencyModeInches = fptr(20)

	assert.Empty(t, checkAutomaticDoors(door))
}

func TestManeuveringRequired_ManualDoorAlways(t *testing.T) {
	assert.True(t, maneuveringClearanceRequired(onRoute()))
}

func TestManeuveringRequired_PowerAssisted(t *testing.T) {
	door := onRoute()
	door.IsPowerAssistedDoor = bptr(true)

	assert.True(t, maneuveringClearanceRequired(door))
}

func TestManeuveringRequired_AutomaticEgressWithoutStandby(t *testing.T) {
	door := onRoute()
	door.IsAutomaticDoor = bptr(true)
	door.ServesAccessibleMeansOfEgress = bptr(true)

	assert.True(t, maneuveringClearanceRequired(door))

	door.HasStandbyPower = bptr(true)
	assert.False(t, maneuveringClearanceRequired(door))
}

func TestManeuveringRequired_AutomaticNotServingEgress(t *testing.T) {
	door := onRoute()
	door.IsAutomaticDoor = bptr(true)

	assert.False(t, maneuveringClearanceRequired(door))
}

func TestManeuveringRequired_RemainsOpenOverridesEverything(t *testing.T) {
	door := onRoute()
	door.IsPowerAssistedDoor = bptr(true)
	door.RemainsOpenInPowerOffCondition = bptr(true)

	assert.False(t, maneuveringClearanceRequired(door))

	door = onRoute()
	door.IsAutomaticDoor = bptr(true)
	door.ServesAccessibleMeansOfEgress = bptr(true)
	door.RemainsOpenInPowerOffCondition = bptr(true)

	assert.False(t, maneuveringClearanceRequired(door))
}
