package compliance

import (
	"testing"

	"github.com/melissa/door-compliance/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckClearWidth_BelowMinimum(t *testing.T) {
	door := onRoute()
	door.ClearWidthInches = fptr(30)

	violations := checkClearWidth(door)
	require.Len(t, violations, 1)
	assert.Equal(t, "11B-404.2.3", violations[0].CodeSection)
	assert.Equal(t, KeyClearWidth, violations[0].CodeText)
	assert.Equal(t, types.SeverityError, violations[0].Severity)
	require.NotNil(t, violations[0].MeasuredValue)
	assert.Equal(t, 30.0, *violations[0].MeasuredValue)
	require.NotNil(t, violations[0].RequiredValue)
	assert.Equal(t, 32.0, *violations[0].RequiredValue)
}

func TestCheckClearWidth_ExactlyAtThreshold(t *testing.T) {
	door := onRoute()
	door.ClearWidthInches = fptr(32)

	assert.Empty(t, checkClearWidth(door))
}

func TestCheckClearWidth_JustBelowThreshold(t *testing.T) {
	door := onRoute()
	door.ClearWidthInches = fptr(31.99)

	assert.Len(t, checkClearWidth(door), 1)
}

func TestCheckClearWidth_NotMeasured(t *testing.T) {
	assert.Empty(t, checkClearWidth(onRoute()))
}

func TestCheckClearWidth_DeepOpeningRequires36(t *testing.T) {
	door := onRoute()
	door.ClearWidthInches = fptr(34)
	door.IsOpeningDepthGreaterThan24Inches = bptr(true)

	violations := checkClearWidth(door)
	require.Len(t, violations, 1)
	assert.Equal(t, 36.0, *violations[0].RequiredValue)
	assert.Contains(t, violations[0].Description, "24 inches deep")
}

func TestCheckClearWidth_DeepOpeningAt36Passes(t *testing.T) {
	door := onRoute()
	door.ClearWidthInches = fptr(36)
	door.IsOpeningDepthGreaterThan24Inches = bptr(true)

	assert.Empty(t, checkClearWidth(door))
}

func TestCheckClearWidth_ProjectionBelow34(t *testing.T) {
	door := onRoute()
	door.Projections = []types.Projection{
		{HeightAboveFloorInches: fptr(20), DepthIntoOpeningInches: fptr(1.5)},
	}

	violations := checkClearWidth(door)
	require.Len(t, violations, 1)
	assert.Equal(t, KeyProjectionBelow34, violations[0].CodeText)
	assert.Equal(t, 1.5, *violations[0].MeasuredValue)
	assert.Equal(t, 0.0, *violations[0].RequiredValue)
}

func TestCheckClearWidth_ProjectionBelow34_ZeroDepthPasses(t *testing.T) {
	door := onRoute()
	door.Projections = []types.Projection{
		{HeightAboveFloorInches: fptr(20), DepthIntoOpeningInches: fptr(0)},
	}

	assert.Empty(t, checkClearWidth(door))
}

func TestCheckClearWidth_ProjectionMidHeight(t *testing.T) {
	door := onRoute()
	door.Projections = []types.Projection{
		{HeightAboveFloorInches: fptr(50), DepthIntoOpeningInches: fptr(5)},
	}

	violations := checkClearWidth(door)
	require.Len(t, violations, 1)
	assert.Equal(t, KeyProjection34To80, violations[0].CodeText)
	assert.Equal(t, 4.0, *violations[0].RequiredValue)
}

func TestCheckClearWidth_ProjectionMidHeight_ExactlyFourPasses(t *testing.T) {
	door := onRoute()
	door.Projections = []types.Projection{
		{HeightAboveFloorInches: fptr(34), DepthIntoOpeningInches: fptr(4)},
		{HeightAboveFloorInches: fptr(80), DepthIntoOpeningInches: fptr(4)},
	}

	assert.Empty(t, checkClearWidth(door))
}

func TestCheckClearWidth_ProjectionAbove80NotEvaluated(t *testing.T) {
	door := onRoute()
	door.Projections = []types.Projection{
		{HeightAboveFloorInches: fptr(80.01), DepthIntoOpeningInches: fptr(12)},
	}

	assert.Empty(t, checkClearWidth(door))
}

func TestCheckClearWidth_MultipleProjections(t *testing.T) {
	door := onRoute()
	door.Projections = []types.Projection{
		{HeightAboveFloorInches: fptr(10), DepthIntoOpeningInches: fptr(2)},
		{HeightAboveFloorInches: fptr(40), DepthIntoOpeningInches: fptr(6)},
		{HeightAboveFloorInches: fptr(40), DepthIntoOpeningInches: fptr(3)},
	}

	violations := checkClearWidth(door)
	assert.Len(t, violations, 2)
}

func TestCheckClearWidth_ProjectionMissingFieldSkipped(t *testing.T) {
	door := onRoute()
	door.Projections = []types.Projection{
		{HeightAboveFloorInches: fptr(10)},
		{DepthIntoOpeningInches: fptr(6)},
	}

	assert.Empty(t, checkClearWidth(door))
}

func TestCheckClearWidth_LatchStopNewConstruction(t *testing.T) {
	door := onRoute()
	door.LatchSideStopProjectionInches = fptr(0.5)

	violations := checkClearWidth(door)
	require.Len(t, violations, 1)
	assert.Equal(t, KeyLatchSideStop, violations[0].CodeText)
	assert.Equal(t, 0.0, *violations[0].RequiredValue)
	assert.Contains(t, violations[0].Description, "new construction")
}

func TestCheckClearWidth_LatchStopAlterationWithinLimit(t *testing.T) {
	door := onRoute()
	door.IsAlterationProject = bptr(true)
	door.LatchSideStopProjectionInches = fptr(0.625)

	assert.Empty(t, checkClearWidth(door))
}

func TestCheckClearWidth_LatchStopAlterationExceeded(t *testing.T) {
	door := onRoute()
	door.IsAlterationProject = bptr(true)
	door.LatchSideStopProjectionInches = fptr(0.75)

	violations := checkClearWidth(door)
	require.Len(t, violations, 1)
	assert.Equal(t, 0.625, *violations[0].RequiredValue)
	assert.Contains(t, violations[0].Description, "alteration")
}

func TestCheckClearWidth_CloserAndStopHeights(t *testing.T) {
	door := onRoute()
	door.DoorCloserHeightAboveFloorInches = fptr(70)
	door.DoorStopHeightAboveFloorInches = fptr(75)

	violations := checkClearWidth(door)
	require.Len(t, violations, 2)
	assert.Equal(t, KeyCloserHeight, violations[0].CodeText)
	assert.Contains(t, violations[0].Description, "closer")
	assert.Equal(t, KeyStopHeight, violations[1].CodeText)
	assert.Contains(t, violations[1].Description, "stop")
	assert.Equal(t, 78.0, *violations[0].RequiredValue)
}

func TestCheckClearWidth_HardwareExactly78Passes(t *testing.T) {
	door := onRoute()
	door.DoorCloserHeightAboveFloorInches = fptr(78)
	door.DoorStopHeightAboveFloorInches = fptr(78)

	assert.Empty(t, checkClearWidth(door))
}
