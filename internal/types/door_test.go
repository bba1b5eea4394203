package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoorParameters_DecodeSurveyPayload(t *testing.T) {
	payload := `{
		"is_on_accessible_route": true,
		"is_automatic_door": false,
		"clear_width_inches": 30,
		"is_opening_depth_greater_than_24_inches": true,
		"projections": [
			{"height_above_floor_inches": 20, "depth_into_opening_inches": 1.5}
		],
		"pull_side_perpendicular_clearance_inches": 55,
		"has_door_closer": true,
		"distance_between_doors_in_series_inches": 60,
		"complies_with_ANSI_BHMA_A156_10": false,
		"automatic_door_leaf_angle_at_90_degrees_clear_opening_inches": 31
	}`

	var door DoorParameters
	require.NoError(t, json.Unmarshal([]byte(payload), &door))

	require.NotNil(t, door.IsOnAccessibleRoute)
	assert.True(t, *door.IsOnAccessibleRoute)
	require.NotNil(t, door.IsAutomaticDoor)
	assert.False(t, *door.IsAutomaticDoor)
	require.NotNil(t, door.ClearWidthInches)
	assert.Equal(t, 30.0, *door.ClearWidthInches)
	require.Len(t, door.Projections, 1)
	assert.Equal(t, 1.5, *door.Projections[0].DepthIntoOpeningInches)
	require.NotNil(t, door.CompliesWithANSIBHMAA15610)
	assert.False(t, *door.CompliesWithANSIBHMAA15610)
	require.NotNil(t, door.AutomaticDoorLeafAngleAt90DegreesClearOpening)
	assert.Equal(t, 31.0, *door.AutomaticDoorLeafAngleAt90DegreesClearOpening)

	// Absent fields stay nil: not measured, not zero.
	assert.Nil(t, door.PushSidePerpendicularClearanceInches)
	assert.Nil(t, door.HasLatch)
	assert.Nil(t, door.IsRevolvingDoor)
}

func TestDoorParameters_EmptyPayload(t *testing.T) {
	var door DoorParameters
	require.NoError(t, json.Unmarshal([]byte(`{}`), &door))
	assert.Nil(t, door.IsOnAccessibleRoute)
	assert.Nil(t, door.Projections)
}

func TestDoorParameters_OmitsAbsentFieldsOnEncode(t *testing.T) {
	width := 30.0
	door := DoorParameters{ClearWidthInches: &width}

	data, err := json.Marshal(door)
	require.NoError(t, err)
	assert.JSONEq(t, `{"clear_width_inches": 30}`, string(data))
}
