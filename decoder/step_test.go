package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/directions-to-route/route"
)

func TestDecodeStep(t *testing.T) {
	step, err := DecodeStep([]byte(`{
		"name": "Main Street (NH 101)",
		"ref": "NH 101",
		"destinations": "I 95 South: Boston, Providence",
		"mode": "driving",
		"distance": 1203.4,
		"duration": 89.2,
		"geometry": "_p~iF~ps|U_ulLnnqC",
		"intersections": [{
			"location": [-120.2, 38.5],
			"bearings": [90, 180, 270],
			"entry": [true, false, true],
			"in": 0,
			"out": 2,
			"lanes": [{"valid": true, "indications": ["left", "straight"]}]
		}],
		"maneuver": {
			"bearing_before": 210.5,
			"bearing_after": 45,
			"type": "turn",
			"modifier": "left",
			"location": [-120.2, 38.5],
			"exit": 2,
			"instruction": "Turn left onto Main Street"
		}
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Main Street"}, step.Names)
	assert.Equal(t, []string{"NH 101"}, step.Codes)
	assert.Nil(t, step.ExitNames)
	assert.Equal(t, []string{"I 95 South"}, step.DestinationCodes)
	assert.Equal(t, []string{"Boston", "Providence"}, step.Destinations)

	require.NotNil(t, step.ManeuverType)
	assert.Equal(t, route.ManeuverTurn, *step.ManeuverType)
	require.NotNil(t, step.ManeuverDirection)
	assert.Equal(t, route.DirectionLeft, *step.ManeuverDirection)
	require.NotNil(t, step.TransportType)
	assert.Equal(t, route.TransportAutomobile, *step.TransportType)

	assert.Equal(t, "Turn left onto Main Street", step.Instructions)
	assert.Equal(t, route.Coordinate{Latitude: 38.5, Longitude: -120.2}, step.ManeuverLocation)
	require.NotNil(t, step.InitialHeading)
	assert.Equal(t, 210.5, *step.InitialHeading)
	require.NotNil(t, step.FinalHeading)
	assert.Equal(t, 45.0, *step.FinalHeading)
	require.NotNil(t, step.ExitIndex)
	assert.Equal(t, 2, *step.ExitIndex)
	assert.Equal(t, 1203.4, step.Distance)
	assert.Equal(t, 89.2, step.ExpectedTravelTime)

	require.Len(t, step.Coordinates, 2)
	assert.InDelta(t, 38.5, step.Coordinates[0].Latitude, 1e-9)
	assert.InDelta(t, -120.2, step.Coordinates[0].Longitude, 1e-9)

	require.Len(t, step.Intersections, 1)
	isec := step.Intersections[0]
	assert.Equal(t, route.Coordinate{Latitude: 38.5, Longitude: -120.2}, isec.Location)
	assert.Equal(t, []float64{90, 180, 270}, isec.Bearings)
	assert.Equal(t, []bool{true, false, true}, isec.Entry)
	require.NotNil(t, isec.ApproachIndex)
	assert.Equal(t, 0, *isec.ApproachIndex)
	require.NotNil(t, isec.OutletIndex)
	assert.Equal(t, 2, *isec.OutletIndex)
	require.Len(t, isec.Lanes, 1)
	assert.True(t, isec.Lanes[0].Valid)
	assert.Equal(t, []string{"left", "straight"}, isec.Lanes[0].Indications)
}

func TestDecodeStepRotarySwapsNames(t *testing.T) {
	step, err := DecodeStep([]byte(`{
		"name": "5th Ave",
		"rotary_name": "Columbus Circle",
		"mode": "driving",
		"maneuver": {"type": "rotary", "location": [-73.982, 40.768], "exit": 3}
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Columbus Circle"}, step.Names)
	assert.Equal(t, []string{"5th Ave"}, step.ExitNames)
	require.NotNil(t, step.ExitIndex)
	assert.Equal(t, 3, *step.ExitIndex)
}

func TestDecodeStepRoundaboutSwapsNames(t *testing.T) {
	step, err := DecodeStep([]byte(`{
		"name": "Midtown Ring",
		"mode": "driving",
		"maneuver": {"type": "roundabout", "location": [-73.982, 40.768]}
	}`))
	require.NoError(t, err)

	// An unnamed roundabout: the exit road's name moves, nothing replaces it
	assert.Nil(t, step.Names)
	assert.Equal(t, []string{"Midtown Ring"}, step.ExitNames)
}

func TestDecodeStepInstructionFallback(t *testing.T) {
	step, err := DecodeStep([]byte(`{
		"name": "Main Street",
		"mode": "driving",
		"maneuver": {"type": "turn", "modifier": "left", "location": [0, 0]}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "turn left", step.Instructions)

	step, err = DecodeStep([]byte(`{
		"name": "Main Street",
		"mode": "driving",
		"maneuver": {"type": "depart", "location": [0, 0]}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "depart", step.Instructions)

	// Unrecognized type string with a recognized modifier: only the
	// direction's textual form remains.
	step, err = DecodeStep([]byte(`{
		"name": "Main Street",
		"mode": "driving",
		"maneuver": {"type": "not-a-maneuver", "modifier": "left", "location": [0, 0]}
	}`))
	require.NoError(t, err)
	assert.Nil(t, step.ManeuverType)
	assert.Equal(t, "left", step.Instructions)

	step, err = DecodeStep([]byte(`{
		"name": "Main Street",
		"mode": "driving",
		"maneuver": {"type": "not-a-maneuver", "location": [0, 0]}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "", step.Instructions)
}

func TestDecodeStepGeometryObject(t *testing.T) {
	step, err := DecodeStep([]byte(`{
		"name": "Main Street",
		"mode": "driving",
		"geometry": {"type": "LineString", "coordinates": [[8.5, 47.3], [8.6, 47.4]]},
		"maneuver": {"type": "depart", "location": [8.5, 47.3]}
	}`))
	require.NoError(t, err)
	assert.Equal(t, []route.Coordinate{
		{Latitude: 47.3, Longitude: 8.5},
		{Latitude: 47.4, Longitude: 8.6},
	}, step.Coordinates)
}

func TestDecodeStepGeometryBareArray(t *testing.T) {
	step, err := DecodeStep([]byte(`{
		"name": "Main Street",
		"mode": "driving",
		"geometry": [[8.5, 47.3], [8.6, 47.4]],
		"maneuver": {"type": "depart", "location": [8.5, 47.3]}
	}`))
	require.NoError(t, err)
	require.Len(t, step.Coordinates, 2)
	assert.Equal(t, route.Coordinate{Latitude: 47.4, Longitude: 8.6}, step.Coordinates[1])
}

func TestDecodeStepNoGeometry(t *testing.T) {
	step, err := DecodeStep([]byte(`{
		"name": "Main Street",
		"mode": "driving",
		"maneuver": {"type": "depart", "location": [8.5, 47.3]}
	}`))
	require.NoError(t, err)
	assert.Nil(t, step.Coordinates)
}

func TestDecodeStepUnknownMode(t *testing.T) {
	step, err := DecodeStep([]byte(`{
		"name": "Main Street",
		"mode": "hovercraft",
		"maneuver": {"type": "depart", "location": [8.5, 47.3]}
	}`))
	require.NoError(t, err)
	assert.Nil(t, step.TransportType)
}

func TestDecodeStepMalformed(t *testing.T) {
	cases := map[string]string{
		"missing maneuver":    `{"name": "Main Street", "mode": "driving"}`,
		"null maneuver":       `{"name": "Main Street", "mode": "driving", "maneuver": null}`,
		"maneuver wrong type": `{"name": "Main Street", "mode": "driving", "maneuver": "turn"}`,
		"missing type":        `{"name": "Main Street", "mode": "driving", "maneuver": {"location": [0, 0]}}`,
		"missing location":    `{"name": "Main Street", "mode": "driving", "maneuver": {"type": "turn"}}`,
		"short location":      `{"name": "Main Street", "mode": "driving", "maneuver": {"type": "turn", "location": [0]}}`,
		"missing name":        `{"mode": "driving", "maneuver": {"type": "turn", "location": [0, 0]}}`,
		"bad polyline":        `{"name": "Main Street", "geometry": "_p~iF", "maneuver": {"type": "turn", "location": [0, 0]}}`,
		"bad intersection":    `{"name": "Main Street", "intersections": [{"bearings": [90]}], "maneuver": {"type": "turn", "location": [0, 0]}}`,
		"not an object":       `[1, 2, 3]`,
	}
	for name, in := range cases {
		step, err := DecodeStep([]byte(in))
		require.Error(t, err, name)
		assert.Nil(t, step, name)
		var decodeErr *route.DecodeError
		assert.ErrorAs(t, err, &decodeErr, name)
	}
}

func TestDecodeLegacyStep(t *testing.T) {
	step, err := DecodeLegacyStep([]byte(`{
		"way_name": "Brandschenkestrasse (K 210)",
		"mode": "driving",
		"maneuver": {"heading": 60.5, "type": "bear right", "location": [8.5343, 47.3622]}
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Brandschenkestrasse"}, step.Names)
	assert.Equal(t, []string{"K 210"}, step.Codes)
	require.NotNil(t, step.ManeuverType)
	assert.Equal(t, route.ManeuverTurn, *step.ManeuverType)
	require.NotNil(t, step.ManeuverDirection)
	assert.Equal(t, route.DirectionSlightRight, *step.ManeuverDirection)
	assert.Nil(t, step.InitialHeading)
	require.NotNil(t, step.FinalHeading)
	assert.Equal(t, 60.5, *step.FinalHeading)
	assert.Equal(t, route.Coordinate{Latitude: 47.3622, Longitude: 8.5343}, step.ManeuverLocation)
	assert.Equal(t, "turn slight right", step.Instructions)
}

func TestDecodeLegacyStepUTurn(t *testing.T) {
	step, err := DecodeLegacyStep([]byte(`{
		"way_name": "Hauptstrasse",
		"mode": "driving",
		"maneuver": {"type": "u-turn", "location": [8.5, 47.3]}
	}`))
	require.NoError(t, err)

	require.NotNil(t, step.ManeuverType)
	assert.Equal(t, route.ManeuverTurn, *step.ManeuverType)
	require.NotNil(t, step.ManeuverDirection)
	assert.Equal(t, route.DirectionUTurn, *step.ManeuverDirection)
}

func TestDecodeLegacyStepMalformed(t *testing.T) {
	cases := map[string]string{
		"missing way_name": `{"mode": "driving", "maneuver": {"type": "turn left", "location": [0, 0]}}`,
		"missing maneuver": `{"way_name": "Hauptstrasse", "mode": "driving"}`,
	}
	for name, in := range cases {
		step, err := DecodeLegacyStep([]byte(in))
		require.Error(t, err, name)
		assert.Nil(t, step, name)
	}
}
