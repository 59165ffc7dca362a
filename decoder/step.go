package decoder

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/directions-to-route/geometry"
	"github.com/theoremus-urban-solutions/directions-to-route/route"
)

// Options contains decoding knobs that are not part of the wire format.
type Options struct {
	// PolylinePrecision is the number of decimal places used by encoded
	// geometry strings. Zero means the format default of five.
	PolylinePrecision uint32
}

func (o Options) precision() uint32 {
	if o.PolylinePrecision == 0 {
		return geometry.DefaultPrecision
	}
	return o.PolylinePrecision
}

// Decoder decodes directions API wire objects into the canonical route
// model. The zero value is usable; New applies Options.
type Decoder struct {
	opts Options
}

// New creates a decoder with the given options.
func New(opts Options) *Decoder {
	return &Decoder{opts: opts}
}

// rawStep is the union of both generations' step shapes. Pointer fields
// distinguish absent from empty; RawMessage fields defer shape checks to
// assembly so a wrong shape surfaces as a DecodeError, not a json error on
// the whole object.
type rawStep struct {
	Name          *string           `json:"name"`
	WayName       *string           `json:"way_name"`
	Ref           *string           `json:"ref"`
	Destinations  *string           `json:"destinations"`
	RotaryName    *string           `json:"rotary_name"`
	Mode          *string           `json:"mode"`
	Distance      *float64          `json:"distance"`
	Duration      *float64          `json:"duration"`
	Geometry      json.RawMessage   `json:"geometry"`
	Intersections []json.RawMessage `json:"intersections"`
	Maneuver      json.RawMessage   `json:"maneuver"`
}

type rawManeuver struct {
	BearingBefore *float64        `json:"bearing_before"`
	BearingAfter  *float64        `json:"bearing_after"`
	Heading       *float64        `json:"heading"`
	Type          *string         `json:"type"`
	Modifier      *string         `json:"modifier"`
	Location      json.RawMessage `json:"location"`
	Exit          *int            `json:"exit"`
	Instruction   *string         `json:"instruction"`
}

// Step decodes one current-generation step object.
func (d *Decoder) Step(data []byte) (*route.RouteStep, error) {
	var raw rawStep
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &route.DecodeError{Field: "step", Message: err.Error()}
	}
	return d.buildStep(&raw)
}

// LegacyStep decodes one legacy-generation step object.
func (d *Decoder) LegacyStep(data []byte) (*route.RouteStep, error) {
	var raw rawStep
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &route.DecodeError{Field: "step", Message: err.Error()}
	}
	return d.buildLegacyStep(&raw)
}

// DecodeStep decodes one current-generation step object with default
// options.
func DecodeStep(data []byte) (*route.RouteStep, error) {
	return New(Options{}).Step(data)
}

// DecodeLegacyStep decodes one legacy-generation step object with default
// options.
func DecodeLegacyStep(data []byte) (*route.RouteStep, error) {
	return New(Options{}).LegacyStep(data)
}

func (d *Decoder) buildStep(raw *rawStep) (*route.RouteStep, error) {
	if raw.Name == nil {
		return nil, &route.DecodeError{Field: "name", Message: "missing step name"}
	}
	man, err := decodeManeuver(raw.Maneuver)
	if err != nil {
		return nil, err
	}
	if man.Type == nil {
		return nil, &route.DecodeError{Field: "maneuver.type", Message: "missing maneuver type"}
	}
	location, err := decodeLocation(man.Location)
	if err != nil {
		return nil, err
	}

	var maneuverType *route.ManeuverType
	if t, ok := route.ParseManeuverType(*man.Type); ok {
		maneuverType = &t
	}
	var maneuverDirection *route.ManeuverDirection
	if man.Modifier != nil {
		if dir, ok := route.ParseManeuverDirection(*man.Modifier); ok {
			maneuverDirection = &dir
		}
	}

	rd := newRoad(*raw.Name, raw.Ref, raw.Destinations, raw.RotaryName)
	return d.assemble(raw, man, rd, maneuverType, maneuverDirection, location, man.BearingBefore, man.BearingAfter)
}

func (d *Decoder) buildLegacyStep(raw *rawStep) (*route.RouteStep, error) {
	if raw.WayName == nil {
		return nil, &route.DecodeError{Field: "way_name", Message: "missing way name"}
	}
	man, err := decodeManeuver(raw.Maneuver)
	if err != nil {
		return nil, err
	}
	if man.Type == nil {
		return nil, &route.DecodeError{Field: "maneuver.type", Message: "missing maneuver type"}
	}
	location, err := decodeLocation(man.Location)
	if err != nil {
		return nil, err
	}

	// The legacy type string combines maneuver type and direction; adapt it
	// into the current vocabulary before parsing.
	var maneuverType *route.ManeuverType
	if t, ok := route.ParseManeuverType(legacyManeuverType(*man.Type)); ok {
		maneuverType = &t
	}
	var maneuverDirection *route.ManeuverDirection
	if dir, ok := route.ParseManeuverDirection(legacyManeuverDirection(*man.Type)); ok {
		maneuverDirection = &dir
	}

	rd := newRoad(*raw.WayName, nil, nil, nil)
	return d.assemble(raw, man, rd, maneuverType, maneuverDirection, location, nil, man.Heading)
}

// assemble is the generation-agnostic tail shared by both entry points.
func (d *Decoder) assemble(
	raw *rawStep,
	man *rawManeuver,
	rd road,
	maneuverType *route.ManeuverType,
	maneuverDirection *route.ManeuverDirection,
	location route.Coordinate,
	initialHeading, finalHeading *float64,
) (*route.RouteStep, error) {
	coordinates, err := d.decodeGeometry(raw.Geometry)
	if err != nil {
		return nil, err
	}

	var intersections []route.Intersection
	if raw.Intersections != nil {
		intersections = make([]route.Intersection, 0, len(raw.Intersections))
		for _, entry := range raw.Intersections {
			isec, err := decodeIntersection(entry)
			if err != nil {
				return nil, err
			}
			intersections = append(intersections, isec)
		}
	}

	// A named roundabout's own name and its exit road's name occupy swapped
	// slots relative to an ordinary turn.
	names := rd.names
	var exitNames []string
	if maneuverType != nil &&
		(*maneuverType == route.ManeuverTakeRoundabout || *maneuverType == route.ManeuverTakeRotary) {
		exitNames = rd.names
		names = rd.rotaryNames
	}

	step := &route.RouteStep{
		Coordinates:       coordinates,
		Instructions:      resolveInstructions(man.Instruction, maneuverType, maneuverDirection),
		InitialHeading:    initialHeading,
		FinalHeading:      finalHeading,
		ManeuverType:      maneuverType,
		ManeuverDirection: maneuverDirection,
		ManeuverLocation:  location,
		ExitIndex:         man.Exit,
		ExitNames:         exitNames,
		Names:             names,
		Codes:             rd.codes,
		DestinationCodes:  rd.destinationCodes,
		Destinations:      rd.destinations,
		Intersections:     intersections,
	}
	if raw.Distance != nil {
		step.Distance = *raw.Distance
	}
	if raw.Duration != nil {
		step.ExpectedTravelTime = *raw.Duration
	}
	if raw.Mode != nil {
		if transport, ok := route.ParseTransportType(*raw.Mode); ok {
			step.TransportType = &transport
		}
	}
	return step, nil
}

func decodeManeuver(raw json.RawMessage) (*rawManeuver, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, &route.DecodeError{Field: "maneuver", Message: "missing maneuver object"}
	}
	var man rawManeuver
	if err := json.Unmarshal(raw, &man); err != nil {
		return nil, &route.DecodeError{Field: "maneuver", Message: err.Error()}
	}
	return &man, nil
}

func decodeLocation(raw json.RawMessage) (route.Coordinate, error) {
	malformed := &route.DecodeError{Field: "maneuver.location", Message: "missing or malformed maneuver location"}
	if len(raw) == 0 {
		return route.Coordinate{}, malformed
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return route.Coordinate{}, malformed
	}
	location, ok := geometry.ParseCoordinatePair(v)
	if !ok {
		return route.Coordinate{}, malformed
	}
	return location, nil
}

// resolveInstructions prefers the API-supplied text, synthesizing a
// "type direction" fallback when only maneuver metadata is present.
func resolveInstructions(supplied *string, t *route.ManeuverType, dir *route.ManeuverDirection) string {
	if supplied != nil {
		return *supplied
	}
	switch {
	case t != nil && dir != nil:
		return t.String() + " " + dir.String()
	case t != nil:
		return t.String()
	case dir != nil:
		return dir.String()
	}
	return ""
}

// decodeGeometry accepts the three step geometry forms: an encoded polyline
// string, a geometry object with a coordinates array, or a bare array of
// [longitude, latitude] pairs. No geometry at all is fine.
func (d *Decoder) decodeGeometry(raw json.RawMessage) ([]route.Coordinate, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		coords, err := geometry.DecodePolyline(encoded, d.opts.precision())
		if err != nil {
			return nil, &route.DecodeError{Field: "geometry", Message: err.Error()}
		}
		return coords, nil
	}
	var obj struct {
		Coordinates []json.RawMessage `json:"coordinates"`
	}
	pairs := []json.RawMessage(nil)
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Coordinates != nil {
		pairs = obj.Coordinates
	} else if err := json.Unmarshal(raw, &pairs); err != nil {
		return nil, &route.DecodeError{Field: "geometry", Message: "unsupported geometry shape"}
	}
	coords := make([]route.Coordinate, 0, len(pairs))
	for _, pair := range pairs {
		var v any
		if err := json.Unmarshal(pair, &v); err != nil {
			return nil, &route.DecodeError{Field: "geometry", Message: err.Error()}
		}
		c, ok := geometry.ParseCoordinatePair(v)
		if !ok {
			return nil, &route.DecodeError{Field: "geometry", Message: "malformed coordinate pair"}
		}
		coords = append(coords, c)
	}
	return coords, nil
}
