package persist

import (
	"fmt"

	"github.com/theoremus-urban-solutions/directions-to-route/geometry"
	"github.com/theoremus-urban-solutions/directions-to-route/route"
)

// Record is the neutral persisted form of a route step.
type Record = map[string]any

// Marshal serializes a step into a record. Optional fields appear in the
// record only when present on the step.
func Marshal(step *route.RouteStep) Record {
	rec := Record{
		"instructions":       step.Instructions,
		"maneuverLocation":   encodeCoordinate(step.ManeuverLocation),
		"distance":           step.Distance,
		"expectedTravelTime": step.ExpectedTravelTime,
	}
	if step.Coordinates != nil {
		coords := make([]any, len(step.Coordinates))
		for i, c := range step.Coordinates {
			coords[i] = encodeCoordinate(c)
		}
		rec["coordinates"] = coords
	}
	if step.InitialHeading != nil {
		rec["initialHeading"] = *step.InitialHeading
	}
	if step.FinalHeading != nil {
		rec["finalHeading"] = *step.FinalHeading
	}
	if step.ManeuverType != nil {
		rec["maneuverType"] = step.ManeuverType.String()
	}
	if step.ManeuverDirection != nil {
		rec["maneuverDirection"] = step.ManeuverDirection.String()
	}
	if step.TransportType != nil {
		rec["transportType"] = step.TransportType.String()
	}
	if step.ExitIndex != nil {
		rec["exitIndex"] = float64(*step.ExitIndex)
	}
	putStrings(rec, "exitNames", step.ExitNames)
	putStrings(rec, "names", step.Names)
	putStrings(rec, "codes", step.Codes)
	putStrings(rec, "destinationCodes", step.DestinationCodes)
	putStrings(rec, "destinations", step.Destinations)
	if step.Intersections != nil {
		isecs := make([]any, len(step.Intersections))
		for i, isec := range step.Intersections {
			isecs[i] = encodeIntersection(isec)
		}
		rec["intersections"] = isecs
	}
	return rec
}

// Unmarshal restores a step from a record. Instructions and the maneuver-
// and transport-type wire values must read as strings when present;
// unrecognized vocabulary strings decode to no value, and a missing or
// malformed maneuver location decodes to route.InvalidCoordinate rather
// than failing the record.
func Unmarshal(rec Record) (*route.RouteStep, error) {
	v, ok := rec["instructions"]
	if !ok {
		return nil, &route.DecodeError{Field: "instructions", Message: "missing instructions"}
	}
	instructions, ok := v.(string)
	if !ok {
		return nil, &route.DecodeError{Field: "instructions", Message: fmt.Sprintf("expected string, got %T", v)}
	}

	step := &route.RouteStep{
		Instructions:     instructions,
		ManeuverLocation: route.InvalidCoordinate,
	}
	if v, ok := rec["maneuverLocation"]; ok {
		if c, ok := geometry.ParseCoordinatePair(v); ok {
			step.ManeuverLocation = c
		}
	}

	if v, ok := rec["maneuverType"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, &route.DecodeError{Field: "maneuverType", Message: fmt.Sprintf("expected string, got %T", v)}
		}
		if t, ok := route.ParseManeuverType(s); ok {
			step.ManeuverType = &t
		}
	}
	if v, ok := rec["transportType"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, &route.DecodeError{Field: "transportType", Message: fmt.Sprintf("expected string, got %T", v)}
		}
		if t, ok := route.ParseTransportType(s); ok {
			step.TransportType = &t
		}
	}
	if s, ok := getString(rec, "maneuverDirection"); ok {
		if d, ok := route.ParseManeuverDirection(s); ok {
			step.ManeuverDirection = &d
		}
	}

	if f, ok := getFloat(rec, "initialHeading"); ok {
		step.InitialHeading = &f
	}
	if f, ok := getFloat(rec, "finalHeading"); ok {
		step.FinalHeading = &f
	}
	if f, ok := getFloat(rec, "distance"); ok {
		step.Distance = f
	}
	if f, ok := getFloat(rec, "expectedTravelTime"); ok {
		step.ExpectedTravelTime = f
	}
	if f, ok := getFloat(rec, "exitIndex"); ok {
		exit := int(f)
		step.ExitIndex = &exit
	}

	step.ExitNames = getStrings(rec, "exitNames")
	step.Names = getStrings(rec, "names")
	step.Codes = getStrings(rec, "codes")
	step.DestinationCodes = getStrings(rec, "destinationCodes")
	step.Destinations = getStrings(rec, "destinations")

	if v, ok := rec["coordinates"]; ok {
		list, _ := v.([]any)
		coords := make([]route.Coordinate, 0, len(list))
		for _, entry := range list {
			if c, ok := geometry.ParseCoordinatePair(entry); ok {
				coords = append(coords, c)
			}
		}
		step.Coordinates = coords
	}
	if v, ok := rec["intersections"]; ok {
		list, _ := v.([]any)
		isecs := make([]route.Intersection, 0, len(list))
		for _, entry := range list {
			if m, ok := entry.(map[string]any); ok {
				isecs = append(isecs, decodeIntersection(m))
			}
		}
		step.Intersections = isecs
	}
	return step, nil
}

func encodeCoordinate(c route.Coordinate) []any {
	return []any{c.Longitude, c.Latitude}
}

func encodeIntersection(isec route.Intersection) map[string]any {
	m := map[string]any{"location": encodeCoordinate(isec.Location)}
	if isec.Bearings != nil {
		bearings := make([]any, len(isec.Bearings))
		for i, b := range isec.Bearings {
			bearings[i] = b
		}
		m["bearings"] = bearings
	}
	if isec.Entry != nil {
		entry := make([]any, len(isec.Entry))
		for i, e := range isec.Entry {
			entry[i] = e
		}
		m["entry"] = entry
	}
	if isec.ApproachIndex != nil {
		m["in"] = float64(*isec.ApproachIndex)
	}
	if isec.OutletIndex != nil {
		m["out"] = float64(*isec.OutletIndex)
	}
	if isec.Lanes != nil {
		lanes := make([]any, len(isec.Lanes))
		for i, lane := range isec.Lanes {
			lm := map[string]any{"valid": lane.Valid}
			if lane.Indications != nil {
				indications := make([]any, len(lane.Indications))
				for j, ind := range lane.Indications {
					indications[j] = ind
				}
				lm["indications"] = indications
			}
			lanes[i] = lm
		}
		m["lanes"] = lanes
	}
	return m
}

func decodeIntersection(m map[string]any) route.Intersection {
	isec := route.Intersection{Location: route.InvalidCoordinate}
	if v, ok := m["location"]; ok {
		if c, ok := geometry.ParseCoordinatePair(v); ok {
			isec.Location = c
		}
	}
	if v, ok := m["bearings"]; ok {
		list, _ := v.([]any)
		isec.Bearings = make([]float64, 0, len(list))
		for _, entry := range list {
			if f, ok := entry.(float64); ok {
				isec.Bearings = append(isec.Bearings, f)
			}
		}
	}
	if v, ok := m["entry"]; ok {
		list, _ := v.([]any)
		isec.Entry = make([]bool, 0, len(list))
		for _, entry := range list {
			if b, ok := entry.(bool); ok {
				isec.Entry = append(isec.Entry, b)
			}
		}
	}
	if f, ok := getFloat(m, "in"); ok {
		in := int(f)
		isec.ApproachIndex = &in
	}
	if f, ok := getFloat(m, "out"); ok {
		out := int(f)
		isec.OutletIndex = &out
	}
	if v, ok := m["lanes"]; ok {
		list, _ := v.([]any)
		isec.Lanes = make([]route.Lane, 0, len(list))
		for _, entry := range list {
			lm, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			lane := route.Lane{}
			if b, ok := lm["valid"].(bool); ok {
				lane.Valid = b
			}
			lane.Indications = getStrings(lm, "indications")
			isec.Lanes = append(isec.Lanes, lane)
		}
	}
	return isec
}

func putStrings(rec Record, key string, values []string) {
	if values == nil {
		return
	}
	list := make([]any, len(values))
	for i, s := range values {
		list[i] = s
	}
	rec[key] = list
}

func getString(rec map[string]any, key string) (string, bool) {
	v, ok := rec[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func getFloat(rec map[string]any, key string) (float64, bool) {
	v, ok := rec[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// getStrings reads a string list, keeping the presence/absence distinction:
// an absent key yields nil, a present empty list yields an empty slice.
func getStrings(rec map[string]any, key string) []string {
	v, ok := rec[key]
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out
	case []any:
		out := make([]string, 0, len(list))
		for _, entry := range list {
			if s, ok := entry.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
