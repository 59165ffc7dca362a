package decoder

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/directions-to-route/geometry"
	"github.com/theoremus-urban-solutions/directions-to-route/route"
)

type rawLane struct {
	Valid       bool     `json:"valid"`
	Indications []string `json:"indications"`
}

type rawIntersection struct {
	Location json.RawMessage `json:"location"`
	Bearings []float64       `json:"bearings"`
	Entry    []bool          `json:"entry"`
	In       *int            `json:"in"`
	Out      *int            `json:"out"`
	Lanes    []rawLane       `json:"lanes"`
}

// decodeIntersection decodes one element of a step's intersections array. A
// malformed element fails the step it belongs to.
func decodeIntersection(data json.RawMessage) (route.Intersection, error) {
	var raw rawIntersection
	if err := json.Unmarshal(data, &raw); err != nil {
		return route.Intersection{}, &route.DecodeError{Field: "intersections", Message: err.Error()}
	}
	var v any
	if err := json.Unmarshal(raw.Location, &v); err != nil {
		return route.Intersection{}, &route.DecodeError{Field: "intersections.location", Message: "missing or malformed location"}
	}
	location, ok := geometry.ParseCoordinatePair(v)
	if !ok {
		return route.Intersection{}, &route.DecodeError{Field: "intersections.location", Message: "missing or malformed location"}
	}

	isec := route.Intersection{
		Location:      location,
		Bearings:      raw.Bearings,
		Entry:         raw.Entry,
		ApproachIndex: raw.In,
		OutletIndex:   raw.Out,
	}
	if raw.Lanes != nil {
		isec.Lanes = make([]route.Lane, len(raw.Lanes))
		for i, lane := range raw.Lanes {
			isec.Lanes[i] = route.Lane{Valid: lane.Valid, Indications: lane.Indications}
		}
	}
	return isec, nil
}
