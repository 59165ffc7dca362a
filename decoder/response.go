package decoder

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/directions-to-route/geometry"
	"github.com/theoremus-urban-solutions/directions-to-route/route"
)

type rawResponse struct {
	Code      *string       `json:"code"`
	Routes    []rawRoute    `json:"routes"`
	Waypoints []rawWaypoint `json:"waypoints"`
}

type rawRoute struct {
	Distance float64         `json:"distance"`
	Duration float64         `json:"duration"`
	Geometry json.RawMessage `json:"geometry"`
	Legs     []rawLeg        `json:"legs"`
}

type rawLeg struct {
	Distance float64           `json:"distance"`
	Duration float64           `json:"duration"`
	Summary  *string           `json:"summary"`
	Steps    []json.RawMessage `json:"steps"`
}

type rawWaypoint struct {
	Name     *string         `json:"name"`
	Location json.RawMessage `json:"location"`
}

// Response decodes a complete current-generation directions response. The
// first malformed step aborts the whole decode; no half-built route escapes.
// Legacy responses are decoded per step through LegacyStep, since only the
// legacy step shape is stable across deployments.
func (d *Decoder) Response(data []byte) (*route.RouteResponse, error) {
	var raw rawResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &route.DecodeError{Field: "response", Message: err.Error()}
	}

	resp := &route.RouteResponse{Routes: make([]route.Route, 0, len(raw.Routes))}
	if raw.Code != nil {
		resp.Code = *raw.Code
	}

	for _, rr := range raw.Routes {
		coordinates, err := d.decodeGeometry(rr.Geometry)
		if err != nil {
			return nil, err
		}
		r := route.Route{
			Distance:           rr.Distance,
			ExpectedTravelTime: rr.Duration,
			Coordinates:        coordinates,
			Legs:               make([]route.RouteLeg, 0, len(rr.Legs)),
		}
		for _, rl := range rr.Legs {
			leg := route.RouteLeg{
				Distance:           rl.Distance,
				ExpectedTravelTime: rl.Duration,
				Steps:              make([]*route.RouteStep, 0, len(rl.Steps)),
			}
			if rl.Summary != nil {
				leg.Summary = *rl.Summary
			}
			for _, stepJSON := range rl.Steps {
				step, err := d.Step(stepJSON)
				if err != nil {
					return nil, err
				}
				leg.Steps = append(leg.Steps, step)
			}
			r.Legs = append(r.Legs, leg)
		}
		resp.Routes = append(resp.Routes, r)
	}

	for _, rw := range raw.Waypoints {
		wp := route.Waypoint{Location: route.InvalidCoordinate}
		if rw.Name != nil {
			wp.Name = *rw.Name
		}
		var v any
		if err := json.Unmarshal(rw.Location, &v); err == nil {
			if c, ok := geometry.ParseCoordinatePair(v); ok {
				wp.Location = c
			}
		}
		resp.Waypoints = append(resp.Waypoints, wp)
	}
	return resp, nil
}

// DecodeResponse decodes a complete current-generation directions response
// with default options.
func DecodeResponse(data []byte) (*route.RouteResponse, error) {
	return New(Options{}).Response(data)
}
