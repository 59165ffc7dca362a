package route

// Coordinate is a geographic point in WGS84 degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// InvalidCoordinate marks a maneuver location that could not be restored
// from persisted data.
var InvalidCoordinate = Coordinate{Latitude: -180, Longitude: -180}

// IsValid reports whether the coordinate lies inside WGS84 bounds.
func (c Coordinate) IsValid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Lane is a single lane at an intersection together with the turn
// indications painted on it. Indications are open vocabulary upstream and
// are kept verbatim.
type Lane struct {
	Valid       bool     `json:"valid"`
	Indications []string `json:"indications,omitempty"`
}

// Intersection describes the road layout at one point along a step: the
// bearings of all roads meeting there, which of them can be entered, and
// the indexes of the roads used to approach and leave the intersection.
type Intersection struct {
	Location      Coordinate `json:"location"`
	Bearings      []float64  `json:"bearings,omitempty"`
	Entry         []bool     `json:"entry,omitempty"`
	ApproachIndex *int       `json:"in,omitempty"`
	OutletIndex   *int       `json:"out,omitempty"`
	Lanes         []Lane     `json:"lanes,omitempty"`
}

// RouteStep is one maneuver and the stretch of road between it and the next
// maneuver. Steps are immutable once built: the decoder constructs a step
// from one wire object, the persist package restores one from a record, and
// neither hands out anything half-built.
//
// A nil slice field means the upstream response carried no value; an empty
// non-nil slice means it carried an empty list. The persist package keeps
// that distinction.
type RouteStep struct {
	// Coordinates is the path from this step's maneuver to the next one.
	Coordinates []Coordinate `json:"coordinates,omitempty"`

	// Instructions is the upstream instruction text, or a synthesized
	// "type direction" fallback. Never absent, possibly empty.
	Instructions string `json:"instructions"`

	InitialHeading    *float64           `json:"initialHeading,omitempty"`
	FinalHeading      *float64           `json:"finalHeading,omitempty"`
	ManeuverType      *ManeuverType      `json:"maneuverType,omitempty"`
	ManeuverDirection *ManeuverDirection `json:"maneuverDirection,omitempty"`
	ManeuverLocation  Coordinate         `json:"maneuverLocation"`

	// ExitIndex counts roundabout exits (or generally, possible turns)
	// passed before leaving.
	ExitIndex *int `json:"exitIndex,omitempty"`

	// ExitNames carries the exit road's names when the maneuver enters a
	// named roundabout or rotary; the roundabout's own name then occupies
	// Names. For every other maneuver type ExitNames is absent.
	ExitNames []string `json:"exitNames,omitempty"`

	// Distance in meters, ExpectedTravelTime in seconds; both default 0.
	Distance           float64 `json:"distance"`
	ExpectedTravelTime float64 `json:"expectedTravelTime"`

	Names            []string       `json:"names,omitempty"`
	Codes            []string       `json:"codes,omitempty"`
	TransportType    *TransportType `json:"transportType,omitempty"`
	DestinationCodes []string       `json:"destinationCodes,omitempty"`
	Destinations     []string       `json:"destinations,omitempty"`
	Intersections    []Intersection `json:"intersections,omitempty"`
}

// RouteLeg is the stretch of a route between two waypoints.
type RouteLeg struct {
	Distance           float64      `json:"distance"`
	ExpectedTravelTime float64      `json:"expectedTravelTime"`
	Summary            string       `json:"summary,omitempty"`
	Steps              []*RouteStep `json:"steps"`
}

// Route is one route alternative from a directions response.
type Route struct {
	Distance           float64      `json:"distance"`
	ExpectedTravelTime float64      `json:"expectedTravelTime"`
	Coordinates        []Coordinate `json:"coordinates,omitempty"`
	Legs               []RouteLeg   `json:"legs"`
}

// Waypoint is an input location snapped onto the road network.
type Waypoint struct {
	Name     string     `json:"name,omitempty"`
	Location Coordinate `json:"location"`
}

// RouteResponse is a decoded directions response.
type RouteResponse struct {
	Code      string     `json:"code,omitempty"`
	Routes    []Route    `json:"routes"`
	Waypoints []Waypoint `json:"waypoints,omitempty"`
}
