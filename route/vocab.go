package route

// TransportType is the mode of travel used along a step.
type TransportType string

const (
	TransportAutomobile    TransportType = "driving"
	TransportFerry         TransportType = "ferry"
	TransportMovableBridge TransportType = "movable bridge"
	TransportInaccessible  TransportType = "unaccessible"
	TransportWalking       TransportType = "walking"
	TransportCycling       TransportType = "cycling"
	TransportTrain         TransportType = "train"
)

// validTransportTypes is the single source of truth for transport-type wire
// strings.
var validTransportTypes = map[TransportType]struct{}{
	TransportAutomobile:    {},
	TransportFerry:         {},
	TransportMovableBridge: {},
	TransportInaccessible:  {},
	TransportWalking:       {},
	TransportCycling:       {},
	TransportTrain:         {},
}

// ParseTransportType maps a wire string onto a transport type. Unrecognized
// strings report ok=false rather than an error; callers treat the field as
// absent in that case.
func ParseTransportType(s string) (TransportType, bool) {
	t := TransportType(s)
	_, ok := validTransportTypes[t]
	if !ok {
		return "", false
	}
	return t, true
}

// String returns the canonical wire string for the transport type.
func (t TransportType) String() string {
	return string(t)
}

// ManeuverType is the discrete action a traveler performs at the start of a
// step.
type ManeuverType string

const (
	ManeuverDepart           ManeuverType = "depart"
	ManeuverTurn             ManeuverType = "turn"
	ManeuverContinue         ManeuverType = "continue"
	ManeuverPassNameChange   ManeuverType = "new name"
	ManeuverMerge            ManeuverType = "merge"
	ManeuverTakeOnRamp       ManeuverType = "on ramp"
	ManeuverTakeOffRamp      ManeuverType = "off ramp"
	ManeuverReachFork        ManeuverType = "fork"
	ManeuverReachEnd         ManeuverType = "end of road"
	ManeuverUseLane          ManeuverType = "use lane"
	ManeuverTakeRoundabout   ManeuverType = "roundabout"
	ManeuverTakeRotary       ManeuverType = "rotary"
	ManeuverTurnAtRoundabout ManeuverType = "roundabout turn"
	ManeuverHeedWarning      ManeuverType = "notification"
	ManeuverArrive           ManeuverType = "arrive"
	ManeuverPassWaypoint     ManeuverType = "waypoint"
)

var validManeuverTypes = map[ManeuverType]struct{}{
	ManeuverDepart:           {},
	ManeuverTurn:             {},
	ManeuverContinue:         {},
	ManeuverPassNameChange:   {},
	ManeuverMerge:            {},
	ManeuverTakeOnRamp:       {},
	ManeuverTakeOffRamp:      {},
	ManeuverReachFork:        {},
	ManeuverReachEnd:         {},
	ManeuverUseLane:          {},
	ManeuverTakeRoundabout:   {},
	ManeuverTakeRotary:       {},
	ManeuverTurnAtRoundabout: {},
	ManeuverHeedWarning:      {},
	ManeuverArrive:           {},
	ManeuverPassWaypoint:     {},
}

// ParseManeuverType maps a wire string onto a maneuver type. Unrecognized
// strings report ok=false rather than an error.
func ParseManeuverType(s string) (ManeuverType, bool) {
	t := ManeuverType(s)
	_, ok := validManeuverTypes[t]
	if !ok {
		return "", false
	}
	return t, true
}

// String returns the canonical wire string for the maneuver type.
func (t ManeuverType) String() string {
	return string(t)
}

// ManeuverDirection is the direction in which a maneuver is performed,
// relative to the current heading.
type ManeuverDirection string

const (
	DirectionSharpRight    ManeuverDirection = "sharp right"
	DirectionRight         ManeuverDirection = "right"
	DirectionSlightRight   ManeuverDirection = "slight right"
	DirectionStraightAhead ManeuverDirection = "straight"
	DirectionSlightLeft    ManeuverDirection = "slight left"
	DirectionLeft          ManeuverDirection = "left"
	DirectionSharpLeft     ManeuverDirection = "sharp left"
	DirectionUTurn         ManeuverDirection = "uturn"
)

var validManeuverDirections = map[ManeuverDirection]struct{}{
	DirectionSharpRight:    {},
	DirectionRight:         {},
	DirectionSlightRight:   {},
	DirectionStraightAhead: {},
	DirectionSlightLeft:    {},
	DirectionLeft:          {},
	DirectionSharpLeft:     {},
	DirectionUTurn:         {},
}

// ParseManeuverDirection maps a wire string onto a maneuver direction.
// Unrecognized strings report ok=false rather than an error.
func ParseManeuverDirection(s string) (ManeuverDirection, bool) {
	d := ManeuverDirection(s)
	_, ok := validManeuverDirections[d]
	if !ok {
		return "", false
	}
	return d, true
}

// String returns the canonical wire string for the maneuver direction.
func (d ManeuverDirection) String() string {
	return string(d)
}
