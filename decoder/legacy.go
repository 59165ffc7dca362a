package decoder

// legacyManeuverTypes maps legacy-generation maneuver strings onto the
// current vocabulary. Strings not listed pass through unchanged.
var legacyManeuverTypes = map[string]string{
	"bear right":       "turn",
	"turn right":       "turn",
	"sharp right":      "turn",
	"sharp left":       "turn",
	"turn left":        "turn",
	"bear left":        "turn",
	"u-turn":           "turn",
	"enter roundabout": "roundabout",
}

// legacyManeuverDirections derives the current-generation modifier from the
// same legacy type string. Strings not listed pass through unchanged.
var legacyManeuverDirections = map[string]string{
	"bear right": "slight right",
	"bear left":  "slight left",
	"turn right": "right",
	"turn left":  "left",
	"u-turn":     "uturn",
}

func legacyManeuverType(s string) string {
	if t, ok := legacyManeuverTypes[s]; ok {
		return t
	}
	return s
}

func legacyManeuverDirection(s string) string {
	if d, ok := legacyManeuverDirections[s]; ok {
		return d
	}
	return s
}
