package geometry

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/directions-to-route/route"
)

// ParseCoordinatePair reads a coordinate from the wire forms a directions
// response uses: a [longitude, latitude] numeric array, or an object keyed by
// longitude/latitude under long or short key names.
func ParseCoordinatePair(v any) (route.Coordinate, bool) {
	switch val := v.(type) {
	case []any:
		if len(val) < 2 {
			return route.Coordinate{}, false
		}
		lon, okLon := asFloat(val[0])
		lat, okLat := asFloat(val[1])
		if !okLon || !okLat {
			return route.Coordinate{}, false
		}
		return route.Coordinate{Latitude: lat, Longitude: lon}, true
	case []float64:
		if len(val) < 2 {
			return route.Coordinate{}, false
		}
		return route.Coordinate{Latitude: val[1], Longitude: val[0]}, true
	case map[string]any:
		lon, okLon := lookupFloat(val, "longitude", "lon", "lng")
		lat, okLat := lookupFloat(val, "latitude", "lat")
		if !okLon || !okLat {
			return route.Coordinate{}, false
		}
		return route.Coordinate{Latitude: lat, Longitude: lon}, true
	}
	return route.Coordinate{}, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func lookupFloat(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return asFloat(v)
		}
	}
	return 0, false
}
