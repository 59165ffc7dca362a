package geometry

import (
	"errors"
	"math"

	"github.com/twpayne/go-polyline"

	"github.com/theoremus-urban-solutions/directions-to-route/route"
)

// DefaultPrecision is the number of decimal places the standard
// encoded-polyline format uses.
const DefaultPrecision uint32 = 5

// DecodePolyline decodes an encoded polyline string into coordinates at the
// given decimal precision.
func DecodePolyline(encoded string, precision uint32) ([]route.Coordinate, error) {
	codec := polyline.Codec{Dim: 2, Scale: math.Pow10(int(precision))}
	pairs, rest, err := codec.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, errors.New("trailing data after polyline")
	}
	coords := make([]route.Coordinate, len(pairs))
	for i, p := range pairs {
		coords[i] = route.Coordinate{Latitude: p[0], Longitude: p[1]}
	}
	return coords, nil
}

// EncodePolyline encodes coordinates into a polyline string at the given
// decimal precision.
func EncodePolyline(coords []route.Coordinate, precision uint32) string {
	codec := polyline.Codec{Dim: 2, Scale: math.Pow10(int(precision))}
	pairs := make([][]float64, len(coords))
	for i, c := range coords {
		pairs[i] = []float64{c.Latitude, c.Longitude}
	}
	return string(codec.EncodeCoords(nil, pairs))
}
