// Package route defines the canonical, version-agnostic route model.
//
// The upstream directions API has shipped two JSON schema generations with
// different field names and controlled vocabularies. Regardless of which
// generation produced a response, decoding yields the types in this package:
//
//   - RouteStep: one maneuver plus the road segment leading to the next
//     maneuver, with normalized names, reference codes and geometry
//   - TransportType, ManeuverType, ManeuverDirection: the closed wire
//     vocabularies, with a total variant-to-string mapping and a partial
//     string-to-variant mapping (unrecognized strings parse to no value,
//     never an error)
//   - Intersection and Lane: side-road layout along a step
//
// All types are plain data. A RouteStep is built once by the decoder (or
// restored once by the persist package) and never mutated afterwards.
package route
