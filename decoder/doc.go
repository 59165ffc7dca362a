// Package decoder turns directions API responses into the canonical route
// model.
//
// Two schema generations exist upstream. The current generation carries a
// maneuver object with separate type and modifier strings and a step name
// with the route reference code in a separate ref field; the legacy
// generation carries one combined type string and embeds the reference code
// in a trailing parenthetical of the way name. Both generations decode to
// the same route.RouteStep.
//
// # Usage
//
//	d := decoder.New(decoder.Options{})
//
//	// Current generation
//	resp, err := d.Response(body)
//	step, err := d.Step(stepJSON)
//
//	// Legacy generation
//	step, err := d.LegacyStep(stepJSON)
//
// The two generations are explicit entry points sharing one assembly tail;
// nothing re-detects the generation from the shape of the input.
//
// # Errors
//
// Only structurally required fields produce a hard error: the maneuver
// object, the maneuver type string, the maneuver location, and the step
// name (current) or way name (legacy). Every failure is a
// *route.DecodeError and no partially built step escapes. Everything else
// defaults permissively; in particular an unrecognized vocabulary string
// leaves the corresponding field absent.
//
// All decoding is pure and synchronous. Steps of a route are independent,
// so callers may decode them in parallel without coordination.
package decoder
