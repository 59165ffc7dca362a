// Package persist round-trips route steps through a neutral key-value
// record. A key is present in the record exactly when the field is present
// on the step, so an empty coordinate list and no coordinates at all stay
// distinguishable. Records hold only JSON-basic values (strings, float64,
// bools, []any, map[string]any) and convert losslessly to protobuf Structs.
package persist
