package route

import "fmt"

// DecodeError reports input whose structurally required part is absent or of
// the wrong shape. It is the only error kind the decoding pipeline produces;
// unrecognized vocabulary strings are not errors and decode to no value.
type DecodeError struct {
	Field   string
	Message string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("directions: malformed %s: %s", e.Field, e.Message)
}
