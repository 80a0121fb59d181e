package conv

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// String converts value into its string representation.
//
// Fast-path: strings, byte slices, fmt.Stringer implementations, errors,
// booleans and the common numeric kinds are formatted directly.  Everything
// else falls back to a JSON marshal which handles the majority of simple
// struct/map/slice cases deterministically.
//
// A nil input yields the empty string.
func String(value any) string {
	switch actual := value.(type) {
	case nil:
		return ""
	case string:
		return actual
	case []byte:
		return string(actual)
	case fmt.Stringer:
		return actual.String()
	case error:
		return actual.Error()
	case bool:
		return strconv.FormatBool(actual)
	case int:
		return strconv.Itoa(actual)
	case int64:
		return strconv.FormatInt(actual, 10)
	case uint64:
		return strconv.FormatUint(actual, 10)
	case float32:
		return strconv.FormatFloat(float64(actual), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(actual, 'g', -1, 64)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(data)
}

// Pointer returns a pointer to value; a convenience for optional schema
// fields such as tool descriptions.
func Pointer[T any](value T) *T {
	return &value
}
