package schema

import (
	"encoding/json"
	"fmt"
)

// Response is a decoded trade/public API document. Field sets vary per method, so it
// stays loosely typed; accessors exist only for the fields operations read.
type Response map[string]interface{}

// Success returns the "success" field normalized to a string ("1", "0").
func (r Response) Success() (string, bool) {
	v, ok := r["success"]
	if !ok || v == nil {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	case float64:
		return fmt.Sprintf("%g", s), true
	case bool:
		if s {
			return "1", true
		}
		return "0", true
	default:
		return fmt.Sprint(s), true
	}
}

// Failed reports whether success is explicitly zero.
func (r Response) Failed() bool {
	s, ok := r.Success()
	return ok && s == "0"
}

// ErrorMessage returns the exchange "error" field, if present.
func (r Response) ErrorMessage() (string, bool) {
	v, ok := r["error"]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// Return returns the "return" payload untouched.
func (r Response) Return() interface{} {
	return r["return"]
}
