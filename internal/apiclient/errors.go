package apiclient

import (
	"encoding/json"
	"fmt"
	"strconv"
)

const genericMessage = "An error occurred"

// RemoteError is any non-2xx answer from the remote service. Error returns
// the resolved message alone, which is what users see.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

// Describe includes the status, for logs.
func (e *RemoteError) Describe() string {
	return fmt.Sprintf("remote %d: %s", e.Status, e.Message)
}

// resolveMessage picks the JSON "message" field, then the raw body, then a
// generic fallback. A body that parses as JSON but carries no usable message
// gets the fallback, not the raw text. Scalar messages are shown as text
// unless they are empty, zero or false.
func resolveMessage(body []byte) string {
	var v any
	if err := json.Unmarshal(body, &v); err == nil && v != nil {
		if m, ok := v.(map[string]any); ok {
			if s, ok := scalarText(m["message"]); ok {
				return s
			}
		}
		return genericMessage
	}
	if len(body) > 0 {
		return string(body)
	}
	return genericMessage
}

func scalarText(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, x != ""
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), x != 0
	case bool:
		return "true", x
	}
	return "", false
}
