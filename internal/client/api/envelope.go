package api

import (
	"encoding/json"
	"fmt"
)

// genericFailure is shown when the backend gave no usable message.
const genericFailure = "request failed"

// envelope is the backend's uniform response wrapper:
//
//	{"status":"success","data":{...}}
//	{"status":"error","message":"..."}
//
// Paginated endpoints additionally carry a results count.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Results int             `json:"results,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Error is a non-2xx backend response that is neither an auth nor a
// not-found condition.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}
