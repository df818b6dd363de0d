package backend

import (
	"encoding/json"
	"strings"
)

// APIError is a failure reported by the hosted REST backend. Its fields follow
// the PostgREST error body; Error returns the message text unchanged so the
// gateway can hand it to callers verbatim.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	Hint       string `json:"hint"`
}

func (e *APIError) Error() string {
	return e.Message
}

// decodeAPIError builds an APIError from a non-2xx response. Bodies that are
// not PostgREST errors fall back to the raw body, then to the status line.
func decodeAPIError(statusCode int, status string, body []byte) *APIError {
	apiErr := &APIError{}
	_ = json.Unmarshal(body, apiErr)
	apiErr.StatusCode = statusCode

	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	if apiErr.Message == "" {
		apiErr.Message = status
	}
	return apiErr
}
