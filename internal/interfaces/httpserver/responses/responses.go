// Package responses contains HTTP response DTOs for the site agent API.
// Flow specific response types live in the agent and conversation subpackages.
package responses

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error *ErrorDetail `json:"error"`
}

// ErrorDetail contains error details.
type ErrorDetail struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// StatusResponse is returned by the health endpoints.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
