package dto

import "time"

// Severity levels for error responses
const (
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// APIResponse is the envelope of every endpoint response
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// ErrorDetail describes a failed request
type ErrorDetail struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// NewSuccessResponse wraps a payload in the response envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// NewErrorResponse wraps an error in the response envelope
func NewErrorResponse(code, message, severity string) APIResponse {
	return APIResponse{
		Error: &ErrorDetail{
			Code:     code,
			Message:  message,
			Severity: severity,
		},
		Timestamp: time.Now().UTC(),
	}
}
