package dto

import "time"

// ErrorResponse is the standard JSON error envelope returned by the API.
//
// Fields:
//   - Message: short human-readable description of the failure.
//   - ErrorDetails: optional underlying error detail (omitted when empty).
//   - Timestamp: server time when the error was produced.
type ErrorResponse struct {
	Message      string    `json:"message" example:"Currency 'BTC' not found"`
	ErrorDetails string    `json:"error,omitempty" example:"sql: no rows in result set"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can be passed
// around as a regular error value.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
// The inner error is optional; when present its text lands in ErrorDetails.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
