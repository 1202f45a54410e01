package dto

import "time"

// ErrorResponse is the JSON error envelope every endpoint returns on
// failure.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid request"`       // Human-readable summary
	ErrorDetails string    `json:"error,omitempty" example:"shop required"` // Underlying error detail, if any
	Timestamp    time.Time `json:"timestamp"`                               // Time the error was produced
}

// Error implements the error interface so handlers can pass the response
// through error-typed plumbing.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse, recording the detail of err
// when one is given.
func NewErrorResponse(message string, err error) ErrorResponse {
	e := ErrorResponse{Message: message, Timestamp: time.Now()}
	if err != nil {
		e.ErrorDetails = err.Error()
	}
	return e
}
