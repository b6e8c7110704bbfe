package dto

import "encoding/json"

// Ack is the {success, ...} body of mutation endpoints. Raw keeps the body
// exactly as received.
type Ack struct {
	Success bool            `json:"success"`
	Deleted bool            `json:"deleted,omitempty"`
	Message string          `json:"message,omitempty"`
	Raw     json.RawMessage `json:"-"`
}

// ErrorResponse is the failure body every backend route uses.
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
	Success *bool  `json:"success,omitempty"`
}
