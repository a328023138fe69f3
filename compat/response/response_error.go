package response

// ErrorResponse is the JSON error payload returned by the preview server.
// Error carries validation detail when present; Message is human-readable.
type ErrorResponse struct {
	Success *bool   `json:"success"`
	Message *string `json:"message,omitempty"`
	Error   *string `json:"error,omitempty"`
}
