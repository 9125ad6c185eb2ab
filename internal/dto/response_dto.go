package dto

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// MessageResponse is the body for simple acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}
