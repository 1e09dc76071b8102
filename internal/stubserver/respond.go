package stubserver

// ErrorResponse is the failure payload shape the client parses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the acknowledgment payload for operations that have no
// entity to return.
type MessageResponse struct {
	Message string `json:"message"`
}
