package chat

// Response is the uniform envelope returned by the chat endpoint.
// Success carries Response and optionally a generated SessionID;
// failure carries Error.
type Response struct {
	Response  string `json:"response,omitempty"`
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId,omitempty"`
	Error     string `json:"error,omitempty"`
}
