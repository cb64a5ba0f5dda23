package models

// Part is a single text fragment within a conversation turn.
type Part struct {
	Text string `json:"text"`
}

// Turn represents a single message in a conversation, in the wire shape
// the Gemini API expects ("user" or "model" role plus text parts).
type Turn struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts,omitempty"`
}

// Valid reports whether a history turn is well-formed enough to forward
// upstream. Malformed turns are dropped, not rejected.
func (t Turn) Valid() bool {
	return t.Role != "" && len(t.Parts) > 0
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message      string `json:"message"`
	History      []Turn `json:"history"`
	SystemPrompt string `json:"systemPrompt"`
}

// ChatResponse is the reply from the AI chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse is the uniform error envelope for all JSON error paths.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
