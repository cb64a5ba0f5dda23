package models

// GenerationConfig carries the fixed sampling parameters attached to
// every upstream request.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// GenerateRequest is the body POSTed to the Gemini generateContent endpoint.
type GenerateRequest struct {
	Contents         []Turn           `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// CandidateContent holds the parts of a generated candidate.
type CandidateContent struct {
	Parts []Part `json:"parts"`
}

// Candidate is one completion returned by Gemini.
type Candidate struct {
	Content      CandidateContent `json:"content"`
	FinishReason string           `json:"finishReason"`
}

// GenerateResponse is the body returned by the Gemini generateContent endpoint.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}
