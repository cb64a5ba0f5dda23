package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"caffeine-server/internal/models"
)

const requestTimeout = 20 * time.Second

// TransportError wraps a network-level failure (timeout, refused connection)
// reaching the Gemini API.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to reach Gemini API: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is a non-2xx HTTP response from the Gemini API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Gemini API error %d", e.Code)
}

// EmptyReplyError is a 2xx response that carried no usable reply text.
type EmptyReplyError struct {
	FinishReason string
}

func (e *EmptyReplyError) Error() string {
	return fmt.Sprintf("no reply from Gemini (finishReason=%s)", e.FinishReason)
}

// GeminiClient calls the generative-language REST API directly. The key is
// passed as a query parameter per the API's key-auth scheme.
type GeminiClient struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

func NewGeminiClient(baseURL, model, apiKey string) *GeminiClient {
	return &GeminiClient{
		baseURL: baseURL,
		model:   model,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Configured reports whether an API key is present. Without one the caller
// should answer from the fallback table instead.
func (c *GeminiClient) Configured() bool {
	return c.apiKey != ""
}

// Generate sends the assembled conversation to Gemini and extracts the reply
// text from the first candidate. One attempt, no retries.
func (c *GeminiClient) Generate(ctx context.Context, contents []models.Turn) (string, error) {
	payload := models.GenerateRequest{
		Contents: contents,
		GenerationConfig: models.GenerationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 512,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &TransportError{Err: err}
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Gemini network error: %v", err)
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Gemini network error: %v", err)
		return "", &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Gemini HTTP error %d: %s", resp.StatusCode, truncate(string(raw), 300))
		return "", &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	var data models.GenerateResponse
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Printf("Gemini returned unparseable body: %s", truncate(string(raw), 300))
		return "", &TransportError{Err: err}
	}

	if len(data.Candidates) == 0 || len(data.Candidates[0].Content.Parts) == 0 {
		finish := "UNKNOWN"
		if len(data.Candidates) > 0 && data.Candidates[0].FinishReason != "" {
			finish = data.Candidates[0].FinishReason
		}
		log.Printf("WARNING: Gemini returned no text, finishReason=%s", finish)
		return "", &EmptyReplyError{FinishReason: finish}
	}

	return data.Candidates[0].Content.Parts[0].Text, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
