package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"caffeine-server/internal/models"
	"caffeine-server/internal/services"
)

// Most recent history entries forwarded upstream; older turns are dropped.
const maxHistoryTurns = 10

// Fixed acknowledgment used to simulate a system prompt, since the Gemini
// conversation format has no dedicated system role.
const primingAck = "Understood! I'm ready to assist as the Caffeine Machine AI barista. ☕"

type ChatHandler struct {
	gemini *services.GeminiClient
}

func NewChatHandler(gemini *services.GeminiClient) *ChatHandler {
	return &ChatHandler{gemini: gemini}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	defer r.Body.Close()

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", "")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeError(w, http.StatusBadRequest, `Missing "message" field`, "")
		return
	}

	// Degraded mode: no API key means canned replies, never the network.
	if !h.gemini.Configured() {
		log.Println("WARNING: GEMINI_API_KEY not set, returning fallback response")
		writeJSON(w, http.StatusOK, models.ChatResponse{Reply: services.FallbackReply(message)})
		return
	}

	contents := buildContents(message, req.SystemPrompt, req.History)

	reply, err := h.gemini.Generate(r.Context(), contents)
	if err != nil {
		h.writeUpstreamError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}

// buildContents assembles the upstream conversation: an optional priming
// exchange, the last well-formed history turns in order, then the message.
func buildContents(message, systemPrompt string, history []models.Turn) []models.Turn {
	var contents []models.Turn

	if systemPrompt != "" {
		contents = append(contents,
			models.Turn{Role: "user", Parts: []models.Part{{Text: systemPrompt}}},
			models.Turn{Role: "model", Parts: []models.Part{{Text: primingAck}}},
		)
	}

	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	for _, turn := range history {
		if turn.Valid() {
			contents = append(contents, turn)
		}
	}

	contents = append(contents, models.Turn{Role: "user", Parts: []models.Part{{Text: message}}})
	return contents
}

func (h *ChatHandler) writeUpstreamError(w http.ResponseWriter, err error) {
	var statusErr *services.StatusError
	var emptyErr *services.EmptyReplyError
	var transportErr *services.TransportError

	switch {
	case errors.As(err, &statusErr):
		writeError(w, http.StatusBadGateway,
			fmt.Sprintf("Gemini API error %d", statusErr.Code), statusErr.Body)
	case errors.As(err, &emptyErr):
		writeError(w, http.StatusBadGateway,
			fmt.Sprintf("No reply from Gemini (finishReason=%s)", emptyErr.FinishReason), "")
	case errors.As(err, &transportErr):
		writeError(w, http.StatusBadGateway,
			"Failed to reach Gemini API", transportErr.Err.Error())
	default:
		writeError(w, http.StatusBadGateway, "Failed to reach Gemini API", err.Error())
	}
}
