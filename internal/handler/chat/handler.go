package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/anushka369/Marketing-Mavericks-Agent/internal/model/brand"
	chatModel "github.com/anushka369/Marketing-Mavericks-Agent/internal/model/chat"
	"github.com/anushka369/Marketing-Mavericks-Agent/pkg/utils"
)

const (
	maxMessageLength = 5000
	maxHistoryLength = 50

	// One second inside the 30s response-time contract, leaving headroom
	// for serialization.
	generateTimeout = 29 * time.Second
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Generator produces a completion for a validated chat turn.
type Generator interface {
	Generate(ctx context.Context, userMessage string, history []chatModel.Message, brandCtx *brand.Context) (string, error)
}

// Handler serves the chat endpoint.
type Handler struct {
	generator Generator
	store     brand.Store
	timeout   time.Duration
}

// New creates a chat handler backed by the given generator and brand store.
func New(generator Generator, store brand.Store) *Handler {
	return &Handler{
		generator: generator,
		store:     store,
		timeout:   generateTimeout,
	}
}

// RegisterRoutes registers the chat route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message      json.RawMessage `json:"message"`
		History      json.RawMessage `json:"history"`
		BrandContext *brand.Context  `json:"brandContext"`
		SessionID    string          `json:"sessionId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message, errMsg := validateMessage(payload.Message)
	if errMsg != "" {
		utils.RespondError(w, http.StatusBadRequest, errMsg)
		return
	}

	history, errMsg := validateHistory(payload.History)
	if errMsg != "" {
		utils.RespondError(w, http.StatusBadRequest, errMsg)
		return
	}

	sessionID, effective := h.resolveBrandContext(payload.SessionID, payload.BrandContext)
	h.generateAndRespond(r.Context(), w, message, history, sessionID, effective)
}

// generateAndRespond races generation against the endpoint deadline and
// writes the uniform response envelope.
func (h *Handler) generateAndRespond(ctx context.Context, w http.ResponseWriter, message string, history []chatModel.Message, sessionID string, brandCtx *brand.Context) {
	genCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type genResult struct {
		content string
		err     error
	}
	resultCh := make(chan genResult, 1)
	go func() {
		content, err := h.generator.Generate(genCtx, message, history, brandCtx)
		resultCh <- genResult{content: content, err: err}
	}()

	timer := time.NewTimer(h.timeout)
	defer timer.Stop()

	select {
	case res := <-resultCh:
		if res.err != nil {
			log.Printf("[chat] generation failed: %v", res.err)
			utils.RespondError(w, http.StatusInternalServerError, "Failed to generate response: "+res.err.Error())
			return
		}
		utils.RespondJSON(w, http.StatusOK, chatModel.Response{
			Response:  res.content,
			Success:   true,
			SessionID: sessionID,
		})
	case <-timer.C:
		cancel()
		log.Printf("[chat] generation exceeded %s deadline", h.timeout)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to generate response: generation timed out")
	}
}

// resolveBrandContext applies the four mutually exclusive resolution cases.
// An all-empty context counts as absent; clearing a stored context goes
// through the session API instead. Returns the session id to echo
// (possibly freshly synthesized) and the effective context.
func (h *Handler) resolveBrandContext(sessionID string, provided *brand.Context) (string, *brand.Context) {
	sessionID = strings.TrimSpace(sessionID)
	hasContext := provided != nil && !provided.IsZero()

	switch {
	case hasContext && sessionID != "":
		h.store.Set(sessionID, *provided)
		return sessionID, provided
	case !hasContext && sessionID != "":
		if stored, ok := h.store.Get(sessionID); ok {
			return sessionID, &stored
		}
		return sessionID, nil
	case hasContext:
		sessionID = newSessionID()
		h.store.Set(sessionID, *provided)
		log.Printf("[chat] created session %s", sessionID)
		return sessionID, provided
	default:
		return "", nil
	}
}

// validateMessage checks the message field and returns its sanitized form.
// The second return value is the 400-level error text, empty when valid.
func validateMessage(raw json.RawMessage) (string, string) {
	if raw == nil {
		return "", "message is required and must be a string"
	}
	var message string
	if err := json.Unmarshal(raw, &message); err != nil {
		return "", "message is required and must be a string"
	}

	sanitized := sanitizeMessage(message)
	if sanitized == "" {
		return "", "message cannot be empty"
	}
	if utf8.RuneCountInString(sanitized) > maxMessageLength {
		return "", fmt.Sprintf("message exceeds maximum length of %d characters", maxMessageLength)
	}
	return sanitized, ""
}

// sanitizeMessage strips embedded NULs, collapses whitespace runs to single
// spaces, and trims. Idempotent.
func sanitizeMessage(message string) string {
	cleaned := strings.ReplaceAll(message, "\x00", " ")
	cleaned = whitespaceRuns.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

func validateHistory(raw json.RawMessage) ([]chatModel.Message, string) {
	if raw == nil {
		return nil, ""
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, "history must be an array"
	}
	if len(entries) > maxHistoryLength {
		return nil, fmt.Sprintf("history exceeds maximum length of %d entries", maxHistoryLength)
	}

	history := make([]chatModel.Message, 0, len(entries))
	for _, rawEntry := range entries {
		var entry struct {
			ID        string          `json:"id"`
			Role      string          `json:"role"`
			Content   json.RawMessage `json:"content"`
			Timestamp int64           `json:"timestamp"`
		}
		if err := json.Unmarshal(rawEntry, &entry); err != nil || entry.Role == "" {
			return nil, "history entries must have a role and string content"
		}
		// An absent field decodes to nil, an explicit null to "null";
		// both lack the required string content.
		if entry.Content == nil || string(entry.Content) == "null" {
			return nil, "history entries must have a role and string content"
		}
		var content string
		if err := json.Unmarshal(entry.Content, &content); err != nil {
			return nil, "history entries must have a role and string content"
		}
		history = append(history, chatModel.Message{
			ID:        entry.ID,
			Role:      entry.Role,
			Content:   content,
			Timestamp: entry.Timestamp,
		})
	}
	return history, ""
}

func newSessionID() string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), suffix)
}
