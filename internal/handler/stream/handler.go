package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"

	"github.com/anushka369/Marketing-Mavericks-Agent/internal/model/brand"
	chatModel "github.com/anushka369/Marketing-Mavericks-Agent/internal/model/chat"
	"github.com/anushka369/Marketing-Mavericks-Agent/pkg/utils"
)

// Streamer produces a streaming completion for a chat turn.
type Streamer interface {
	Stream(ctx context.Context, userMessage string, history []chatModel.Message, brandCtx *brand.Context) (*schema.StreamReader[*schema.Message], error)
}

// Handler streams completions over Server-Sent Events. Streaming is
// single-attempt: the retry policy only applies to the buffered chat
// endpoint, because chunks already flushed cannot be retried.
type Handler struct {
	streamer Streamer
	store    brand.Store
}

// New creates a stream handler.
func New(streamer Streamer, store brand.Store) *Handler {
	return &Handler{streamer: streamer, store: store}
}

// Chunk is one SSE frame on the stream.
type Chunk struct {
	Event     string `json:"event"`
	Content   string `json:"content,omitempty"`
	MessageID string `json:"messageId,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
	Finished  bool   `json:"finished,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HandleStream streams the completion for userMessage. Brand context is
// resolved from the store by session id when one is supplied.
func (h *Handler) HandleStream(ctx context.Context, w http.ResponseWriter, sessionID, userMessage string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	var brandCtx *brand.Context
	if sessionID != "" {
		if stored, found := h.store.Get(sessionID); found {
			brandCtx = &stored
		}
	}

	utils.SendSSEChunk(w, flusher, Chunk{Event: "start"})

	reader, err := h.streamer.Stream(ctx, userMessage, nil, brandCtx)
	if err != nil {
		utils.SendSSEChunk(w, flusher, Chunk{Event: "error", Error: err.Error()})
		return err
	}
	defer reader.Close()

	for {
		msg, err := reader.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			utils.SendSSEChunk(w, flusher, Chunk{Event: "error", Error: "stream interrupted"})
			return err
		}
		if msg.Content != "" {
			utils.SendSSEChunk(w, flusher, Chunk{Event: "message", Content: msg.Content})
		}
	}

	utils.SendSSEChunk(w, flusher, Chunk{
		Event:     "end",
		MessageID: uuid.NewString(),
		Timestamp: time.Now().UnixMilli(),
		Finished:  true,
	})

	log.Printf("[stream] completed response for session=%s", sessionID)
	return nil
}
