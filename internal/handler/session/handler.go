package session

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anushka369/Marketing-Mavericks-Agent/internal/model/brand"
	"github.com/anushka369/Marketing-Mavericks-Agent/pkg/utils"
)

// Handler exposes the brand-context session records over REST. Deleting a
// record is how callers clear previously stored context for a session.
type Handler struct {
	store brand.Store
}

// New creates a session handler over the given store.
func New(store brand.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes registers the session routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/session/{sessionID}", h.handleGet)
	r.Put("/session/{sessionID}", h.handleReplace)
	r.Patch("/session/{sessionID}", h.handleMerge)
	r.Delete("/session/{sessionID}", h.handleDelete)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	ctx, ok := h.store.Get(sessionID)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"sessionId":    sessionID,
		"brandContext": ctx,
	})
}

func (h *Handler) handleReplace(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var ctx brand.Context
	if err := json.NewDecoder(r.Body).Decode(&ctx); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.store.Set(sessionID, ctx)
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"sessionId":    sessionID,
		"brandContext": ctx,
	})
}

func (h *Handler) handleMerge(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var partial brand.Context
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	merged := h.store.Update(sessionID, partial)
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"sessionId":    sessionID,
		"brandContext": merged,
	})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if !h.store.Delete(sessionID) {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"sessionId": sessionID,
	})
}
