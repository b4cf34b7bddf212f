package handler

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/anushka369/Marketing-Mavericks-Agent/internal/handler/chat"
	sessionHandler "github.com/anushka369/Marketing-Mavericks-Agent/internal/handler/session"
	streamHandler "github.com/anushka369/Marketing-Mavericks-Agent/internal/handler/stream"
	"github.com/anushka369/Marketing-Mavericks-Agent/internal/middleware"
	"github.com/anushka369/Marketing-Mavericks-Agent/internal/model/brand"
	"github.com/anushka369/Marketing-Mavericks-Agent/internal/service/generate"
	"github.com/anushka369/Marketing-Mavericks-Agent/pkg/utils"
)

const serviceName = "marketing-mavericks-agent"

// The server-level deadline: one second beyond the chat handler's own race
// so the handler normally answers first.
const responseTimeout = 30 * time.Second

// Options configures routing behavior beyond the core services.
type Options struct {
	// Production enables static SPA serving for non-API paths.
	Production bool
	// StaticDir is the SPA bundle directory served in production.
	StaticDir string
}

// NewRouter wires HTTP routes to core services. A nil generator disables
// the generation endpoints but keeps health and session management up.
func NewRouter(store brand.Store, generator *generate.Service, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", handleHealth)

		// Buffered endpoints run under the independent response deadline.
		api.Group(func(g chi.Router) {
			g.Use(middleware.ResponseTimeout(responseTimeout))

			sessionHandler.New(store).RegisterRoutes(g)

			if generator != nil {
				chatHandler.New(generator, store).RegisterRoutes(g)
			} else {
				g.Post("/chat", handleGenerationUnavailable)
			}
		})

		// SSE stays outside the deadline middleware: long-lived streams
		// must not be buffered or cut at 30s.
		if generator != nil {
			sse := streamHandler.New(generator, store)
			api.Get("/chat/stream", func(w http.ResponseWriter, r *http.Request) {
				userMessage := r.URL.Query().Get("message")
				if userMessage == "" {
					utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
					return
				}
				sessionID := r.URL.Query().Get("sessionId")

				if err := sse.HandleStream(r.Context(), w, sessionID, userMessage); err != nil {
					log.Printf("[stream] error handling request: %v", err)
				}
			})
		} else {
			api.Get("/chat/stream", handleGenerationUnavailable)
		}
	})

	if opts.Production && opts.StaticDir != "" {
		registerStatic(r, opts.StaticDir)
	}

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	})
}

func handleGenerationUnavailable(w http.ResponseWriter, _ *http.Request) {
	utils.RespondError(w, http.StatusServiceUnavailable, "content generation unavailable")
}

// registerStatic serves the SPA bundle for every non-API path, falling back
// to index.html for client-side routes.
func registerStatic(r chi.Router, dir string) {
	fileServer := http.FileServer(http.Dir(dir))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+req.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, req)
			return
		}
		http.ServeFile(w, req, filepath.Join(dir, "index.html"))
	})
}
