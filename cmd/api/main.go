package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/anushka369/Marketing-Mavericks-Agent/internal/config"
	"github.com/anushka369/Marketing-Mavericks-Agent/internal/handler"
	"github.com/anushka369/Marketing-Mavericks-Agent/internal/model/brand"
	"github.com/anushka369/Marketing-Mavericks-Agent/internal/service/generate"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// The brand store is an explicit instance injected into the router,
	// never a package-level singleton.
	store := brand.NewMemoryStore()

	var generator *generate.Service
	if cfg.AI.Enabled() {
		chatModel, err := cfg.AI.NewChatModel(ctx)
		if err != nil {
			log.Printf("warning: failed to initialize chat model: %v", err)
			log.Println("continuing without content generation")
		} else {
			genCfg := generate.Config{MaxRetries: cfg.AI.MaxRetries}
			if cfg.AI.Temperature != nil {
				genCfg.Temperature = float32(*cfg.AI.Temperature)
			}
			if cfg.AI.MaxTokens != nil {
				genCfg.MaxTokens = *cfg.AI.MaxTokens
			}
			generator = generate.NewService(chatModel, genCfg)
			log.Println("content generation service initialized")
		}
	} else {
		log.Println("OPENAI_API_KEY not configured, content generation disabled")
	}

	router := handler.NewRouter(store, generator, handler.Options{
		Production: cfg.Server.Production,
		StaticDir:  cfg.Server.StaticDir,
	})

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Marketing Mavericks agent listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
