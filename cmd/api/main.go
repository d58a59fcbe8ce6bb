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

	"github.com/eventure-app/eventure/backend/internal/auth"
	"github.com/eventure-app/eventure/backend/internal/config"
	"github.com/eventure-app/eventure/backend/internal/handler"
	"github.com/eventure-app/eventure/backend/internal/service/generation"
	journeyservice "github.com/eventure-app/eventure/backend/internal/service/journey"
	messageservice "github.com/eventure-app/eventure/backend/internal/service/message"
	moodservice "github.com/eventure-app/eventure/backend/internal/service/mood"
	"github.com/eventure-app/eventure/backend/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize the document store
	st, err := openStore(cfg.Store)
	if err != nil {
		log.Fatalf("failed to open document store: %v", err)
	}
	if closer, ok := st.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	// Initialize the generation client; the feature endpoints degrade to
	// their fallback output when no provider is configured.
	var gen generation.Generator
	if cfg.AI.Enabled() {
		gen, err = generation.New(ctx, cfg.AI)
		if err != nil {
			log.Fatalf("failed to initialize generation client: %v", err)
		}
		log.Printf("generation client initialized (provider=%s)", providerName(cfg.AI))
	} else {
		log.Println("generation credentials not configured, feature endpoints run on fallbacks")
	}

	journeys := journeyservice.NewService(gen)
	moods := moodservice.NewService(gen)
	messages := messageservice.NewService()
	identity := auth.NewHMACProvider(cfg.Auth.Secret, cfg.Auth.AdminIDs)

	router := handler.NewRouter(journeys, moods, messages, st, identity)

	startServer(ctx, cfg.Server, router)
}

func openStore(cfg config.StoreConfig) (store.Store, error) {
	if cfg.Driver == config.StoreSQLite {
		log.Printf("using sqlite document store at %s", cfg.DSN)
		return store.OpenSQLite(cfg.DSN)
	}
	log.Println("using in-memory document store")
	return store.NewMemoryStore(), nil
}

func providerName(cfg config.AIConfig) string {
	if cfg.Provider == "" {
		return config.ProviderArk
	}
	return cfg.Provider
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Eventure backend listening on %s", addr)
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
