package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/andrelopes/siga-cadastro/backend/internal/cep"
	"github.com/andrelopes/siga-cadastro/backend/internal/config"
	"github.com/andrelopes/siga-cadastro/backend/internal/logging"
	"github.com/andrelopes/siga-cadastro/backend/internal/store"
	"github.com/andrelopes/siga-cadastro/backend/internal/usuarios"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	// ── PostgreSQL ────────────────────────────────────────────
	pgPool, err := pgxpool.New(ctx, cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("postgres connect: %v", err)
	}
	defer pgPool.Close()
	pgStore := store.NewPostgresStore(pgPool)
	if err := pgStore.Migrate(ctx); err != nil {
		log.Fatalf("postgres migrate: %v", err)
	}

	// ── Redis (optional, caches CEP lookups) ─────────────────
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.Warn("redis indisponível, cache de CEP desativado", "error", err)
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}

	// ── ViaCEP client ────────────────────────────────────────
	viaCEP := cep.NewClient(cfg.ViaCEPURL, logger)
	if rdb != nil {
		viaCEP = viaCEP.WithCache(rdb, 24*time.Hour)
	}

	// ── Handlers ─────────────────────────────────────────────
	usuarioHandler := usuarios.NewHandler(pgStore, logger)
	cepHandler := cep.NewHandler(viaCEP)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/api/usuarios", usuarioHandler.Listar)
	r.Post("/api/cadastrarUsuario", usuarioHandler.Cadastrar)
	r.Get("/api/cep/{cep}", cepHandler.Consultar)

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("servidor de back-end rodando", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("encerrando servidor")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
