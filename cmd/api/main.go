package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberpro/internal/backup"
	"github.com/BruksfildServices01/barberpro/internal/billing"
	"github.com/BruksfildServices01/barberpro/internal/blob"
	"github.com/BruksfildServices01/barberpro/internal/config"
	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	infraRepo "github.com/BruksfildServices01/barberpro/internal/infra/repository"
	"github.com/BruksfildServices01/barberpro/internal/logger"
	"github.com/BruksfildServices01/barberpro/internal/metrics"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/routes"
	"github.com/BruksfildServices01/barberpro/internal/session"
	"github.com/BruksfildServices01/barberpro/internal/store"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
	ucTenant "github.com/BruksfildServices01/barberpro/internal/usecase/tenant"
	"github.com/BruksfildServices01/barberpro/internal/validators"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	policy, err := domain.ParsePolicy(cfg.TransitionPolicy)
	if err != nil {
		zl.Fatal("invalid transition policy", zap.String("policy", cfg.TransitionPolicy))
	}

	clock := timezone.NewClock(cfg.Timezone)

	// ======================================================
	// STORAGE
	// ======================================================
	blobs, err := blob.Open(cfg.Blob)
	if err != nil {
		zl.Fatal("failed to open blob store", zap.Error(err))
	}

	backend, err := store.Open(ctx, cfg.Store, timezone.Today(clock))
	if err != nil {
		zl.Fatal("failed to open store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer backend.Close()

	var dispatcher *backup.Dispatcher
	if cfg.Backup.Enabled {
		dispatcher = backup.NewDispatcher(backup.NewUploader(backend, blobs, cfg.Backup.Prefix), zl)
		defer dispatcher.Close()
	}

	repo := infraRepo.NewSections(store.Observe(backend, func(section models.Section, tenantID string) {
		metrics.ObserveStoreWrite(string(section))
		if dispatcher != nil {
			dispatcher.OnWrite(section, tenantID)
		}
	}))

	// ======================================================
	// SESSIONS
	// ======================================================
	var sessions session.Store
	switch cfg.Session.Driver {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.Session.RedisAddr,
			DB:   cfg.Session.RedisDB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			zl.Fatal("failed to connect to redis", zap.String("addr", cfg.Session.RedisAddr), zap.Error(err))
		}
		sessions = session.NewRedisStore(rdb)
	default:
		sessions = session.NewMemoryStore()
	}

	// ======================================================
	// BILLING
	// ======================================================
	var provider billing.Provider
	if cfg.Billing.MercadoPagoToken != "" {
		mp, err := billing.NewMercadoPago(cfg.Billing.MercadoPagoToken, cfg.Billing.SuccessURL)
		if err != nil {
			zl.Fatal("failed to configure mercado pago", zap.Error(err))
		}
		provider = mp
	}

	var checkDomain ucTenant.DomainChecker
	if cfg.CheckEmailDomain {
		checkDomain = validators.IsEmailDomainValid
	}

	// ======================================================
	// HTTP
	// ======================================================
	if err := validators.RegisterBindings(); err != nil {
		zl.Fatal("failed to register validators", zap.Error(err))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(logger.GinMiddleware(zl), logger.Recovery(zl))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	routes.RegisterRoutes(r, routes.Deps{
		Repo:             repo,
		Sessions:         sessions,
		Tokens:           session.NewTokenIssuer(cfg.JWTSecret),
		Blobs:            blobs,
		Billing:          provider,
		Clock:            clock,
		Policy:           policy,
		SessionTTL:       cfg.Session.TTL,
		CheckEmailDomain: checkDomain,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("store", cfg.Store.Driver),
			zap.String("sessions", cfg.Session.Driver),
			zap.String("policy", string(policy)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}
