package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"loomworks.app/api-server/common/id"
	"loomworks.app/api-server/common/logger"
	"loomworks.app/api-server/common/otel"
	"loomworks.app/api-server/core/config"
	"loomworks.app/api-server/core/db"
	"loomworks.app/api-server/internal/http/middleware"
	httprouter "loomworks.app/api-server/internal/http/router"
	"loomworks.app/api-server/internal/queue"
	"loomworks.app/api-server/internal/service"
	"loomworks.app/api-server/internal/session"
	"loomworks.app/api-server/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		// Can't use slog yet — OTel failed before logger setup
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "loomworks api starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisOpts, err := redis.ParseURL(cfg.Audit.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Audit.RedisStream)

	auditProducer := queue.NewRedisProducer(redisClient, cfg.Audit.RedisStream, slog.Default())
	defer auditProducer.Close()

	stores := store.NewStores(database.Queries(), cfg.Session)

	sessionCache := session.NewCache(stores.Sessions(), cfg.Session)
	sessionCache.Start(ctx)
	defer sessionCache.Stop()

	sweeper := session.NewSweeper(stores.Sessions(), cfg.Session.StoreSweepInterval)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	services := service.NewServices(
		stores,
		service.NewTxRunner(database, cfg.Session),
		sessionCache,
		cfg.WorkOS,
		auditProducer,
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, sessionCache, stores)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services, cache *session.Cache, stores *store.Stores) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, cache, stores.Sessions(), httprouter.RouterConfig{
		DashboardURL: cfg.DashboardURL,
		IsProduction: cfg.IsProduction(),
	})

	return router
}

const banner = `
██╗      ██████╗  ██████╗ ███╗   ███╗██╗    ██╗ ██████╗ ██████╗ ██╗  ██╗███████╗
██║     ██╔═══██╗██╔═══██╗████╗ ████║██║    ██║██╔═══██╗██╔══██╗██║ ██╔╝██╔════╝
██║     ██║   ██║██║   ██║██╔████╔██║██║ █╗ ██║██║   ██║██████╔╝█████╔╝ ███████╗
██║     ██║   ██║██║   ██║██║╚██╔╝██║██║███╗██║██║   ██║██╔══██╗██╔═██╗ ╚════██║
███████╗╚██████╔╝╚██████╔╝██║ ╚═╝ ██║╚███╔███╔╝╚██████╔╝██║  ██║██║  ██╗███████║
╚══════╝ ╚═════╝  ╚═════╝ ╚═╝     ╚═╝ ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝
`
