package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"loomworks.app/api-server/common/id"
	"loomworks.app/api-server/common/logger"
	"loomworks.app/api-server/common/otel"
	"loomworks.app/api-server/core/config"
	"loomworks.app/api-server/core/db"
	"loomworks.app/api-server/core/db/sqlc"
	"loomworks.app/api-server/internal/queue"
	"loomworks.app/api-server/internal/store"
	"loomworks.app/api-server/internal/worker"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeWorker)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n", banner)

	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	slog.InfoContext(ctx, "loomworks audit worker starting",
		"env", cfg.Env,
		"consumer_group", cfg.Audit.RedisGroup,
		"consumer_name", cfg.Audit.RedisConsumer)

	// Initialize snowflake ID generator (use different node ID than server)
	if err := id.Init(2); err != nil {
		slog.ErrorContext(ctx, "failed to initialize id generator", "error", err)
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
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Audit.RedisStream)

	consumer, err := queue.NewRedisConsumer(redisClient, queue.ConsumerConfig{
		Stream:       cfg.Audit.RedisStream,
		Group:        cfg.Audit.RedisGroup,
		Consumer:     cfg.Audit.RedisConsumer,
		DLQStream:    cfg.Audit.RedisDLQ,
		BatchSize:    32,
		Block:        5 * time.Second,
		MaxAttempts:  3,
		RequeueDelay: time.Second,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create consumer", "error", err)
		os.Exit(1)
	}

	txRunner := &workerTxRunnerAdapter{db: database, sessionCfg: cfg.Session}

	w := worker.New(consumer, txRunner, worker.Config{
		MaxAttempts: 3,
	})

	reclaimer := worker.NewRedisReclaimer(redisClient, worker.RedisReclaimerConfig{
		Stream:    cfg.Audit.RedisStream,
		Group:     cfg.Audit.RedisGroup,
		Consumer:  cfg.Audit.RedisConsumer + "-reclaimer",
		MinIdle:   5 * time.Minute,
		Interval:  1 * time.Minute,
		BatchSize: 10,
	}, consumer, w.ProcessMessage)

	errCh := make(chan error, 2)
	go func() {
		errCh <- w.Run(ctx)
	}()
	go func() {
		reclaimer.Run(ctx)
		errCh <- nil
	}()

	slog.InfoContext(ctx, "worker initialized and running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down worker...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Stop reclaimer first (quick)
	reclaimer.Stop()

	// Stop worker (may be processing)
	w.Stop()

	select {
	case <-shutdownCtx.Done():
		slog.WarnContext(ctx, "shutdown timeout exceeded")
	case err := <-errCh:
		if err != nil {
			slog.ErrorContext(ctx, "worker error during shutdown", "error", err)
		}
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(ctx, "worker shutdown complete")
}

// workerTxRunnerAdapter bridges db.DB to worker.TxRunner.
type workerTxRunnerAdapter struct {
	db         *db.DB
	sessionCfg config.SessionConfig
}

func (a *workerTxRunnerAdapter) WithTx(ctx context.Context, fn func(stores worker.StoreProvider) error) error {
	return a.db.WithTx(ctx, func(q *sqlc.Queries) error {
		stores := store.NewStores(q, a.sessionCfg)
		return fn(stores)
	})
}

const banner = `
██╗      ██████╗  ██████╗ ███╗   ███╗██╗    ██╗ ██████╗ ██████╗ ██╗  ██╗███████╗
██║     ██╔═══██╗██╔═══██╗████╗ ████║██║    ██║██╔═══██╗██╔══██╗██║ ██╔╝██╔════╝
██║     ██║   ██║██║   ██║██╔████╔██║██║ █╗ ██║██║   ██║██████╔╝█████╔╝ ███████╗
██║     ██║   ██║██║   ██║██║╚██╔╝██║██║███╗██║██║   ██║██╔══██╗██╔═██╗ ╚════██║
███████╗╚██████╔╝╚██████╔╝██║ ╚═╝ ██║╚███╔███╔╝╚██████╔╝██║  ██║██║  ██╗███████║
╚══════╝ ╚═════╝  ╚═════╝ ╚═╝     ╚═╝ ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝
`
