package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Masc20/CSO-Clearance-Payment-List/config"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/api/handler"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/api/middleware"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/api/router"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/intake"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/repository"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/service"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/web"
	"github.com/Masc20/CSO-Clearance-Payment-List/pkg/database"
	"github.com/Masc20/CSO-Clearance-Payment-List/pkg/kv"
	applogger "github.com/Masc20/CSO-Clearance-Payment-List/pkg/logger"
	"github.com/Masc20/CSO-Clearance-Payment-List/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to a config file")
	flag.Parse()

	// 1. config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. redis, required by the redis driver and optional for rate limiting
	var rdb *redis.Client
	if cfg.Storage.Driver == config.DriverRedis || cfg.Intake.RateLimit > 0 {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			if cfg.Storage.Driver == config.DriverRedis {
				logger.Fatal("connect redis failed", zap.Error(err))
			}
			logger.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
			rdb = nil
		}
	}

	// 4. storage
	store, closeStore, err := openStore(cfg, rdb, logger)
	if err != nil {
		logger.Fatal("open storage failed", zap.Error(err))
	}

	// 5. repository → service → handler
	repo := repository.NewRepository(store)
	svc := service.NewService(repo, logger)
	sessions := intake.NewSessions(func() *intake.Wizard {
		return intake.NewWizard(svc.Submission, svc.Settings, cfg.Intake.NoticeTTL)
	}, cfg.Intake.SessionTTL, cfg.Intake.MaxSessions)
	h := handler.NewHandler(svc, sessions, handler.Options{
		SessionTTL: cfg.Intake.SessionTTL,
		NoticeTTL:  cfg.Intake.NoticeTTL,
	}, logger)

	// 6. router
	tmpl, err := web.Templates()
	if err != nil {
		logger.Fatal("load templates failed", zap.Error(err))
	}
	var limiter middleware.RateLimiter
	if rdb != nil {
		limiter = rdb
	}
	engine := router.Setup(cfg, h, tmpl, limiter, logger)

	// 7. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server started", zap.String("addr", srv.Addr), zap.String("base_url", cfg.Server.BaseURL))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	if err := closeStore.Close(); err != nil {
		logger.Error("close storage failed", zap.Error(err))
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var noopCloser = closerFunc(func() error { return nil })

// openStore builds the kv backend selected by storage.driver. The returned
// closer releases what the backend owns; the redis client is closed by main.
func openStore(cfg *config.Config, rdb *redis.Client, logger *zap.Logger) (kv.Store, io.Closer, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("get sql.DB: %w", err)
		}
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			sqlDB.Close()
			return nil, nil, err
		}
		logger.Info("using postgres storage")
		return kv.NewGormStore(db), sqlDB, nil

	case config.DriverRedis:
		logger.Info("using redis storage", zap.String("key_prefix", cfg.Storage.KeyPrefix))
		return kv.NewRedisStore(rdb.Cmdable(), cfg.Storage.KeyPrefix), noopCloser, nil

	default:
		logger.Warn("using in-memory storage, data is lost on restart")
		return kv.NewMemoryStore(), noopCloser, nil
	}
}
