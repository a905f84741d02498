package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	buyerapp "github.com/muhammadheryan/buyer-leads/application/buyer"
	userapp "github.com/muhammadheryan/buyer-leads/application/user"
	"github.com/muhammadheryan/buyer-leads/cmd/config"
	redisclient "github.com/muhammadheryan/buyer-leads/cmd/redis"
	_ "github.com/muhammadheryan/buyer-leads/docs"
	buyerRepo "github.com/muhammadheryan/buyer-leads/repository/buyer"
	historyRepo "github.com/muhammadheryan/buyer-leads/repository/history"
	redisRepo "github.com/muhammadheryan/buyer-leads/repository/redis"
	txRepo "github.com/muhammadheryan/buyer-leads/repository/tx"
	userRepo "github.com/muhammadheryan/buyer-leads/repository/user"
	"github.com/muhammadheryan/buyer-leads/thirdparty/rabbitmq"
	"github.com/muhammadheryan/buyer-leads/transport"
	"github.com/muhammadheryan/buyer-leads/utils/logger"
	"github.com/muhammadheryan/buyer-leads/utils/metrics"
	validatorx "github.com/muhammadheryan/buyer-leads/utils/validator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// @title BUYER LEADS API
// @version 1.0
// @description Buyer lead CRM API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))
	validatorx.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	rdb, err := redisclient.New(ctx, cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Buyer events are best-effort; the API runs without a broker.
	var publisher buyerapp.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Warn("rabbitmq unavailable, buyer events disabled", zap.Error(err))
		} else {
			publisher = p
			defer p.Close()
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	BuyerRepo := buyerRepo.NewBuyerRepository(db)
	HistoryRepo := historyRepo.NewHistoryRepository(db)
	RedisRepo := redisRepo.NewRepository(rdb)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	BuyerApp := buyerapp.NewBuyerApp(cfg, TxRepo, BuyerRepo, HistoryRepo, RedisRepo, publisher, m)

	httpTransport := transport.NewTransport(cfg, UserApp, BuyerApp, transport.Dependencies{
		RedisRepo: RedisRepo,
		Metrics:   m,
		Gatherer:  reg,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("failed server", zap.Error(err))
	}
	logger.Info("HTTP server stopped")
}
