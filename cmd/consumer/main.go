package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/buyer-leads/cmd/config"
	"github.com/muhammadheryan/buyer-leads/thirdparty/rabbitmq"
	"github.com/muhammadheryan/buyer-leads/utils/logger"
	"go.uber.org/zap"
)

// The consumer process listens for buyer events and asks the API to rebuild
// its tag suggestion cache.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.Internal.APIKey == "" {
		logger.Fatal("INTERNAL_API_KEY is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.Internal.APIURL, cfg.Internal.APIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("buyer event consumer running", zap.String("queue", rabbitmq.BuyerEventsQueue))
	<-ctx.Done()
	logger.Info("buyer event consumer stopped")
}
