package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/agri-market/cmd/config"
	"github.com/muhammadheryan/agri-market/thirdparty/rabbitmq"
	"github.com/muhammadheryan/agri-market/utils/logger"
	"go.uber.org/zap"
)

// The audit consumer drains the admin audit queue into the API's internal endpoint.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.Internal.APIKey == "" {
		logger.Fatal("INTERNAL_API_KEY must be set")
	}

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQURL(), cfg.Internal.APIURL, cfg.Internal.APIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("audit consumer running", zap.String("api_url", cfg.Internal.APIURL))
	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	<-ctx.Done()
	logger.Info("audit consumer stopped")
}
