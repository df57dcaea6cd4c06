package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

// The consumer turns delayed cart-expiration messages into calls to the API's internal expire endpoint.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Internal.BaseURL,
		cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("cart expiration consumer running", zap.String("api", cfg.Internal.BaseURL))

	<-ctx.Done()
	logger.Info("cart expiration consumer stopping")
}
