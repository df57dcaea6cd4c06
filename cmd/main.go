package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	cartapp "github.com/muhammadheryan/storefront/application/cart"
	checkoutapp "github.com/muhammadheryan/storefront/application/checkout"
	orderapp "github.com/muhammadheryan/storefront/application/order"
	productapp "github.com/muhammadheryan/storefront/application/product"
	stockapp "github.com/muhammadheryan/storefront/application/stock"
	userapp "github.com/muhammadheryan/storefront/application/user"
	warehouseapp "github.com/muhammadheryan/storefront/application/warehouse"
	"github.com/muhammadheryan/storefront/cmd/config"
	redisclient "github.com/muhammadheryan/storefront/cmd/redis"
	_ "github.com/muhammadheryan/storefront/docs"
	cartRepo "github.com/muhammadheryan/storefront/repository/cart"
	couponRepo "github.com/muhammadheryan/storefront/repository/coupon"
	lockRepo "github.com/muhammadheryan/storefront/repository/lock"
	orderRepo "github.com/muhammadheryan/storefront/repository/order"
	redisRepo "github.com/muhammadheryan/storefront/repository/redis"
	stockRepo "github.com/muhammadheryan/storefront/repository/stock"
	txRepo "github.com/muhammadheryan/storefront/repository/tx"
	userRepo "github.com/muhammadheryan/storefront/repository/user"
	variantRepo "github.com/muhammadheryan/storefront/repository/variant"
	warehouseRepo "github.com/muhammadheryan/storefront/repository/warehouse"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/transport"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/muhammadheryan/storefront/utils/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// @title STOREFRONT API
// @version 1.0
// @description Storefront cart, checkout and inventory API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Redis backs sessions and the checkout lock
	if err := redisclient.New(context.Background(), cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// RabbitMQ is optional: without it carts never expire and order events are not sent
	var (
		cartExpirations rabbitmq.CartExpirationPublisher
		orderEvents     rabbitmq.OrderPlacedPublisher
	)
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, publishing disabled", zap.Error(err))
	} else {
		defer publisher.Close()
		cartExpirations = publisher
		orderEvents = publisher
	}

	stockMetrics := metrics.NewStockMetrics(prometheus.DefaultRegisterer)
	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository()
	StockRepo := stockRepo.NewStockRepository(db)
	CartRepo := cartRepo.NewCartRepository(db)
	VariantRepo := variantRepo.NewVariantRepository(db)
	CouponRepo := couponRepo.NewCouponRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	WarehouseRepo := warehouseRepo.NewWarehouseRepository(db)
	Locker := lockRepo.NewLocker(redisclient.GetLocker())
	runner := txRepo.NewRunner(txRepo.NewTxRepository(db), cfg.Stock.LedgerMaxRetries, stockMetrics.IncRetry)

	// Initialize application layers
	StockApp := stockapp.NewStockApp(runner, StockRepo, VariantRepo, WarehouseRepo, stockMetrics, cfg.Stock.DefaultWarehouseID)
	CartApp := cartapp.NewCartApp(cfg.Cart, runner, CartRepo, VariantRepo, CouponRepo, StockApp, cartExpirations)
	CheckoutApp := checkoutapp.NewCheckoutApp(checkoutapp.Deps{
		Runner:      runner,
		CartRepo:    CartRepo,
		VariantRepo: VariantRepo,
		CouponRepo:  CouponRepo,
		OrderRepo:   OrderRepo,
		UserRepo:    UserRepo,
		Reserver:    StockApp,
		Locker:      Locker,
		LockTTL:     cfg.Stock.CheckoutLockTTL,
		Publisher:   orderEvents,
		Metrics:     stockMetrics,
	})
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo, CartApp)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		UserApp:      UserApp,
		CartApp:      CartApp,
		CheckoutApp:  CheckoutApp,
		OrderApp:     orderapp.NewOrderApp(OrderRepo),
		ProductApp:   productapp.NewProductApp(VariantRepo, StockApp),
		StockApp:     StockApp,
		WarehouseApp: warehouseapp.NewWarehouseApp(runner, WarehouseRepo, StockRepo, VariantRepo, StockApp),
	}, transport.Options{
		CartCookieName: cfg.Cart.CookieName,
		CartCookieTTL:  cfg.Cart.ExpireAfter,
		InternalAPIKey: cfg.Internal.APIKey,
		HTTPMetrics:    httpMetrics,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
