package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/verdantgoods/storefront/internal/app"
	"github.com/verdantgoods/storefront/internal/config"
	"github.com/verdantgoods/storefront/internal/events"
	"github.com/verdantgoods/storefront/internal/handler"
	"github.com/verdantgoods/storefront/internal/payment"
	"github.com/verdantgoods/storefront/internal/postgres"
	"github.com/verdantgoods/storefront/internal/pricing"
	"github.com/verdantgoods/storefront/internal/repo"
	"github.com/verdantgoods/storefront/internal/service"
	"github.com/verdantgoods/storefront/pkg/cache"
	"github.com/verdantgoods/storefront/pkg/trm"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to run migrations", postgres.Migrate(db, conf.Postgres.MigrationsPath))

	cartRepo := repo.NewCartsRepo(db)
	productRepo := repo.NewProductsRepo(db)
	orderRepo := repo.NewOrdersRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	stripe := payment.NewClient(conf.Stripe)
	publisher := events.NewPublisher(logger, conf.Kafka)

	pricingCfg := pricing.Config{
		FreeShippingThreshold: conf.Pricing.FreeShippingThreshold,
		FlatShippingRate:      conf.Pricing.FlatShippingRate,
		TaxRate:               conf.Pricing.TaxRate,
	}

	cartService := service.NewCartService(logger, txManager, cartRepo, productRepo, conf.Cart.GuestTTL)
	checkoutService := service.NewCheckoutService(
		logger, txManager, cartService, cartRepo, orderRepo,
		stripe, publisher, pricingCfg, conf.Stripe.Currency,
	)
	orderService := service.NewOrderService(logger, orderRepo, orderCache)
	reaper := service.NewReaper(logger, cartService, conf.Cart.ReaperInterval)

	service.RegisterMetrics()

	application := app.New(logger, conf)
	application.SetHttpHandlers(
		handler.NewCartHandler(logger, cartService),
		handler.NewCheckoutHandler(logger, checkoutService),
		handler.NewOrderHandler(logger, orderService),
	)
	application.SetStarters(orderCache, reaper)
	application.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	application.Start(ctx)
	<-ctx.Done()
	application.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
