package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/Morgpo/Grub-N-Go/external/grubngo"
	"github.com/Morgpo/Grub-N-Go/internal/config"
	"github.com/Morgpo/Grub-N-Go/internal/services"
	"github.com/Morgpo/Grub-N-Go/internal/storage"
)

func main() {
	// ======================
	// CONFIG
	// ======================
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// ======================
	// INFRA
	// ======================
	var store storage.KeyValue
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		store = storage.NewRedisStore(client)
	} else {
		// session will not survive a restart
		store = storage.NewMemoryStore()
	}

	api := grubngo.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)

	// ======================
	// SERVICES
	// ======================
	sessionSvc := services.NewSessionService(api, store)
	cartSvc := services.NewCartService()
	checkoutSvc := services.NewCheckoutService(api, cartSvc)
	paymentSvc := services.NewPaymentService(api)
	accountSvc := services.NewAccountService(api)

	// restore a persisted session before any screen trusts it
	if err := sessionSvc.Initialize(context.Background()); err != nil {
		log.Printf("session restore failed: %v", err)
	}

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	ui := e.Group("/grubngo")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(ui, sessionSvc)
	registerRestaurantRoutes(ui, api)
	registerCartRoutes(ui, cartSvc, checkoutSvc, sessionSvc)
	registerOrderRoutes(ui, api, sessionSvc)
	registerPaymentRoutes(ui, paymentSvc, sessionSvc)
	registerAccountRoutes(ui, accountSvc, sessionSvc)

	// ======================
	// SERVER
	// ======================
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
