package main

import (
	"log"
	"time"

	"go.uber.org/zap"

	"floreria-be/internal/cart"
	"floreria-be/internal/catalog"
	"floreria-be/internal/config"
	"floreria-be/internal/db"
	"floreria-be/internal/handler"
	"floreria-be/internal/logger"
	"floreria-be/internal/order"
	"floreria-be/internal/realtime"
	"floreria-be/internal/store"
	"floreria-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	loc, err := time.LoadLocation(cfg.StoreTimezone)
	if err != nil {
		log.Fatalf("invalid STORE_TIMEZONE %q: %v", cfg.StoreTimezone, err)
	}

	database := db.InitDB(cfg)
	defer database.Close()

	hub := realtime.NewHub()
	go hub.Run()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, user.NewGoogleVerifier(cfg.GoogleClientID))

	catalogRepo := catalog.NewRepository(database)
	catalogSvc := catalog.NewService(catalogRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, catalogRepo)

	storeRepo := store.NewRepository(database)
	storeSvc := store.NewService(storeRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, userSvc, hub, loc)

	h := handler.New(userSvc, catalogSvc, cartSvc, orderSvc, storeSvc, hub)
	router := handler.NewRouter(h)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}

	logger.L().Info("server listening",
		zap.String("port", port),
		zap.String("store_timezone", cfg.StoreTimezone),
	)
	if err := router.Run(":" + port); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
