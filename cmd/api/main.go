package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sharpgaze-api/internal/client"
	"sharpgaze-api/internal/config"
	"sharpgaze-api/internal/orderid"
	"sharpgaze-api/internal/repository"
	"sharpgaze-api/internal/server"
	"sharpgaze-api/internal/service"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitDBClient(cfg.DatabaseURL)

	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	userRepo := repository.NewUserRepository(db)

	if err := productRepo.Seed(context.Background()); err != nil {
		log.Fatal("seed catalog:", err)
	}

	catalogService := service.NewCatalogService(productRepo)
	checkoutService := service.NewCheckoutService(db, orderid.NewGenerator(), productRepo, orderRepo)
	orderService := service.NewOrderService(orderRepo)
	cartService := service.NewCartService(cartRepo)
	authService := service.NewAuthService(userRepo, &cfg.Auth)
	adminService := service.NewAdminService(db, productRepo, orderRepo, cartRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(
		catalogService,
		checkoutService,
		orderService,
		cartService,
		authService,
		adminService,
	)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
