package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"storefront-api/internal/client"
	"storefront-api/internal/config"
	"storefront-api/internal/repository"
	"storefront-api/internal/server"
	"storefront-api/internal/service"
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

	db := client.InitDatabase(&cfg.Database)
	gateway := client.NewRazorpayClient(&cfg.Razorpay)

	userRepo := repository.NewUserRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	productRepo := repository.NewProductRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiry)
	catalogService := service.NewCatalogService(productRepo)
	addressService := service.NewAddressService(addressRepo)
	paymentService := service.NewPaymentService(gateway, paymentRepo)
	orderService := service.NewOrderService(orderRepo)
	checkoutService := service.NewCheckoutService(db, gateway, addressRepo, paymentRepo, orderRepo)
	adminService := service.NewAdminService(userRepo, addressRepo, orderRepo, paymentRepo)

	if err := authService.EnsureAdmin(context.Background(),
		cfg.Admin.FullName, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal("seed admin account:", err)
	}

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(cfg,
		authService,
		catalogService,
		addressService,
		paymentService,
		orderService,
		checkoutService,
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
