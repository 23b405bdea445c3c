package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"storefront-api/internal/config"
	"storefront-api/internal/handler"
	appmw "storefront-api/internal/middleware"
	"storefront-api/internal/service"
)

type Server struct {
	echo           *echo.Echo
	cfg            *config.Config
	authService    service.AuthService
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	addressHandler *handler.AddressHandler
	paymentHandler *handler.PaymentHandler
	orderHandler   *handler.OrderHandler
	adminHandler   *handler.AdminHandler
}

func NewServer(
	cfg *config.Config,
	authService service.AuthService,
	catalogService service.CatalogService,
	addressService service.AddressService,
	paymentService service.PaymentService,
	orderService service.OrderService,
	checkoutService service.CheckoutService,
	adminService service.AdminService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		cfg:            cfg,
		authService:    authService,
		authHandler:    handler.NewAuthHandler(authService),
		productHandler: handler.NewProductHandler(catalogService),
		addressHandler: handler.NewAddressHandler(addressService),
		paymentHandler: handler.NewPaymentHandler(paymentService, checkoutService),
		orderHandler:   handler.NewOrderHandler(orderService, checkoutService),
		adminHandler:   handler.NewAdminHandler(adminService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	auth := appmw.Auth(s.authService)
	admin := appmw.AdminOnly()

	// -------- auth --------
	users := api.Group("/users")
	if s.cfg.RateLimit.Enabled {
		// per-IP sliding window on the credential endpoints only
		limiter := middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Store: middleware.NewRateLimiterMemoryStoreWithConfig(
				middleware.RateLimiterMemoryStoreConfig{
					Rate:  rate.Limit(s.cfg.RateLimit.Rate),
					Burst: s.cfg.RateLimit.Burst,
				},
			),
		})
		users.POST("/register", s.authHandler.Register, limiter)
		users.POST("/login", s.authHandler.Login, limiter)
	} else {
		users.POST("/register", s.authHandler.Register)
		users.POST("/login", s.authHandler.Login)
	}
	users.GET("", s.adminHandler.ListUsers, auth, admin)
	users.GET("/:id", s.adminHandler.UserDetail, auth, admin)
	users.DELETE("/:id", s.adminHandler.DeleteUser, auth, admin)

	api.POST("/auth/verify", s.authHandler.Verify, auth)

	// -------- catalog --------
	products := api.Group("/products")
	products.GET("", s.productHandler.List)
	products.GET("/:id", s.productHandler.Get)
	products.POST("", s.productHandler.Create, auth, admin)
	products.DELETE("/:id", s.productHandler.Delete, auth, admin)

	// -------- addresses --------
	addresses := api.Group("/addresses", auth)
	addresses.POST("", s.addressHandler.Create)
	addresses.GET("/:userId", s.addressHandler.ListByUser)

	// -------- payments --------
	payments := api.Group("/payments")
	payments.GET("/methods", s.paymentHandler.Methods)
	payments.POST("", s.paymentHandler.Record, auth)
	payments.GET("/:userId", s.paymentHandler.ListByUser, auth)
	payments.POST("/create-order", s.paymentHandler.CreateGatewayOrder, auth)
	payments.POST("/verify", s.paymentHandler.Verify, auth)
	payments.POST("/:id/refund", s.paymentHandler.Refund, auth, admin)

	// -------- checkout / orders --------
	api.POST("/checkout", s.orderHandler.Checkout, auth)
	orders := api.Group("/orders", auth)
	orders.POST("", s.orderHandler.Checkout)
	orders.GET("", s.orderHandler.List, admin)
	orders.GET("/:userId", s.orderHandler.ListByUser)
	orders.PUT("/:orderId", s.orderHandler.UpdateStatus, admin)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
