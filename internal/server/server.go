package server

import (
	"errors"
	"net/http"
	"sharpgaze-api/internal/apperr"
	"sharpgaze-api/internal/dto"
	"sharpgaze-api/internal/handler"
	"sharpgaze-api/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	catalogHandler  *handler.CatalogHandler
	checkoutHandler *handler.CheckoutHandler
	cartHandler     *handler.CartHandler
	authHandler     *handler.AuthHandler
	adminHandler    *handler.AdminHandler
}

func NewServer(
	catalogService service.CatalogService,
	checkoutService service.CheckoutService,
	orderService service.OrderService,
	cartService service.CartService,
	authService service.AuthService,
	adminService service.AdminService,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.HTTPErrorHandler = errorHandler

	s := &Server{
		echo:            e,
		catalogHandler:  handler.NewCatalogHandler(catalogService),
		checkoutHandler: handler.NewCheckoutHandler(checkoutService, orderService),
		cartHandler:     handler.NewCartHandler(cartService),
		authHandler:     handler.NewAuthHandler(authService),
		adminHandler:    handler.NewAdminHandler(catalogService, adminService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", s.adminHandler.Health)

	auth := api.Group("/auth")
	auth.POST("/register", s.authHandler.Register)
	auth.POST("/login", s.authHandler.Login)

	api.GET("/products", s.catalogHandler.GetProducts)
	api.GET("/products/:id", s.catalogHandler.GetProduct)
	api.GET("/search", s.catalogHandler.SearchProducts)

	api.POST("/cart", s.cartHandler.UpdateCart)
	api.GET("/cart/:session_id", s.cartHandler.GetCart)

	api.POST("/checkout", s.checkoutHandler.Checkout)
	api.GET("/orders", s.checkoutHandler.GetOrders)
	api.GET("/orders/:id", s.checkoutHandler.GetOrder)

	admin := api.Group("/admin")
	admin.POST("/products", s.adminHandler.AddProduct)
	admin.POST("/reset", s.adminHandler.Reset)
}

// errorHandler turns every error into the {success:false, error} envelope.
// Insufficient stock and duplicate accounts answer 400 like the rest of the
// validation family, which is what clients of this API expect.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	var appErr *apperr.Error
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &appErr):
		message = appErr.Message
		switch appErr.Kind {
		case apperr.KindNotFound:
			status = http.StatusNotFound
		case apperr.KindValidation, apperr.KindConflict:
			status = http.StatusBadRequest
		case apperr.KindUnauthorized:
			status = http.StatusUnauthorized
		case apperr.KindInternal:
			status = http.StatusInternalServerError
			message = "Internal server error"
		}
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		if status == http.StatusNotFound {
			message = "Endpoint not found"
		}
	}

	if err := c.JSON(status, &dto.ErrorResponse{Success: false, Error: message}); err != nil {
		c.Logger().Error(err)
	}
}

// ServeHTTP exposes the router as an http.Handler, used by httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
