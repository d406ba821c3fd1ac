package handler

import (
	"net/http"
	"sharpgaze-api/internal/apperr"
	"sharpgaze-api/internal/dto"
	"sharpgaze-api/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	orderService    service.OrderService
}

func NewCheckoutHandler(checkoutService service.CheckoutService, orderService service.OrderService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
	}
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("No data provided")
	}

	order, err := h.checkoutService.PlaceOrder(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, &dto.CheckoutResponse{
		Success: true,
		OrderID: order.OrderID,
		Message: "Order placed successfully!",
		Order:   order,
		Total:   order.TotalAmount,
	})
}

func (h *CheckoutHandler) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.ListOrders(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"orders":  orders,
		"count":   len(orders),
	})
}

func (h *CheckoutHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.orderService.GetOrder(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"order":   order,
	})
}
