package handler

import (
	"net/http"
	"sharpgaze-api/internal/apperr"
	"sharpgaze-api/internal/dto"
	"sharpgaze-api/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) UpdateCart(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CartUpdateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("No data provided")
	}

	// A Session-ID header wins over the body field, matching how browser
	// clients pass the session along.
	sessionID := c.Request().Header.Get("Session-ID")
	if sessionID == "" {
		sessionID = req.SessionID
	}

	sessionID, err := h.cartService.UpdateCart(ctx, sessionID, req.Cart)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.CartResponse{
		Success:   true,
		SessionID: sessionID,
		Message:   "Cart updated successfully",
		Cart:      req.Cart,
	})
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID := c.Param("session_id")

	items, err := h.cartService.GetCart(ctx, sessionID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.CartResponse{
		Success:   true,
		SessionID: sessionID,
		Cart:      items,
	})
}
