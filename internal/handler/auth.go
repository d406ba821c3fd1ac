package handler

import (
	"net/http"
	"sharpgaze-api/internal/apperr"
	"sharpgaze-api/internal/dto"
	"sharpgaze-api/internal/service"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("No data provided")
	}

	if err := h.authService.Register(ctx, &req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.MessageResponse{
		Success: true,
		Message: "User registered successfully",
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("No data provided")
	}

	sessionID, err := h.authService.Login(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.LoginResponse{
		Success:   true,
		Message:   "Login successful",
		SessionID: sessionID,
	})
}
