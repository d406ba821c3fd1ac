package handler

import (
	"net/http"
	"sharpgaze-api/internal/apperr"
	"sharpgaze-api/internal/dto"
	"sharpgaze-api/internal/service"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	catalogService service.CatalogService
	adminService   service.AdminService
}

func NewAdminHandler(catalogService service.CatalogService, adminService service.AdminService) *AdminHandler {
	return &AdminHandler{
		catalogService: catalogService,
		adminService:   adminService,
	}
}

func (h *AdminHandler) AddProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddProductRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("No data provided")
	}

	product, err := h.catalogService.AddProduct(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Product added successfully",
		"product": product,
	})
}

func (h *AdminHandler) Reset(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.adminService.Reset(ctx); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.MessageResponse{
		Success: true,
		Message: "Data reset successfully",
	})
}

func (h *AdminHandler) Health(c echo.Context) error {
	ctx := c.Request().Context()

	health, err := h.adminService.Health(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, health)
}
