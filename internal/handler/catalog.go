package handler

import (
	"net/http"
	"sharpgaze-api/internal/apperr"
	"sharpgaze-api/internal/service"
	"strconv"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.catalogService.ListProducts(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"products": products,
		"count":    len(products),
	})
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return apperr.NotFound("Product not found")
	}

	product, err := h.catalogService.GetProduct(ctx, uint(productID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"product": product,
	})
}

func (h *CatalogHandler) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()

	results, err := h.catalogService.SearchProducts(ctx, c.QueryParam("q"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"results": results,
		"count":   len(results),
	})
}
