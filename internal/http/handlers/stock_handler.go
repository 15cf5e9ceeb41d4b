package handlers

import (
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/services"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type StockHandler struct {
	Catalog *services.CatalogService
}

// Check answers the POS screen's availability poll for one product.
func (h *StockHandler) Check(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)

	productID, ok := validate.ID(c.Query("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing productId",
		})
	}

	p, err := h.Catalog.Get(productID)
	if err != nil || p.UserID != u.ID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown product",
		})
	}

	status := "OUT_OF_STOCK"
	switch {
	case p.Stock >= services.LowStockThreshold:
		status = "IN_STOCK"
	case p.Stock > 0:
		status = "LOW_STOCK"
	}
	return c.JSON(fiber.Map{"status": status, "stock": p.Stock})
}
