package handlers

import (
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"
	applog "github.com/akabdoulsankara34-dev/POS-Burkina/internal/log"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/services"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler manages the catalog screen: list, create, edit/restock
// and delete.
type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	products, err := h.Catalog.List(u.ID, c.Query("q"))
	if err != nil {
		applog.Error(c, "products.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Impossible de charger les produits"})
	}
	return render(c, "products", fiber.Map{
		"Products":     products,
		"Query":        c.Query("q"),
		"LowThreshold": services.LowStockThreshold,
	})
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)

	name, okName := validate.Name(c.FormValue("name"))
	price, okPrice := validate.Price(c.FormValue("price"))
	stock, okStock := validate.Stock(c.FormValue("stock"))
	if !okName || !okPrice || !okStock {
		return c.Status(400).SendString("invalid product fields")
	}

	id, err := h.Catalog.Create(u.ID, name, price, stock)
	if err != nil {
		applog.Error(c, "products.create.fail", err, map[string]any{"name": name})
		return c.Status(400).SendString("could not save product")
	}
	applog.Audit(c, "products.create", map[string]any{"product": id, "name": name, "price": price, "stock": stock})
	return c.Redirect("/products")
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)

	id, okID := validate.ID(c.Params("id"))
	name, okName := validate.Name(c.FormValue("name"))
	price, okPrice := validate.Price(c.FormValue("price"))
	stock, okStock := validate.Stock(c.FormValue("stock"))
	if !okID || !okName || !okPrice || !okStock {
		return c.Status(400).SendString("invalid product fields")
	}
	if p, err := h.Catalog.Get(id); err != nil || p.UserID != u.ID {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Produit introuvable"})
	}

	if err := h.Catalog.Update(id, u.ID, name, price, stock); err != nil {
		applog.Error(c, "products.update.fail", err, map[string]any{"product": id})
		return c.Status(400).SendString("could not update product")
	}
	applog.Audit(c, "products.update", map[string]any{"product": id, "price": price, "stock": stock})
	return c.Redirect("/products")
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)

	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if p, err := h.Catalog.Get(id); err != nil || p.UserID != u.ID {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Produit introuvable"})
	}

	if err := h.Catalog.Delete(id); err != nil {
		applog.Error(c, "products.delete.fail", err, map[string]any{"product": id})
		return c.Status(400).SendString("could not delete product")
	}
	applog.Audit(c, "products.delete", map[string]any{"product": id})
	return c.Redirect("/products")
}
