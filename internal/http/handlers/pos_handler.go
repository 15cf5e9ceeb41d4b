package handlers

import (
	"errors"

	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"
	applog "github.com/akabdoulsankara34-dev/POS-Burkina/internal/log"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/repos"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/services"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// POSHandler drives the main selling screen: product grid, cart
// mutations, checkout and the receipt page.
type POSHandler struct {
	Catalog  *services.CatalogService
	Checkout *services.CheckoutService
	Carts    *services.CartStore
	Shops    *repos.ShopRepo
	Sales    *repos.SaleRepo
}

type cartView struct {
	Lines []cartLineView
	Total string
	Empty bool
}

type cartLineView struct {
	Index    int
	Name     string
	Qty      int
	Price    string
	Subtotal string
}

func viewCart(cart *domain.Cart) cartView {
	lines := cart.Lines()
	v := cartView{Total: domain.FormatFCFA(cart.Total()), Empty: len(lines) == 0}
	for i, l := range lines {
		v.Lines = append(v.Lines, cartLineView{
			Index:    i,
			Name:     l.Name,
			Qty:      l.Qty,
			Price:    domain.FormatFCFA(l.Price),
			Subtotal: domain.FormatFCFA(l.Subtotal()),
		})
	}
	return v
}

// Home renders the POS screen: the user's catalog (optionally filtered
// by ?q=) next to the session cart.
func (h *POSHandler) Home(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	sid := ensureSID(c)

	products, err := h.Catalog.List(u.ID, c.Query("q"))
	if err != nil {
		applog.Error(c, "pos.products.load", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Impossible de charger les produits"})
	}

	return render(c, "pos", fiber.Map{
		"Products": products,
		"Cart":     viewCart(h.Carts.Get(sid)),
		"Query":    c.Query("q"),
	})
}

// CartAdd adds one unit of a product to the session cart.
func (h *POSHandler) CartAdd(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	sid := ensureSID(c)

	productID, ok := validate.ID(c.FormValue("product_id"))
	if !ok {
		return c.Status(400).SendString("missing product_id")
	}
	p, err := h.Catalog.Get(productID)
	if err != nil || p.UserID != u.ID {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Produit introuvable"})
	}

	err = h.Carts.Get(sid).Add(p)
	switch {
	case errors.Is(err, domain.ErrOutOfStock):
		applog.Info(c, "cart.add.out_of_stock", map[string]any{"product": productID})
		return c.Redirect("/?err=rupture")
	case errors.Is(err, domain.ErrInsufficientStock):
		applog.Info(c, "cart.add.insufficient", map[string]any{"product": productID})
		return c.Redirect("/?err=stock")
	case err != nil:
		return c.Status(500).SendString(err.Error())
	}
	return c.Redirect("/")
}

// CartRemove deletes the cart line at the posted index.
func (h *POSHandler) CartRemove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	idx, ok := validate.Index(c.FormValue("index"))
	if !ok {
		return c.Status(400).SendString("invalid index")
	}
	removed, err := h.Carts.Get(sid).Remove(idx)
	if errors.Is(err, domain.ErrIndexOutOfRange) {
		return c.Status(400).SendString("invalid index")
	}
	applog.Info(c, "cart.remove", map[string]any{"product": removed.ProductID})
	return c.Redirect("/")
}

// PlaceSale runs the checkout engine for the session cart and redirects
// to the receipt on success. The cart is cleared only after the whole
// sequence completed without error.
func (h *POSHandler) PlaceSale(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	sid := ensureSID(c)
	cart := h.Carts.Get(sid)

	activeShop, err := h.Shops.Active(u.ID)
	if err != nil {
		activeShop = nil // selling without a shop record is allowed
	}

	sale, err := h.Checkout.Checkout(cart, u, activeShop)
	if errors.Is(err, services.ErrEmptyCart) {
		return c.Redirect("/?err=panier-vide")
	}
	if err != nil {
		// Stock or sale writes may have partially applied; tell the user
		// instead of pretending nothing happened.
		applog.Error(c, "sale.place.fail", err, map[string]any{"sale_id": sale.ID})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
			"Message": "Erreur lors de la vente — elle peut avoir été enregistrée partiellement. Vérifiez l'historique.",
		})
	}

	cart.Clear()
	applog.Audit(c, "sale.place", map[string]any{
		"sale_id": sale.ID,
		"invoice": sale.InvoiceNumber,
		"total":   sale.Total,
	})
	return c.Redirect("/receipt/" + sale.ID)
}

// Receipt renders the printable ticket for a persisted sale. Only the
// sale's owner may view it.
func (h *POSHandler) Receipt(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)

	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Ticket introuvable"})
	}
	sale, err := h.Sales.Get(id)
	if err != nil || sale.UserID != u.ID {
		applog.Security(c, "access.denied.receipt", map[string]any{"sale_id": id})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Ticket introuvable"})
	}

	shop, err := h.Shops.Active(u.ID)
	if err != nil {
		shop = nil
	}
	return render(c, "receipt", fiber.Map{"Receipt": services.BuildReceipt(sale, shop)})
}
