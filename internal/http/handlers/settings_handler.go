package handlers

import (
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"
	applog "github.com/akabdoulsankara34-dev/POS-Burkina/internal/log"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/repos"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// SettingsHandler covers shop details, the tier upgrade screen and
// multi-shop management.
type SettingsHandler struct {
	Users *repos.UserRepo
	Shops *repos.ShopRepo
}

func (h *SettingsHandler) Page(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)

	data := fiber.Map{
		// upgrade buttons for tiers at or below the current one are disabled
		"CanUpgradeBusiness": u.Tier.Less(domain.TierBusiness),
		"CanUpgradePremium":  u.Tier.Less(domain.TierPremium),
	}
	if domain.CanAccess(u.Tier, domain.FeatureMultiShop) {
		shops, err := h.Shops.ListByUser(u.ID)
		if err == nil {
			data["Shops"] = shops
		}
	}
	return render(c, "settings", data)
}

// Save updates shop name, phone and address on both the user document
// and the active shop.
func (h *SettingsHandler) Save(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)

	shopName, ok := validate.Name(c.FormValue("shop_name"))
	if !ok {
		return c.Status(400).SendString("invalid shop name")
	}
	phone := c.FormValue("phone")
	address := c.FormValue("address")

	if err := h.Users.UpdateSettings(u.ID, shopName, phone, address); err != nil {
		applog.Error(c, "settings.save.fail", err, nil)
		return c.Status(400).SendString("could not save settings")
	}
	if shop, err := h.Shops.Active(u.ID); err == nil {
		if err := h.Shops.Update(shop.ID, shopName, address, phone); err != nil {
			applog.Error(c, "settings.shop.save.fail", err, map[string]any{"shop": shop.ID})
		}
	}
	applog.Audit(c, "settings.save", map[string]any{"shop_name": shopName})
	return c.Redirect("/settings")
}

// UpgradeTier activates a higher tier. Payment happens out of band
// (mobile money); downgrades are rejected.
func (h *SettingsHandler) UpgradeTier(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)

	tier := domain.Tier(c.FormValue("tier"))
	if !tier.Valid() || !u.Tier.Less(tier) {
		return c.Status(400).SendString("invalid tier change")
	}
	if err := h.Users.UpdateTier(u.ID, tier); err != nil {
		applog.Error(c, "settings.tier.fail", err, map[string]any{"tier": tier.String()})
		return c.Status(400).SendString("could not change tier")
	}
	applog.Audit(c, "settings.tier.upgrade", map[string]any{"from": u.Tier.String(), "to": tier.String()})
	return c.Redirect("/settings")
}

// AddShop creates an extra shop (premium only; route is feature-gated).
func (h *SettingsHandler) AddShop(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)

	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(400).SendString("invalid shop name")
	}
	id, err := h.Shops.Create(u.ID, name)
	if err != nil {
		applog.Error(c, "shops.create.fail", err, map[string]any{"name": name})
		return c.Status(400).SendString("could not create shop")
	}
	applog.Audit(c, "shops.create", map[string]any{"shop": id, "name": name})
	return c.Redirect("/settings")
}
