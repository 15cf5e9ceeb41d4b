package handlers

import (
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"
	applog "github.com/akabdoulsankara34-dev/POS-Burkina/internal/log"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireUser enforces that a user is logged in; otherwise redirect to
// login.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			return c.Redirect("/login")
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// RequireFeature gates a route behind the entitlement table. Every call
// site asks the one question — CanAccess(tier, feature) — instead of
// re-deriving tier comparisons.
func RequireFeature(auth *services.AuthService, feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			return c.Redirect("/login")
		}
		if !domain.CanAccess(u.Tier, feature) {
			applog.Security(c, "access.denied.feature", map[string]any{"feature": feature, "tier": u.Tier.String()})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Cette fonctionnalité n'est pas incluse dans votre pack"})
		}
		c.Locals("user", u)
		return c.Next()
	}
}
