package handlers

import (
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// uiFeatures are the entitlements templates need to show or hide tabs
// and buttons. Enforcement stays server-side in RequireFeature; this
// only controls presentation.
var uiFeatures = []string{
	domain.FeatureStockTracking,
	domain.FeatureDashboardStats,
	domain.FeatureLowStockAlerts,
	domain.FeatureMultiShop,
	domain.FeatureExports,
	domain.FeatureAdvancedCharts,
}

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if u, ok := c.Locals("user").(*domain.User); ok && u != nil {
		data["User"] = u
		can := make(map[string]bool, len(uiFeatures))
		for _, f := range uiFeatures {
			can[f] = domain.CanAccess(u.Tier, f)
		}
		data["Can"] = can
	}
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	} else if cookTok := c.Cookies("csrf_"); cookTok != "" {
		data["CSRFToken"] = cookTok
	}
	return c.Render(tmpl, data)
}
