package handlers

import (
	"time"

	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"
	applog "github.com/akabdoulsankara34-dev/POS-Burkina/internal/log"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/services"

	"github.com/gofiber/fiber/v2"
)

type HistoryHandler struct {
	History *services.HistoryService
	Catalog *services.CatalogService
}

// List shows the user's last sales, newest first.
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	sales, err := h.History.Recent(u.ID)
	if err != nil {
		applog.Error(c, "history.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Impossible de charger l'historique"})
	}
	return render(c, "history", fiber.Map{"Sales": sales})
}

// Dashboard shows daily/monthly totals plus the low stock count for
// tiers that carry stock alerts.
func (h *HistoryHandler) Dashboard(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)

	stats, err := h.History.Dashboard(u.ID, time.Now())
	if err != nil {
		applog.Error(c, "dashboard.load.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Impossible de charger le tableau de bord"})
	}

	data := fiber.Map{
		"DailyTotal":   domain.FormatFCFA(stats.DailyTotal),
		"MonthlyTotal": domain.FormatFCFA(stats.MonthlyTotal),
		"MonthlySales": stats.MonthlySales,
	}
	if domain.CanAccess(u.Tier, domain.FeatureLowStockAlerts) {
		low, err := h.Catalog.LowStock(u.ID)
		if err == nil {
			data["LowStock"] = low
			data["LowStockCount"] = len(low)
		}
	}
	return render(c, "dashboard", data)
}
