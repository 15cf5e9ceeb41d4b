package handlers

import (
	"bytes"
	"time"

	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"
	applog "github.com/akabdoulsankara34-dev/POS-Burkina/internal/log"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ExportHandler struct {
	History *services.HistoryService
}

// Sales streams the user's sales as a CSV download. The route is gated
// on the exports feature.
func (h *ExportHandler) Sales(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)

	var buf bytes.Buffer
	if err := h.History.ExportCSV(u.ID, &buf); err != nil {
		applog.Error(c, "export.sales.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Erreur lors de l'export"})
	}

	applog.Audit(c, "export.sales", map[string]any{"bytes": buf.Len()})
	filename := "ventes_" + time.Now().Format("2006-01-02") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
