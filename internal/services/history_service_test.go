package services_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/services"
)

func saleAt(t *testing.T, env *testEnv, userID string, at time.Time, total int64, items ...domain.CartLine) string {
	t.Helper()
	id, err := env.Sales.Create(domain.Sale{
		UserID:        userID,
		Items:         items,
		Total:         total,
		Date:          at.UTC().Format(time.RFC3339),
		PaymentMethod: "cash",
		InvoiceNumber: "INV-" + at.Format("20060102") + "-0042",
	})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}
	return id
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	hist := services.NewHistoryService(env.Sales)

	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	saleAt(t, env, "u-awa", now.Add(-2*time.Hour), 600,
		domain.CartLine{ProductID: "p-sucre1", Name: "Sucre 1kg", Price: 600, Qty: 1})
	newest := saleAt(t, env, "u-awa", now, 2500,
		domain.CartLine{ProductID: "p-riz5", Name: "Riz 5kg", Price: 2500, Qty: 1})

	out, err := hist.Recent("u-awa")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("want 2 sales, got %d", len(out))
	}
	if out[0].ID != newest {
		t.Fatalf("want newest sale first, got %s", out[0].ID)
	}

	// other sellers' sales never leak in
	other, err := hist.Recent("u-issa")
	if err != nil {
		t.Fatal(err)
	}
	if len(other) != 0 {
		t.Fatalf("want no sales for u-issa, got %d", len(other))
	}
}

func TestDashboardSplitsDailyAndMonthly(t *testing.T) {
	env := newTestEnv(t)
	hist := services.NewHistoryService(env.Sales)

	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	line := domain.CartLine{ProductID: "p-riz5", Name: "Riz 5kg", Price: 2500, Qty: 1}

	saleAt(t, env, "u-awa", now.Add(-1*time.Hour), 2500, line)                      // today
	saleAt(t, env, "u-awa", time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC), 600, line) // this month
	saleAt(t, env, "u-awa", time.Date(2026, 7, 30, 9, 0, 0, 0, time.UTC), 999, line) // last month

	stats, err := hist.Dashboard("u-awa", now)
	if err != nil {
		t.Fatal(err)
	}
	if stats.DailyTotal != 2500 {
		t.Fatalf("daily: want 2500, got %d", stats.DailyTotal)
	}
	if stats.MonthlyTotal != 3100 {
		t.Fatalf("monthly: want 3100, got %d", stats.MonthlyTotal)
	}
	if stats.MonthlySales != 2 {
		t.Fatalf("monthly count: want 2, got %d", stats.MonthlySales)
	}
}

func TestExportCSVFormat(t *testing.T) {
	env := newTestEnv(t)
	hist := services.NewHistoryService(env.Sales)

	at := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)
	saleAt(t, env, "u-awa", at, 3700,
		domain.CartLine{ProductID: "p-riz5", Name: "Riz 5kg", Price: 2500, Qty: 1},
		domain.CartLine{ProductID: "p-huile1", Name: "Huile végétale 1L", Price: 1200, Qty: 1})

	var buf bytes.Buffer
	if err := hist.ExportCSV("u-awa", &buf); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want header + 1 row, got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Date,Invoice Number,Total,Items" {
		t.Fatalf("bad header %q", lines[0])
	}
	if lines[1] != "2026-08-15,INV-20260815-0042,3700,Riz 5kg (1) | Huile végétale 1L (1)" {
		t.Fatalf("bad row %q", lines[1])
	}
}
