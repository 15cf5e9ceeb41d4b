package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/repos"
)

type HistoryService struct {
	Sales *repos.SaleRepo
}

func NewHistoryService(sales *repos.SaleRepo) *HistoryService {
	return &HistoryService{Sales: sales}
}

// Recent returns the user's last 50 sales, newest first.
func (s *HistoryService) Recent(userID string) ([]repos.SaleSummary, error) {
	return s.Sales.ListByUser(userID, 50)
}

type DashboardStats struct {
	DailyTotal   int64
	MonthlyTotal int64
	MonthlySales int
}

// Dashboard aggregates totals since local midnight and since the first
// of the month.
func (s *HistoryService) Dashboard(userID string, now time.Time) (DashboardStats, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	daily, _, err := s.Sales.TotalsSince(userID, startOfDay.UTC().Format(time.RFC3339))
	if err != nil {
		return DashboardStats{}, err
	}
	monthly, count, err := s.Sales.TotalsSince(userID, startOfMonth.UTC().Format(time.RFC3339))
	if err != nil {
		return DashboardStats{}, err
	}
	return DashboardStats{DailyTotal: daily, MonthlyTotal: monthly, MonthlySales: count}, nil
}

// ExportCSV writes all of the user's sales, newest first, with the
// items column as "name (qty)" pairs joined by " | ".
func (s *HistoryService) ExportCSV(userID string, w io.Writer) error {
	sales, err := s.Sales.ListWithItems(userID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Invoice Number", "Total", "Items"}); err != nil {
		return err
	}
	for _, sale := range sales {
		date := sale.Date
		if t, err := time.Parse(time.RFC3339, sale.Date); err == nil {
			date = t.Format("2006-01-02")
		}
		items := make([]string, 0, len(sale.Items))
		for _, it := range sale.Items {
			items = append(items, fmt.Sprintf("%s (%d)", it.Name, it.Qty))
		}
		row := []string{date, sale.InvoiceNumber, strconv.FormatInt(sale.Total, 10), strings.Join(items, " | ")}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
