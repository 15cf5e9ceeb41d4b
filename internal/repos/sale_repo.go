package repos

import (
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type SaleRepo struct{ db *sqlx.DB }

func NewSaleRepo(db *sqlx.DB) *SaleRepo { return &SaleRepo{db: db} }

// SaleSummary is the row shown in the history table and exported to
// CSV.
type SaleSummary struct {
	ID            string `db:"id"`
	Date          string `db:"date"`
	InvoiceNumber string `db:"invoice_number"`
	Total         int64  `db:"total"`
}

// Create persists the sale header and its line snapshots in one
// transaction and returns the assigned id. The pos column preserves
// cart insertion order.
func (r *SaleRepo) Create(s domain.Sale) (string, error) {
	id := uuid.NewString()
	tx, err := r.db.Beginx()
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO sales(id,user_id,shop_id,total,date,payment_method,invoice_number)
		VALUES(?,?,NULLIF(?,''),?,?,?,?)`,
		id, s.UserID, s.ShopID, s.Total, s.Date, s.PaymentMethod, s.InvoiceNumber); err != nil {
		return "", err
	}
	for i, it := range s.Items {
		if _, err := tx.Exec(`
			INSERT INTO sale_items(sale_id,pos,product_id,name,price,qty)
			VALUES(?,?,?,?,?,?)`, id, i, it.ProductID, it.Name, it.Price, it.Qty); err != nil {
			return "", err
		}
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

func (r *SaleRepo) Get(id string) (domain.Sale, error) {
	var s domain.Sale
	if err := r.db.Get(&s, `
		SELECT id,user_id,COALESCE(shop_id,'') AS shop_id,total,date,payment_method,invoice_number
		FROM sales WHERE id=?`, id); err != nil {
		return domain.Sale{}, err
	}
	if err := r.db.Select(&s.Items, `
		SELECT product_id,name,price,qty
		FROM sale_items WHERE sale_id=?
		ORDER BY pos`, id); err != nil {
		return domain.Sale{}, err
	}
	return s, nil
}

func (r *SaleRepo) ListByUser(userID string, limit int) ([]SaleSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []SaleSummary
	err := r.db.Select(&out, `
		SELECT id,date,invoice_number,total
		FROM sales WHERE user_id=?
		ORDER BY datetime(date) DESC
		LIMIT ?`, userID, limit)
	return out, err
}

// TotalsSince sums sale totals for the user on/after the given RFC3339
// instant. Feeds the dashboard's daily and monthly figures.
func (r *SaleRepo) TotalsSince(userID, since string) (int64, int, error) {
	var row struct {
		Total int64 `db:"total"`
		Count int   `db:"count"`
	}
	err := r.db.Get(&row, `
		SELECT COALESCE(SUM(total),0) AS total, COUNT(*) AS count
		FROM sales
		WHERE user_id=? AND datetime(date) >= datetime(?)`, userID, since)
	if err != nil {
		return 0, 0, err
	}
	return row.Total, row.Count, nil
}

// ListWithItems returns the user's sales newest first, items included,
// for the CSV export.
func (r *SaleRepo) ListWithItems(userID string) ([]domain.Sale, error) {
	var sales []domain.Sale
	if err := r.db.Select(&sales, `
		SELECT id,user_id,COALESCE(shop_id,'') AS shop_id,total,date,payment_method,invoice_number
		FROM sales WHERE user_id=?
		ORDER BY datetime(date) DESC`, userID); err != nil {
		return nil, err
	}
	for i := range sales {
		if err := r.db.Select(&sales[i].Items, `
			SELECT product_id,name,price,qty
			FROM sale_items WHERE sale_id=?
			ORDER BY pos`, sales[i].ID); err != nil {
			return nil, err
		}
	}
	return sales, nil
}
