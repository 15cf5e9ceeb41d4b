package repos

import (
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id,user_id,name,price,stock,created_at`

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id=?`, id)
	return p, err
}

func (r *ProductRepo) ListByUser(userID string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
		SELECT `+productCols+` FROM products
		WHERE user_id=?
		ORDER BY LOWER(name)`, userID)
	return out, err
}

// Search filters the user's catalog by a case-insensitive name
// substring.
func (r *ProductRepo) Search(userID, q string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
		SELECT `+productCols+` FROM products
		WHERE user_id=? AND LOWER(name) LIKE ?
		ORDER BY LOWER(name)`, userID, "%"+q+"%")
	return out, err
}

// Create inserts a validated product and returns the assigned id.
func (r *ProductRepo) Create(p domain.Product) (string, error) {
	id := uuid.NewString()
	_, err := r.db.Exec(`
		INSERT INTO products(id,user_id,name,price,stock)
		VALUES(?,?,?,?,?)`, id, p.UserID, p.Name, p.Price, p.Stock)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Update overwrites name, price and stock (the explicit restock path).
func (r *ProductRepo) Update(id, name string, price int64, stock int) error {
	_, err := r.db.Exec(`
		UPDATE products SET name=?, price=?, stock=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?`, name, price, stock, id)
	return err
}

func (r *ProductRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	return err
}

// LowStock lists the user's products below the given threshold.
func (r *ProductRepo) LowStock(userID string, threshold int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
		SELECT `+productCols+` FROM products
		WHERE user_id=? AND stock < ?
		ORDER BY stock, LOWER(name)`, userID, threshold)
	return out, err
}

// DecrementStock atomically takes up to "by" units of stock, clamping
// at zero, and returns how many units were actually taken. Unlike a
// read-then-write, the conditional UPDATEs serialize at the database,
// so two concurrent checkouts of the last unit cannot both succeed:
// the loser gets ErrInsufficientStock.
func (r *ProductRepo) DecrementStock(id string, by int) (int, error) {
	if by <= 0 {
		return 0, nil
	}

	// Fast path: enough stock for the whole quantity.
	res, err := r.db.Exec(`
		UPDATE products SET stock = stock - ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND stock >= ?`, by, id, by)
	if err != nil {
		return 0, err
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return by, nil
	}

	// Not enough left at the time of the fast path. Re-read and decide
	// again: stock may have been drained further, restocked, or anything
	// in between, so every branch is guarded against a concurrent write.
	for {
		var stock int
		if err := r.db.Get(&stock, `SELECT stock FROM products WHERE id = ?`, id); err != nil {
			return 0, err
		}
		if stock <= 0 {
			return 0, domain.ErrInsufficientStock
		}
		if stock >= by {
			// a restock landed since the fast path; take exactly "by",
			// never the whole restocked quantity
			res, err := r.db.Exec(`
				UPDATE products SET stock = stock - ?, updated_at = CURRENT_TIMESTAMP
				WHERE id = ? AND stock >= ?`, by, id, by)
			if err != nil {
				return 0, err
			}
			if n, _ := res.RowsAffected(); n == 1 {
				return by, nil
			}
			continue
		}
		// 0 < stock < by: take whatever remains, guarded so a concurrent
		// write cannot be overwritten.
		res, err := r.db.Exec(`
			UPDATE products SET stock = 0, updated_at = CURRENT_TIMESTAMP
			WHERE id = ? AND stock = ?`, id, stock)
		if err != nil {
			return 0, err
		}
		if n, _ := res.RowsAffected(); n == 1 {
			return stock, nil
		}
	}
}
