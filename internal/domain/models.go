package domain

import (
	"errors"
	"strings"
)

type User struct {
	ID       string `db:"id"`
	Email    string `db:"email"`
	Hash     string `db:"password_hash"`
	Tier     Tier   `db:"tier"`
	ShopName string `db:"shop_name"`
	Phone    string `db:"phone"`
	Address  string `db:"address"`
}

type Shop struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	Name      string `db:"name"`
	Address   string `db:"address"`
	Phone     string `db:"phone"`
	CreatedAt string `db:"created_at"`
}

// Product stock is mutated only by the checkout engine's decrement and
// by explicit restock edits.
type Product struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	Name      string `db:"name"`
	Price     int64  `db:"price"` // integer FCFA
	Stock     int    `db:"stock"`
	CreatedAt string `db:"created_at"`
}

// NewProduct validates product invariants at creation time rather than
// trusting whatever comes back from the store: non-empty name, positive
// price, non-negative stock. The id is assigned by the repo on insert.
func NewProduct(userID, name string, price int64, stock int) (Product, error) {
	name = strings.TrimSpace(name)
	if userID == "" {
		return Product{}, errors.New("product: missing owner")
	}
	if name == "" {
		return Product{}, errors.New("product: empty name")
	}
	if price <= 0 {
		return Product{}, errors.New("product: price must be positive")
	}
	if stock < 0 {
		return Product{}, errors.New("product: negative stock")
	}
	return Product{UserID: userID, Name: name, Price: price, Stock: stock}, nil
}

// Sale is immutable once persisted. Items are snapshots taken from the
// cart at checkout time; Total always equals the sum of the snapshots.
type Sale struct {
	ID            string `db:"id"`
	UserID        string `db:"user_id"`
	ShopID        string `db:"shop_id"` // empty means no shop (stored as NULL)
	Items         []CartLine
	Total         int64  `db:"total"`
	Date          string `db:"date"`
	PaymentMethod string `db:"payment_method"`
	InvoiceNumber string `db:"invoice_number"`
}
