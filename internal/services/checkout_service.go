package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/repos"
)

var ErrEmptyCart = errors.New("cart is empty")

// CheckoutService turns a non-empty cart into a persisted sale and
// adjusts inventory. The sale and the per-product stock updates are
// separate writes with no cross-row transaction: on a failure partway
// through, already-applied decrements are not rolled back and the error
// is surfaced as-is. The caller clears the cart only on full success.
type CheckoutService struct {
	Sales    *repos.SaleRepo
	Products *repos.ProductRepo
}

func NewCheckoutService(sales *repos.SaleRepo, products *repos.ProductRepo) *CheckoutService {
	return &CheckoutService{Sales: sales, Products: products}
}

// Checkout persists the sale, then decrements stock per line in cart
// insertion order. activeShop may be nil. The returned Sale carries the
// store-assigned id even when a stock update failed afterwards, so the
// caller can still point the user at the recorded sale.
func (s *CheckoutService) Checkout(cart *domain.Cart, user *domain.User, activeShop *domain.Shop) (domain.Sale, error) {
	if cart.Len() == 0 {
		return domain.Sale{}, ErrEmptyCart
	}

	// one captured instant, UTC, so the invoice's day can never disagree
	// with the stored date's day across midnight
	now := time.Now().UTC()
	sale := domain.Sale{
		UserID:        user.ID,
		Items:         cart.Lines(), // snapshot: later cart mutation must not touch the sale
		Total:         cart.Total(),
		Date:          now.Format(time.RFC3339),
		PaymentMethod: "cash",
		InvoiceNumber: invoiceNumber(now),
	}
	if activeShop != nil {
		sale.ShopID = activeShop.ID
	}

	id, err := s.Sales.Create(sale)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("persist sale: %w", err)
	}
	sale.ID = id

	for _, line := range sale.Items {
		if _, err := s.Products.DecrementStock(line.ProductID, line.Qty); err != nil {
			// Sale is recorded, earlier lines are decremented; no rollback.
			return sale, fmt.Errorf("update stock for %q: %w", line.Name, err)
		}
	}

	return sale, nil
}

// invoiceNumber builds INV-YYYYMMDD-NNNN with a random 4-digit suffix.
// Uniqueness is statistical, not enforced: a same-day collision is
// possible but rare.
func invoiceNumber(t time.Time) string {
	return fmt.Sprintf("INV-%s-%04d", t.Format("20060102"), rand.Intn(10000))
}
