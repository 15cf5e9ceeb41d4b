package repos_test

import (
	"errors"
	"testing"

	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/repos"
)

func openTestDB(t *testing.T) *repos.ProductRepo {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return repos.NewProductRepo(db)
}

func TestDecrementStockFastPath(t *testing.T) {
	prods := openTestDB(t)

	// seeded Riz 5kg has stock 10
	applied, err := prods.DecrementStock("p-riz5", 2)
	if err != nil {
		t.Fatal(err)
	}
	if applied != 2 {
		t.Fatalf("want applied=2, got %d", applied)
	}
	p, err := prods.Get("p-riz5")
	if err != nil {
		t.Fatal(err)
	}
	if p.Stock != 8 {
		t.Fatalf("want stock=8, got %d", p.Stock)
	}
}

func TestDecrementStockClampsAtZero(t *testing.T) {
	prods := openTestDB(t)

	// asking for more than remains takes what is left, never negative
	applied, err := prods.DecrementStock("p-sucre1", 20) // stock 3
	if err != nil {
		t.Fatal(err)
	}
	if applied != 3 {
		t.Fatalf("want applied=3, got %d", applied)
	}
	p, _ := prods.Get("p-sucre1")
	if p.Stock != 0 {
		t.Fatalf("want stock=0, got %d", p.Stock)
	}
}

func TestDecrementStockRejectsWhenEmpty(t *testing.T) {
	prods := openTestDB(t)

	// seeded Thé vert has stock 0; a second seller racing for the last
	// unit lands here and must be rejected, not silently clamped
	_, err := prods.DecrementStock("p-the", 1)
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("want ErrInsufficientStock, got %v", err)
	}
}

// A restock landing between the fast-path miss and the fallback must
// not be drained wholesale: a decrement of 2 takes 2 units, whatever
// the stock was restocked to in the meantime.
func TestDecrementStockNeverExceedsRequestedUnderRestock(t *testing.T) {
	prods := openTestDB(t)

	for i := 0; i < 300; i++ {
		if err := prods.Update("p-riz5", "Riz 5kg", 2500, 1); err != nil {
			t.Fatal(err)
		}
		done := make(chan struct{})
		go func() {
			_ = prods.Update("p-riz5", "Riz 5kg", 2500, 50)
			close(done)
		}()

		applied, err := prods.DecrementStock("p-riz5", 2)
		<-done
		if err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
		if applied > 2 {
			t.Fatalf("iteration %d: decrement of 2 took %d units", i, applied)
		}
	}
}

func TestCreateGetRoundtrip(t *testing.T) {
	prods := openTestDB(t)

	p, err := domain.NewProduct("u-awa", "Lait en poudre", 3500, 4)
	if err != nil {
		t.Fatal(err)
	}
	id, err := prods.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	got, err := prods.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Lait en poudre" || got.Price != 3500 || got.Stock != 4 {
		t.Fatalf("bad roundtrip: %+v", got)
	}
}

func TestSearchFiltersByName(t *testing.T) {
	prods := openTestDB(t)

	out, err := prods.Search("u-awa", "riz")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].ID != "p-riz5" {
		t.Fatalf("want only Riz 5kg, got %+v", out)
	}
}

func TestLowStock(t *testing.T) {
	prods := openTestDB(t)

	low, err := prods.LowStock("u-awa", 5)
	if err != nil {
		t.Fatal(err)
	}
	// seeded: Sucre 1kg (3) and Thé vert (0)
	if len(low) != 2 {
		t.Fatalf("want 2 low-stock products, got %d", len(low))
	}
}
