package services

import (
	"strings"

	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/repos"
)

// LowStockThreshold marks a product as running low.
const LowStockThreshold = 5

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

// List returns the user's catalog, filtered by a name substring when q
// is non-empty.
func (s *CatalogService) List(userID, q string) ([]domain.Product, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return s.Prods.ListByUser(userID)
	}
	return s.Prods.Search(userID, q)
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

func (s *CatalogService) Create(userID, name string, price int64, stock int) (string, error) {
	p, err := domain.NewProduct(userID, name, price, stock)
	if err != nil {
		return "", err
	}
	return s.Prods.Create(p)
}

// Update re-validates through the product constructor so an edit can
// never break the price/stock invariants either.
func (s *CatalogService) Update(id, userID, name string, price int64, stock int) error {
	p, err := domain.NewProduct(userID, name, price, stock)
	if err != nil {
		return err
	}
	return s.Prods.Update(id, p.Name, p.Price, p.Stock)
}

func (s *CatalogService) Delete(id string) error {
	return s.Prods.Delete(id)
}

func (s *CatalogService) LowStock(userID string) ([]domain.Product, error) {
	return s.Prods.LowStock(userID, LowStockThreshold)
}
