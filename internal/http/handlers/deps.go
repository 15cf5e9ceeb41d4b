package handlers

import (
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/config"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/repos"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	POSHandler      *POSHandler
	ProductHandler  *ProductHandler
	HistoryHandler  *HistoryHandler
	SettingsHandler *SettingsHandler
	ExportHandler   *ExportHandler
	StockHandler    *StockHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, carts *services.CartStore) *Deps {
	userRepo := repos.NewUserRepo(db)
	shopRepo := repos.NewShopRepo(db)
	prodRepo := repos.NewProductRepo(db)
	saleRepo := repos.NewSaleRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	checkoutSvc := services.NewCheckoutService(saleRepo, prodRepo)
	historySvc := services.NewHistoryService(saleRepo)

	return &Deps{
		POSHandler: &POSHandler{
			Catalog:  catalogSvc,
			Checkout: checkoutSvc,
			Carts:    carts,
			Shops:    shopRepo,
			Sales:    saleRepo,
		},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		HistoryHandler:  &HistoryHandler{History: historySvc, Catalog: catalogSvc},
		SettingsHandler: &SettingsHandler{Users: userRepo, Shops: shopRepo},
		ExportHandler:   &ExportHandler{History: historySvc},
		StockHandler:    &StockHandler{Catalog: catalogSvc},
	}
}
