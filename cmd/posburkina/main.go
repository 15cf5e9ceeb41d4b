package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/config"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/http/handlers"
	applog "github.com/akabdoulsankara34-dev/POS-Burkina/internal/log"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/repos"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth and session-cart wiring
	userRepo := repos.NewUserRepo(db)
	shopRepo := repos.NewShopRepo(db)
	authSvc := &services.AuthService{Users: userRepo, Shops: shopRepo}
	carts := services.NewCartStore()
	authH := &handlers.AuthHandler{Auth: authSvc, Carts: carts}

	// Templates & app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and show a friendly message
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Une erreur est survenue. Veuillez réessayer.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Une erreur est survenue. Veuillez réessayer.")
			}
			return nil
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach user to context if logged in (for templates/headers)
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			formTok := c.FormValue("csrf")
			applog.Security(c, "csrf.fail", map[string]any{"form": formTok})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Vérification de sécurité échouée. Rechargez la page et réessayez."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, carts)

	// Auth routes (login throttled)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Trop de tentatives. Réessayez plus tard."})
		},
	}), authH.Login)
	app.Get("/register", authH.RegisterForm)
	app.Post("/register", authH.Register)
	app.Post("/logout", authH.Logout)

	// POS: catalog grid, cart, checkout, receipt
	app.Get("/", handlers.RequireUser(authSvc), deps.POSHandler.Home)
	app.Post("/cart", handlers.RequireUser(authSvc), deps.POSHandler.CartAdd)
	app.Post("/cart/remove", handlers.RequireUser(authSvc), deps.POSHandler.CartRemove)
	app.Post("/checkout", handlers.RequireUser(authSvc), deps.POSHandler.PlaceSale)
	app.Get("/receipt/:id", handlers.RequireUser(authSvc), deps.POSHandler.Receipt)

	// Catalog management
	app.Get("/products", handlers.RequireUser(authSvc), deps.ProductHandler.List)
	app.Post("/products", handlers.RequireUser(authSvc), deps.ProductHandler.Create)
	app.Post("/products/:id", handlers.RequireUser(authSvc), deps.ProductHandler.Update)
	app.Post("/products/:id/delete", handlers.RequireUser(authSvc), deps.ProductHandler.Delete)

	// History & dashboard
	app.Get("/history", handlers.RequireUser(authSvc), deps.HistoryHandler.List)
	app.Get("/dashboard", handlers.RequireFeature(authSvc, domain.FeatureDashboardStats), deps.HistoryHandler.Dashboard)

	// Settings, tier upgrade, multi-shop
	app.Get("/settings", handlers.RequireUser(authSvc), deps.SettingsHandler.Page)
	app.Post("/settings", handlers.RequireUser(authSvc), deps.SettingsHandler.Save)
	app.Post("/settings/tier", handlers.RequireUser(authSvc), deps.SettingsHandler.UpgradeTier)
	app.Post("/shops", handlers.RequireFeature(authSvc, domain.FeatureMultiShop), deps.SettingsHandler.AddShop)

	// Export
	app.Get("/export", handlers.RequireFeature(authSvc, domain.FeatureExports), deps.ExportHandler.Sales)

	// API
	api := app.Group("/api/v1")
	stockLimiter := limiter.New(limiter.Config{
		Max:        15,
		Expiration: 30 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|stock"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.stock.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	})
	api.Get("/stock", stockLimiter, handlers.RequireUser(authSvc), deps.StockHandler.Check)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page introuvable"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
