package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/http/handlers"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/repos"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/services"
)

// Minimal app for entitlement gate testing
func newGateApp(t *testing.T) (*fiber.App, *repos.UserRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo, Shops: repos.NewShopRepo(db)}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())

	ok := func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) }
	app.Get("/dashboard", handlers.RequireFeature(authSvc, domain.FeatureDashboardStats), ok)
	app.Get("/export", handlers.RequireFeature(authSvc, domain.FeatureExports), ok)
	app.Get("/future", handlers.RequireFeature(authSvc, "time_travel"), ok)
	return app, userRepo
}

func asUser(userID, sid string, t *testing.T, users *repos.UserRepo, target string) *http.Request {
	t.Helper()
	if err := users.BindSession(sid, userID); err != nil {
		t.Fatalf("bind session: %v", err)
	}
	req := httptest.NewRequest("GET", target, nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	return req
}

func TestFeatureGateDashboard(t *testing.T) {
	app, users := newGateApp(t)

	// Anonymous -> redirect to login
	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("anonymous: expected redirect, got %d", resp.StatusCode)
	}

	// Starter pack -> 403
	resp, err = app.Test(asUser("u-awa", "sid-awa", t, users, "/dashboard"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("starter: expected 403, got %d", resp.StatusCode)
	}

	// Business pack -> 200
	resp, err = app.Test(asUser("u-issa", "sid-issa", t, users, "/dashboard"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("business: expected 200, got %d", resp.StatusCode)
	}

	// Premium pack -> 200
	resp, err = app.Test(asUser("u-fanta", "sid-fanta", t, users, "/dashboard"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("premium: expected 200, got %d", resp.StatusCode)
	}
}

func TestFeatureGateExportsPremiumOnly(t *testing.T) {
	app, users := newGateApp(t)

	resp, err := app.Test(asUser("u-issa", "sid-issa", t, users, "/export"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("business: expected 403 on exports, got %d", resp.StatusCode)
	}

	resp, err = app.Test(asUser("u-fanta", "sid-fanta", t, users, "/export"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("premium: expected 200 on exports, got %d", resp.StatusCode)
	}
}

// An unknown feature key must deny everyone, premium included.
func TestFeatureGateUnknownKeyFailsClosed(t *testing.T) {
	app, users := newGateApp(t)

	resp, err := app.Test(asUser("u-fanta", "sid-fanta", t, users, "/future"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("unknown feature: expected 403, got %d", resp.StatusCode)
	}
}
