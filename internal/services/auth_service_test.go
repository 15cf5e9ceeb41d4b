package services_test

import (
	"errors"
	"testing"

	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/services"
)

func newAuth(env *testEnv) *services.AuthService {
	return &services.AuthService{Users: env.Users, Shops: env.Shops}
}

func TestLoginSeededAccount(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuth(env)

	u, err := auth.Login("sid-1", "awa@posburkina.test", "Passw0rd!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.Tier != domain.TierStarter {
		t.Fatalf("want starter tier, got %s", u.Tier)
	}

	cur, err := auth.CurrentUser("sid-1")
	if err != nil {
		t.Fatalf("session not bound: %v", err)
	}
	if cur.ID != u.ID {
		t.Fatalf("session user mismatch: %s vs %s", cur.ID, u.ID)
	}
}

func TestLoginBadPassword(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuth(env)

	if _, err := auth.Login("sid-1", "awa@posburkina.test", "wrong"); !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("want ErrBadCreds, got %v", err)
	}
	if _, err := auth.Login("sid-1", "nobody@posburkina.test", "Passw0rd!"); !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("want ErrBadCreds for unknown email, got %v", err)
	}
}

func TestRegisterCreatesUserShopAndSession(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuth(env)

	u, err := auth.Register("sid-new", "sali@posburkina.test", "Secr3t!", "Kiosque Sali", domain.TierBusiness)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Tier != domain.TierBusiness || u.ShopName != "Kiosque Sali" {
		t.Fatalf("bad user: %+v", u)
	}

	shop, err := env.Shops.Active(u.ID)
	if err != nil {
		t.Fatalf("first shop missing: %v", err)
	}
	if shop.Name != "Kiosque Sali" {
		t.Fatalf("shop name: got %q", shop.Name)
	}

	cur, err := auth.CurrentUser("sid-new")
	if err != nil || cur.ID != u.ID {
		t.Fatalf("session not bound after register: %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuth(env)

	_, err := auth.Register("sid-x", "awa@posburkina.test", "Secr3t!", "Autre", domain.TierStarter)
	if !errors.Is(err, services.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestRegisterDefaultsInvalidTierToStarter(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuth(env)

	u, err := auth.Register("sid-y", "moussa@posburkina.test", "Secr3t!", "Kiosque Moussa", domain.Tier("gold"))
	if err != nil {
		t.Fatal(err)
	}
	if u.Tier != domain.TierStarter {
		t.Fatalf("want starter fallback, got %s", u.Tier)
	}
}

func TestLogoutUnbindsSession(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuth(env)

	if _, err := auth.Login("sid-1", "awa@posburkina.test", "Passw0rd!"); err != nil {
		t.Fatal(err)
	}
	if err := auth.Logout("sid-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := auth.CurrentUser("sid-1"); err == nil {
		t.Fatal("session should be gone after logout")
	}
}
