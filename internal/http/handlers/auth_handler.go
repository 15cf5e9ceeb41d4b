package handlers

import (
	"errors"
	"time"

	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/log"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/services"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth  *services.AuthService
	Carts *services.CartStore
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // enable true behind TLS
		})
	}
	return sid
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Email ou mot de passe incorrect"})
	}
	if !validate.Password(pass) {
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_password_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Email ou mot de passe incorrect"})
	}

	_, err := h.Auth.Login(sid, email, pass)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("login", fiber.Map{"Err": "Email ou mot de passe incorrect"})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	sid := ensureSID(c)

	email, okEmail := validate.Email(c.FormValue("email"))
	pass := c.FormValue("password")
	shopName, okName := validate.Name(c.FormValue("shop_name"))
	tier := domain.ParseTier(c.FormValue("tier"))

	if !okEmail {
		return c.Status(400).Render("register", fiber.Map{"Err": "Email invalide"})
	}
	if !validate.Password(pass) {
		return c.Status(400).Render("register", fiber.Map{"Err": "Le mot de passe doit contenir au moins 6 caractères"})
	}
	if !okName {
		return c.Status(400).Render("register", fiber.Map{"Err": "Veuillez saisir le nom de la boutique"})
	}

	_, err := h.Auth.Register(sid, email, pass, shopName, tier)
	if errors.Is(err, services.ErrEmailTaken) {
		log.Security(c, "auth.register.fail", map[string]any{"email": email, "reason": "email_taken"})
		return c.Status(400).Render("register", fiber.Map{"Err": "Cet email est déjà utilisé"})
	}
	if err != nil {
		log.Error(c, "auth.register.fail", err, map[string]any{"email": email})
		return c.Status(500).Render("register", fiber.Map{"Err": "Erreur lors de la création du compte"})
	}

	log.Audit(c, "auth.register.success", map[string]any{"email": email, "tier": tier.String()})
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	h.Carts.Drop(sid)
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/login")
}
