package services

import (
	"errors"
	"strings"

	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCreds   = errors.New("invalid email or password")
	ErrEmailTaken = errors.New("email already registered")
)

type AuthService struct {
	Users *repos.UserRepo
	Shops *repos.ShopRepo
}

func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

// Register creates the account and its first shop, then binds the
// session. The chosen tier is written before anything is rendered so a
// fresh login never flashes the starter UI.
func (s *AuthService) Register(sid, email, password, shopName string, tier domain.Tier) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if !tier.Valid() {
		tier = domain.TierStarter
	}
	if existing, err := s.Users.ByEmail(email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}
	id, err := s.Users.Create(email, string(hash), tier, shopName)
	if repos.IsUniqueViolation(err) {
		// a concurrent registration won the race after the ByEmail check
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	if _, err := s.Shops.Create(id, shopName); err != nil {
		return nil, err
	}
	if err := s.Users.BindSession(sid, id); err != nil {
		return nil, err
	}
	return s.Users.ByID(id)
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}
