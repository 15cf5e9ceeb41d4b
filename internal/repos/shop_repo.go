package repos

import (
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ShopRepo struct{ db *sqlx.DB }

func NewShopRepo(db *sqlx.DB) *ShopRepo { return &ShopRepo{db: db} }

// Active returns the session's active shop: the first one found for the
// user if several exist, nil if none.
func (r *ShopRepo) Active(userID string) (*domain.Shop, error) {
	var s domain.Shop
	err := r.db.Get(&s, `
		SELECT id,user_id,name,address,phone,created_at
		FROM shops WHERE user_id=?
		ORDER BY datetime(created_at), id
		LIMIT 1`, userID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShopRepo) ListByUser(userID string) ([]domain.Shop, error) {
	var out []domain.Shop
	err := r.db.Select(&out, `
		SELECT id,user_id,name,address,phone,created_at
		FROM shops WHERE user_id=?
		ORDER BY datetime(created_at), id`, userID)
	return out, err
}

func (r *ShopRepo) Create(userID, name string) (string, error) {
	id := uuid.NewString()
	_, err := r.db.Exec(`INSERT INTO shops(id,user_id,name) VALUES(?,?,?)`, id, userID, name)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *ShopRepo) Update(id, name, address, phone string) error {
	_, err := r.db.Exec(`UPDATE shops SET name=?, address=?, phone=? WHERE id=?`, name, address, phone, id)
	return err
}
