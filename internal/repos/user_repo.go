package repos

import (
	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = `id,email,password_hash,tier,shop_name,phone,address`

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and returns the assigned id.
func (r *UserRepo) Create(email, hash string, tier domain.Tier, shopName string) (string, error) {
	id := uuid.NewString()
	_, err := r.DB.Exec(`
		INSERT INTO users(id,email,password_hash,tier,shop_name)
		VALUES(?,?,?,?,?)`, id, email, hash, tier, shopName)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *UserRepo) UpdateTier(id string, tier domain.Tier) error {
	_, err := r.DB.Exec(`UPDATE users SET tier=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`, tier, id)
	return err
}

func (r *UserRepo) UpdateSettings(id, shopName, phone, address string) error {
	_, err := r.DB.Exec(`
		UPDATE users SET shop_name=?, phone=?, address=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?`, shopName, phone, address, id)
	return err
}

func (r *UserRepo) BindSession(sid, userID string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,user_id,last_seen)
                          VALUES(?,?,CURRENT_TIMESTAMP)
                          ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id,last_seen=CURRENT_TIMESTAMP`, sid, userID)
	return err
}

func (r *UserRepo) SessionUser(sid string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
      SELECT u.id,u.email,u.password_hash,u.tier,u.shop_name,u.phone,u.address
      FROM sessions s
      JOIN users u ON u.id=s.user_id
      WHERE s.id=?`, sid)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET user_id=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
