package repos

import (
	"errors"
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	"modernc.org/sqlite"
)

// IsUniqueViolation reports whether err is a sqlite UNIQUE-constraint
// failure, so callers can turn raced duplicate inserts into their own
// domain errors.
func IsUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == 2067 // SQLITE_CONSTRAINT_UNIQUE
}

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if dsn == ":memory:" {
		// an in-memory sqlite database exists per connection
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Demo accounts, shops and a small catalog (idempotent; safe to run
	// every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}
	if err := seedCatalog(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  tier TEXT NOT NULL DEFAULT 'starter' CHECK (tier IN ('starter','business','premium')),
  shop_name TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL DEFAULT '',
  address TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);

-- Shops
CREATE TABLE IF NOT EXISTS shops(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  address TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_shops_user ON shops(user_id);

-- Products (prices and totals are integer FCFA)
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  price INTEGER NOT NULL CHECK (price > 0),
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_user ON products(user_id);
CREATE INDEX IF NOT EXISTS idx_products_name ON products(LOWER(name));
CREATE INDEX IF NOT EXISTS idx_products_stock ON products(stock);

-- Sales (immutable once written)
CREATE TABLE IF NOT EXISTS sales(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id),
  shop_id TEXT NULL REFERENCES shops(id),
  total INTEGER NOT NULL,
  date TEXT NOT NULL,
  payment_method TEXT NOT NULL DEFAULT 'cash',
  invoice_number TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sales_user_date ON sales(user_id, date);

CREATE TABLE IF NOT EXISTS sale_items(
  sale_id TEXT NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
  pos INTEGER NOT NULL,              -- cart insertion order
  product_id TEXT NOT NULL,
  name TEXT NOT NULL,
  price INTEGER NOT NULL,
  qty INTEGER NOT NULL CHECK (qty >= 1),
  PRIMARY KEY (sale_id, pos)
);
`
	_, err := db.Exec(schema)
	return err
}

// seedUsers ensures one demo account per tier exists (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Tier, ShopName, Hash string
	}
	mk := func(id, email, tier, shopName, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Tier: tier, ShopName: shopName, Hash: string(h)}
	}

	users := []u{
		mk("u-awa", "awa@posburkina.test", "starter", "Boutique Awa", "Passw0rd!"),
		mk("u-issa", "issa@posburkina.test", "business", "Alimentation Issa", "Passw0rd!"),
		mk("u-fanta", "fanta@posburkina.test", "premium", "Marché Fanta", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,password_hash,tier,shop_name)
			VALUES(?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Hash, x.Tier, x.ShopName); err != nil {
			return err
		}
		if _, err := tx.Exec(`
			INSERT INTO shops(id,user_id,name)
			SELECT 'shop-'||?, ?, ?
			WHERE NOT EXISTS (SELECT 1 FROM shops WHERE user_id = ?)
		`, x.ID, x.ID, x.ShopName, x.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// seedCatalog inserts a small demo catalog for the starter account if
// it has no products yet.
func seedCatalog(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products WHERE user_id = 'u-awa'`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(id,user_id,name,price,stock) VALUES
	  ('p-riz5',   'u-awa', 'Riz 5kg',            2500, 10),
	  ('p-huile1', 'u-awa', 'Huile végétale 1L',  1200,  6),
	  ('p-savon',  'u-awa', 'Savon de Marseille',  300, 25),
	  ('p-sucre1', 'u-awa', 'Sucre 1kg',           600,  3),
	  ('p-the',    'u-awa', 'Thé vert 250g',       500,  0)`)

	return tx.Commit()
}
