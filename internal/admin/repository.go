package admin

import (
	"database/sql"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

func (r *Repository) Create(a Admin) error {
	_, err := r.db.Exec(`INSERT INTO admin_account (id, name, email, password_hash, created_at) VALUES ($1, $2, $3, $4, NOW())`, a.ID, a.Name, a.Email, a.PasswordHash)
	return err
}

func (r *Repository) GetByEmail(email string) (Admin, error) {
	var a Admin
	row := r.db.QueryRow(`SELECT id, name, email, password_hash, created_at FROM admin_account WHERE email = $1`, email)
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
		return a, err
	}

	return a, nil
}
