package newsletter

import (
	"database/sql"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

func (r *Repository) Subscribe(s Subscriber) error {
	_, err := r.db.Exec(`INSERT INTO newsletter_subscriber (id, email, created_at) VALUES ($1, $2, NOW())`, s.ID, s.Email)
	return err
}

func (r *Repository) Subscribers() ([]Subscriber, error) {
	all := make([]Subscriber, 0)
	rows, err := r.db.Query(`SELECT id, email, created_at FROM newsletter_subscriber`)
	if err == sql.ErrNoRows {
		return all, nil
	}
	if err != nil {
		return all, err
	}
	defer rows.Close()
	for rows.Next() {
		var s Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return all, err
		}
		all = append(all, s)
	}

	return all, nil
}

// Unsubscribe removes a subscriber by natural key, sql.ErrNoRows when the
// email was never subscribed
func (r *Repository) Unsubscribe(email string) error {
	res, err := r.db.Exec(`DELETE FROM newsletter_subscriber WHERE email = $1`, email)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
