package instagram

import (
	"database/sql"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

func (r *Repository) Create(l Link) error {
	_, err := r.db.Exec(`INSERT INTO instagram_link (id, url, title) VALUES ($1, $2, $3)`, l.ID, l.URL, l.Title)
	return err
}

func (r *Repository) All() ([]Link, error) {
	all := make([]Link, 0)
	rows, err := r.db.Query(`SELECT id, url, title FROM instagram_link`)
	if err == sql.ErrNoRows {
		return all, nil
	}
	if err != nil {
		return all, err
	}
	defer rows.Close()
	for rows.Next() {
		var l Link
		if err := rows.Scan(&l.ID, &l.URL, &l.Title); err != nil {
			return all, err
		}
		all = append(all, l)
	}

	return all, nil
}

func (r *Repository) Update(l Link) error {
	res, err := r.db.Exec(`UPDATE instagram_link SET url = $1 WHERE id = $2`, l.URL, l.ID)
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

func (r *Repository) UpdateTitle(id, title string) error {
	_, err := r.db.Exec(`UPDATE instagram_link SET title = $1 WHERE id = $2`, title, id)
	return err
}

// Delete removes the link and returns it, sql.ErrNoRows when id is unknown
func (r *Repository) Delete(id string) (Link, error) {
	var l Link
	row := r.db.QueryRow(`DELETE FROM instagram_link WHERE id = $1 RETURNING id, url, title`, id)
	if err := row.Scan(&l.ID, &l.URL, &l.Title); err != nil {
		return l, err
	}

	return l, nil
}
