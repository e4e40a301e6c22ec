package inquiry

import (
	"database/sql"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

func (r *Repository) Create(i Inquiry) error {
	_, err := r.db.Exec(`INSERT INTO sponsor_inquiry (id, name, company, email, message, created_at) VALUES ($1, $2, $3, $4, $5, NOW())`, i.ID, i.Name, i.Company, i.Email, i.Message)
	return err
}

// All returns every inquiry, newest first
func (r *Repository) All() ([]Inquiry, error) {
	all := make([]Inquiry, 0)
	rows, err := r.db.Query(`SELECT id, name, company, email, message, created_at FROM sponsor_inquiry ORDER BY created_at DESC`)
	if err == sql.ErrNoRows {
		return all, nil
	}
	if err != nil {
		return all, err
	}
	defer rows.Close()
	for rows.Next() {
		var i Inquiry
		if err := rows.Scan(&i.ID, &i.Name, &i.Company, &i.Email, &i.Message, &i.CreatedAt); err != nil {
			return all, err
		}
		all = append(all, i)
	}

	return all, nil
}

func (r *Repository) GetByID(id string) (Inquiry, error) {
	var i Inquiry
	row := r.db.QueryRow(`SELECT id, name, company, email, message, created_at FROM sponsor_inquiry WHERE id = $1`, id)
	if err := row.Scan(&i.ID, &i.Name, &i.Company, &i.Email, &i.Message, &i.CreatedAt); err != nil {
		return i, err
	}

	return i, nil
}

func (r *Repository) Update(i Inquiry) error {
	res, err := r.db.Exec(`UPDATE sponsor_inquiry SET name = $1, company = $2, email = $3, message = $4 WHERE id = $5`, i.Name, i.Company, i.Email, i.Message, i.ID)
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

func (r *Repository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM sponsor_inquiry WHERE id = $1`, id)
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
