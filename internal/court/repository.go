package court

import (
	"database/sql"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

func (r *Repository) Create(c Court) error {
	_, err := r.db.Exec(`INSERT INTO court (id, name, location, country, number_of_courts, contact, description, lat, lng, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())`,
		c.ID, c.Name, c.Location, c.Country, c.NumberOfCourts, c.Contact, c.Description, c.Coords[0], c.Coords[1])
	return err
}

func (r *Repository) All() ([]Court, error) {
	return r.query(`SELECT id, name, location, country, number_of_courts, contact, description, lat, lng, created_at FROM court ORDER BY created_at DESC`)
}

// Filter narrows by minimum court count and country
func (r *Repository) Filter(minCourts int, country string) ([]Court, error) {
	return r.query(`SELECT id, name, location, country, number_of_courts, contact, description, lat, lng, created_at FROM court WHERE number_of_courts >= $1 AND ($2 = '' OR country = $2) ORDER BY created_at DESC`, minCourts, country)
}

func (r *Repository) query(q string, args ...interface{}) ([]Court, error) {
	all := make([]Court, 0)
	rows, err := r.db.Query(q, args...)
	if err == sql.ErrNoRows {
		return all, nil
	}
	if err != nil {
		return all, err
	}
	defer rows.Close()
	for rows.Next() {
		var c Court
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Country, &c.NumberOfCourts, &c.Contact, &c.Description, &c.Coords[0], &c.Coords[1], &c.CreatedAt); err != nil {
			return all, err
		}
		all = append(all, c)
	}

	return all, nil
}

func (r *Repository) GetByID(id string) (Court, error) {
	var c Court
	row := r.db.QueryRow(`SELECT id, name, location, country, number_of_courts, contact, description, lat, lng, created_at FROM court WHERE id = $1`, id)
	if err := row.Scan(&c.ID, &c.Name, &c.Location, &c.Country, &c.NumberOfCourts, &c.Contact, &c.Description, &c.Coords[0], &c.Coords[1], &c.CreatedAt); err != nil {
		return c, err
	}

	return c, nil
}

func (r *Repository) Update(c Court) error {
	res, err := r.db.Exec(`UPDATE court SET name = $1, location = $2, country = $3, number_of_courts = $4, contact = $5, description = $6, lat = $7, lng = $8 WHERE id = $9`,
		c.Name, c.Location, c.Country, c.NumberOfCourts, c.Contact, c.Description, c.Coords[0], c.Coords[1], c.ID)
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
	res, err := r.db.Exec(`DELETE FROM court WHERE id = $1`, id)
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
