package club

import (
	"database/sql"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

const selectColumns = `id, name, email, contact, status, location, country, booking_link, club_image_url, logo_image_url, description, lat, lng, created_at`

func scanClub(s interface {
	Scan(dest ...interface{}) error
}) (Club, error) {
	var c Club
	err := s.Scan(&c.ID, &c.Name, &c.Email, &c.Contact, &c.Status, &c.Location, &c.Country, &c.BookingLink, &c.ClubImageURL, &c.LogoImageURL, &c.Description, &c.Coords[0], &c.Coords[1], &c.CreatedAt)
	return c, err
}

func (r *Repository) Create(c Club) error {
	_, err := r.db.Exec(`INSERT INTO club (id, name, email, contact, status, location, country, booking_link, club_image_url, logo_image_url, description, lat, lng, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())`,
		c.ID, c.Name, c.Email, c.Contact, c.Status, c.Location, c.Country, c.BookingLink, c.ClubImageURL, c.LogoImageURL, c.Description, c.Coords[0], c.Coords[1])
	return err
}

func (r *Repository) All() ([]Club, error) {
	return r.query(`SELECT ` + selectColumns + ` FROM club ORDER BY created_at DESC`)
}

// Filter narrows by country and status, empty values match everything
func (r *Repository) Filter(country, status string) ([]Club, error) {
	return r.query(`SELECT `+selectColumns+` FROM club WHERE ($1 = '' OR country = $1) AND ($2 = '' OR status = $2) ORDER BY created_at DESC`, country, status)
}

func (r *Repository) query(q string, args ...interface{}) ([]Club, error) {
	all := make([]Club, 0)
	rows, err := r.db.Query(q, args...)
	if err == sql.ErrNoRows {
		return all, nil
	}
	if err != nil {
		return all, err
	}
	defer rows.Close()
	for rows.Next() {
		c, err := scanClub(rows)
		if err != nil {
			return all, err
		}
		all = append(all, c)
	}

	return all, nil
}

func (r *Repository) GetByID(id string) (Club, error) {
	row := r.db.QueryRow(`SELECT `+selectColumns+` FROM club WHERE id = $1`, id)
	return scanClub(row)
}

func (r *Repository) Update(c Club) error {
	res, err := r.db.Exec(`UPDATE club SET name = $1, email = $2, contact = $3, location = $4, country = $5, booking_link = $6, club_image_url = $7, logo_image_url = $8, description = $9, lat = $10, lng = $11 WHERE id = $12`,
		c.Name, c.Email, c.Contact, c.Location, c.Country, c.BookingLink, c.ClubImageURL, c.LogoImageURL, c.Description, c.Coords[0], c.Coords[1], c.ID)
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

func (r *Repository) UpdateStatus(id, status string) error {
	res, err := r.db.Exec(`UPDATE club SET status = $1 WHERE id = $2`, status, id)
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
	res, err := r.db.Exec(`DELETE FROM club WHERE id = $1`, id)
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
