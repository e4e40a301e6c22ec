package tournament

import (
	"database/sql"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

const selectColumns = `id, name, organizer, location, country, continent, tier, start_date, end_date, image_url, description, lat, lng, status, created_at`

func scanTournament(s interface {
	Scan(dest ...interface{}) error
}) (Tournament, error) {
	var t Tournament
	err := s.Scan(&t.ID, &t.Name, &t.Organizer, &t.Location, &t.Country, &t.Continent, &t.Tier, &t.StartDate, &t.EndDate, &t.ImageURL, &t.Description, &t.LocationCoords[0], &t.LocationCoords[1], &t.Status, &t.CreatedAt)
	return t, err
}

func (r *Repository) Create(t Tournament) error {
	_, err := r.db.Exec(`INSERT INTO tournament (id, name, organizer, location, country, continent, tier, start_date, end_date, image_url, description, lat, lng, status, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())`,
		t.ID, t.Name, t.Organizer, t.Location, t.Country, t.Continent, t.Tier, t.StartDate, t.EndDate, t.ImageURL, t.Description, t.LocationCoords[0], t.LocationCoords[1], t.Status)
	return err
}

// All returns every tournament, newest first
func (r *Repository) All() ([]Tournament, error) {
	all := make([]Tournament, 0)
	rows, err := r.db.Query(`SELECT ` + selectColumns + ` FROM tournament ORDER BY created_at DESC`)
	if err == sql.ErrNoRows {
		return all, nil
	}
	if err != nil {
		return all, err
	}
	defer rows.Close()
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return all, err
		}
		all = append(all, t)
	}

	return all, nil
}

func (r *Repository) ByStatus(status string) ([]Tournament, error) {
	all := make([]Tournament, 0)
	rows, err := r.db.Query(`SELECT `+selectColumns+` FROM tournament WHERE status = $1 ORDER BY created_at DESC`, status)
	if err == sql.ErrNoRows {
		return all, nil
	}
	if err != nil {
		return all, err
	}
	defer rows.Close()
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return all, err
		}
		all = append(all, t)
	}

	return all, nil
}

func (r *Repository) GetByID(id string) (Tournament, error) {
	row := r.db.QueryRow(`SELECT `+selectColumns+` FROM tournament WHERE id = $1`, id)
	return scanTournament(row)
}

func (r *Repository) Update(t Tournament) error {
	res, err := r.db.Exec(`UPDATE tournament SET name = $1, organizer = $2, location = $3, country = $4, continent = $5, tier = $6, start_date = $7, end_date = $8, image_url = $9, description = $10, lat = $11, lng = $12 WHERE id = $13`,
		t.Name, t.Organizer, t.Location, t.Country, t.Continent, t.Tier, t.StartDate, t.EndDate, t.ImageURL, t.Description, t.LocationCoords[0], t.LocationCoords[1], t.ID)
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
	res, err := r.db.Exec(`UPDATE tournament SET status = $1 WHERE id = $2`, status, id)
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
	res, err := r.db.Exec(`DELETE FROM tournament WHERE id = $1`, id)
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
