package athlete

import (
	"database/sql"

	"github.com/lib/pq"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

const selectColumns = `id, name, age, gender, country, height_cm, points, titles_won, image_url, created_at`

func scanAthlete(s interface {
	Scan(dest ...interface{}) error
}) (Athlete, error) {
	var a Athlete
	err := s.Scan(&a.ID, &a.Name, &a.Age, &a.Gender, &a.Country, &a.HeightCm, &a.Points, pq.Array(&a.TitlesWon), &a.ImageURL, &a.CreatedAt)
	return a, err
}

func (r *Repository) Create(a Athlete) error {
	_, err := r.db.Exec(`INSERT INTO athlete (id, name, age, gender, country, height_cm, points, titles_won, image_url, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())`,
		a.ID, a.Name, a.Age, a.Gender, a.Country, a.HeightCm, a.Points, pq.Array(a.TitlesWon), a.ImageURL)
	return err
}

// All returns athletes, optionally filtered by gender and country. When
// sortByPoints is set the list comes back highest points first, otherwise
// newest first.
func (r *Repository) All(gender, country string, sortByPoints bool) ([]Athlete, error) {
	order := `created_at DESC`
	if sortByPoints {
		order = `points DESC`
	}
	all := make([]Athlete, 0)
	rows, err := r.db.Query(`SELECT `+selectColumns+` FROM athlete WHERE ($1 = '' OR gender = $1) AND ($2 = '' OR country = $2) ORDER BY `+order, gender, country)
	if err == sql.ErrNoRows {
		return all, nil
	}
	if err != nil {
		return all, err
	}
	defer rows.Close()
	for rows.Next() {
		a, err := scanAthlete(rows)
		if err != nil {
			return all, err
		}
		all = append(all, a)
	}

	return all, nil
}

func (r *Repository) GetByID(id string) (Athlete, error) {
	row := r.db.QueryRow(`SELECT `+selectColumns+` FROM athlete WHERE id = $1`, id)
	return scanAthlete(row)
}

func (r *Repository) Update(a Athlete) error {
	res, err := r.db.Exec(`UPDATE athlete SET name = $1, age = $2, gender = $3, country = $4, height_cm = $5, points = $6, titles_won = $7, image_url = $8 WHERE id = $9`,
		a.Name, a.Age, a.Gender, a.Country, a.HeightCm, a.Points, pq.Array(a.TitlesWon), a.ImageURL, a.ID)
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
	res, err := r.db.Exec(`DELETE FROM athlete WHERE id = $1`, id)
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
