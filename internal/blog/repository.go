package blog

import (
	"database/sql"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

func (r *Repository) Create(bp BlogPost) error {
	_, err := r.db.Exec(`INSERT INTO blog_post (id, author_name, heading, slug, description, image_url, created_at) VALUES ($1, $2, $3, $4, $5, $6, NOW())`, bp.ID, bp.AuthorName, bp.Heading, bp.Slug, bp.Description, bp.ImageURL)
	return err
}

// All returns every blog post, newest first
func (r *Repository) All() ([]BlogPost, error) {
	all := make([]BlogPost, 0)
	rows, err := r.db.Query(`SELECT id, author_name, heading, slug, description, image_url, created_at FROM blog_post ORDER BY created_at DESC`)
	if err == sql.ErrNoRows {
		return all, nil
	}
	if err != nil {
		return all, err
	}
	defer rows.Close()
	for rows.Next() {
		var bp BlogPost
		if err := rows.Scan(&bp.ID, &bp.AuthorName, &bp.Heading, &bp.Slug, &bp.Description, &bp.ImageURL, &bp.CreatedAt); err != nil {
			return all, err
		}
		all = append(all, bp)
	}

	return all, nil
}

func (r *Repository) GetByID(id string) (BlogPost, error) {
	var bp BlogPost
	row := r.db.QueryRow(`SELECT id, author_name, heading, slug, description, image_url, created_at FROM blog_post WHERE id = $1`, id)
	if err := row.Scan(&bp.ID, &bp.AuthorName, &bp.Heading, &bp.Slug, &bp.Description, &bp.ImageURL, &bp.CreatedAt); err != nil {
		return bp, err
	}

	return bp, nil
}

// Update overwrites every client-settable field; sql.ErrNoRows when id is unknown
func (r *Repository) Update(bp BlogPost) error {
	res, err := r.db.Exec(`UPDATE blog_post SET author_name = $1, heading = $2, slug = $3, description = $4, image_url = $5 WHERE id = $6`, bp.AuthorName, bp.Heading, bp.Slug, bp.Description, bp.ImageURL, bp.ID)
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

// Delete removes the post and returns it, sql.ErrNoRows when id is unknown
func (r *Repository) Delete(id string) (BlogPost, error) {
	var bp BlogPost
	row := r.db.QueryRow(`DELETE FROM blog_post WHERE id = $1 RETURNING id, author_name, heading, slug, description, image_url, created_at`, id)
	if err := row.Scan(&bp.ID, &bp.AuthorName, &bp.Heading, &bp.Slug, &bp.Description, &bp.ImageURL, &bp.CreatedAt); err != nil {
		return bp, err
	}

	return bp, nil
}
