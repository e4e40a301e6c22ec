package meta

import (
	"database/sql"
)

// KeyLastAnnouncedBlogPost tracks the id of the most recent blog post pushed
// to the Telegram channel
const KeyLastAnnouncedBlogPost = "last_announced_blog_post_id"

// Repository stores housekeeping key/value markers, such as the id of the
// last blog post announced on Telegram.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

func (r *Repository) GetValue(key string) (string, error) {
	var val string
	row := r.db.QueryRow(`SELECT value FROM meta WHERE key = $1`, key)
	if err := row.Scan(&val); err != nil {
		return "", err
	}

	return val, nil
}

func (r *Repository) SetValue(key, val string) error {
	_, err := r.db.Exec(`INSERT INTO meta (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = $2`, key, val)
	return err
}

func (r *Repository) DeleteValue(key string) error {
	_, err := r.db.Exec(`DELETE FROM meta WHERE key = $1`, key)
	return err
}
