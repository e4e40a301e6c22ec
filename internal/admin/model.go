package admin

import "time"

// Admin is a staff account. PasswordHash is a bcrypt digest and is never
// serialized back to clients.
type Admin struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type SignupRq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
