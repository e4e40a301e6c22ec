package newsletter

import "time"

type Subscriber struct {
	ID        string    `json:"-"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"-"`
}

type SubscribeRq struct {
	Email string `json:"email"`
}
