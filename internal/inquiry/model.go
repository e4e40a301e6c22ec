package inquiry

import "time"

// Inquiry is a sponsorship request submitted through the public form
type Inquiry struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Company            string    `json:"company"`
	Email              string    `json:"email"`
	Message            string    `json:"message"`
	CreatedAt          time.Time `json:"createdAt"`
	CreatedAtHumanized string    `json:"createdAtHumanized,omitempty"`
}

type InquiryRq struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
