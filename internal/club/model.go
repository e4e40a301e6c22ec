package club

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Club struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Contact      string    `json:"contact"`
	Status       string    `json:"status"`
	Location     string    `json:"location"`
	Country      string    `json:"country"`
	BookingLink  string    `json:"bookingLink,omitempty"`
	ClubImageURL string    `json:"clubImageUrl"`
	LogoImageURL string    `json:"logoImageUrl"`
	Description  string    `json:"description"`
	// Coords is [latitude, longitude]
	Coords    [2]float64 `json:"locationCoordinates"`
	CreatedAt time.Time  `json:"createdAt"`
}

type ClubRq struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Contact      string    `json:"contact"`
	Location     string    `json:"location"`
	Country      string    `json:"country"`
	BookingLink  string    `json:"bookingLink"`
	ClubImageURL string    `json:"clubImageUrl"`
	LogoImageURL string    `json:"logoImageUrl"`
	Description  string    `json:"description"`
	Coords       []float64 `json:"locationCoordinates"`
}

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}
