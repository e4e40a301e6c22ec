package tournament

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Tournament struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Organizer   string    `json:"organizer"`
	Location    string    `json:"location"`
	Country     string    `json:"country"`
	Continent   string    `json:"continent"`
	Tier        int       `json:"tier"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	ImageURL    string    `json:"imageUrl"`
	Description string    `json:"description"`
	// LocationCoords is [latitude, longitude], the shape map widgets expect
	LocationCoords [2]float64 `json:"locationCoords"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type TournamentRq struct {
	Name           string    `json:"name"`
	Organizer      string    `json:"organizer"`
	Location       string    `json:"location"`
	Country        string    `json:"country"`
	Continent      string    `json:"continent"`
	Tier           int       `json:"tier"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	ImageURL       string    `json:"imageUrl"`
	Description    string    `json:"description"`
	LocationCoords []float64 `json:"locationCoords"`
}

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}
