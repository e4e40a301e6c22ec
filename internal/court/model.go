package court

import "time"

type Court struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	Country        string `json:"country"`
	NumberOfCourts int    `json:"numberOfCourts"`
	Contact        string `json:"contact"`
	Description    string `json:"description"`
	// Coords is [latitude, longitude]
	Coords    [2]float64 `json:"locationCoordinates"`
	CreatedAt time.Time  `json:"createdAt"`
}

type CourtRq struct {
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	Country        string    `json:"country"`
	NumberOfCourts int       `json:"numberOfCourts"`
	Contact        string    `json:"contact"`
	Description    string    `json:"description"`
	Coords         []float64 `json:"locationCoordinates"`
}
