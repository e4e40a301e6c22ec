package athlete

import "time"

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

type Athlete struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Country   string    `json:"country"`
	HeightCm  float64   `json:"height"`
	Points    float64   `json:"points"`
	TitlesWon []string  `json:"titlesWon"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

type AthleteRq struct {
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	Gender    string   `json:"gender"`
	Country   string   `json:"country"`
	HeightCm  float64  `json:"height"`
	Points    float64  `json:"points"`
	TitlesWon []string `json:"titlesWon"`
	ImageURL  string   `json:"imageUrl"`
}

func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}
