package blog

import "time"

type BlogPost struct {
	ID                 string    `json:"id"`
	AuthorName         string    `json:"name"`
	Heading            string    `json:"heading"`
	Slug               string    `json:"slug"`
	Description        string    `json:"description"`
	DescriptionHTML    string    `json:"descriptionHtml,omitempty"`
	ImageURL           string    `json:"imageUrl,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	CreatedAtHumanized string    `json:"createdAtHumanized,omitempty"`
}

type CreateRq struct {
	AuthorName  string `json:"name"`
	Heading     string `json:"heading"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type UpdateRq struct {
	ID          string `json:"id"`
	AuthorName  string `json:"name"`
	Heading     string `json:"heading"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}
