package domain

import "time"

type BlogPost struct {
	ID            int32      `json:"id"`
	Slug          string     `json:"slug"`
	Locale        string     `json:"locale"`
	Title         string     `json:"title"`
	Summary       string     `json:"summary"`
	Body          string     `json:"body"`
	CoverImageURL string     `json:"cover_image_url"`
	Published     bool       `json:"published"`
	PublishedOn   *time.Time `json:"published_on,omitempty"`
	CreatedOn     time.Time  `json:"created_on"`
	UpdatedOn     time.Time  `json:"updated_on"`
}
