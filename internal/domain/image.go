package domain

import "time"

// Image is one entry of an entity's gallery. Exactly one image per
// owner carries IsCover.
type Image struct {
	ID          string    `json:"id"`
	ContentType PageType  `json:"content_type"`
	ContentID   string    `json:"content_id"`
	URL         string    `json:"url"`
	AltText     string    `json:"alt_text,omitempty"`
	Caption     string    `json:"caption,omitempty"`
	IsCover     bool      `json:"is_cover"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}
